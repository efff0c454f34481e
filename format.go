package rdate

import (
	"bytes"
	"fmt"
)

// Style selects the text form of a DateTime.
type Style uint8

const (
	// StyleDisplay is "YYYY-MM-DD HH:MM:SS ZONE".
	StyleDisplay Style = iota
	// StyleISO is "YYYY-MM-DDTHH:MM:SS.000000-OO:00", with the zone's offset
	// on that date.
	StyleISO
)

var styleNames = [...]string{
	StyleDisplay: "display",
	StyleISO:     "iso",
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

func writeDateToBuffer(buf *bytes.Buffer, d Date) {
	fmt.Fprintf(buf, "%04d-%02d-%02d", d.year, d.month, d.day)
}

func writeTimeToBuffer(buf *bytes.Buffer, t Time) {
	fmt.Fprintf(buf, "%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// WriteToBuffer writes dt into buf in the given style.
func WriteToBuffer(buf *bytes.Buffer, style Style, dt DateTime) {
	writeDateToBuffer(buf, dt.date)
	switch style {
	case StyleISO:
		buf.WriteByte('T')
		writeTimeToBuffer(buf, dt.time)
		// Every supported zone is behind UTC.
		fmt.Fprintf(buf, ".000000-%02d:00", dt.Offset())
	default:
		buf.WriteByte(' ')
		writeTimeToBuffer(buf, dt.time)
		buf.WriteByte(' ')
		buf.WriteString(dt.tz.String())
	}
}

// Format formats dt in the given style.
func Format(style Style, dt DateTime) string {
	var b bytes.Buffer
	WriteToBuffer(&b, style, dt)
	return b.String()
}
