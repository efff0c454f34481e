package main

import (
	"os"

	"github.com/cockroachdb/rdate/cmd/rdate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
