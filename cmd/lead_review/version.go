package main

import (
	"fmt"
	"io"

	"lead_review/pkg/version"
)

// printVersion prints the version information
func printVersion(w io.Writer) {
	fmt.Fprintln(w, version.Info())
}
