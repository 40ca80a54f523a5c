package main

import (
	"io"
	"time"

	"golang.org/x/text/message"

	"github.com/gogpu/glkit"
)

// printInfo writes the driver strings.
func printInfo(w io.Writer, p *message.Printer, info glkit.DeviceInfo) {
	p.Fprintf(w, "vendor:    %s\n", info.Vendor)
	p.Fprintf(w, "renderer:  %s\n", info.Renderer)
	p.Fprintf(w, "version:   %s\n", info.Version)
	p.Fprintf(w, "glsl:      %s\n", info.ShadingLanguage)
}

// printReport writes one line per check and a summary, and returns the
// number of failed checks. Byte counts are formatted for the printer's
// language.
func printReport(w io.Writer, p *message.Printer, results []checkResult) int {
	failed, total := 0, 0
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = "FAIL"
			failed++
		}
		total += r.Bytes
		p.Fprintf(w, "%-12s %-4s %12d bytes  %v\n", r.Name, status, r.Bytes, r.Duration.Round(time.Microsecond))
		if r.Err != nil {
			p.Fprintf(w, "             %v\n", r.Err)
		}
	}
	p.Fprintf(w, "%d of %d checks passed, %d bytes transferred\n", len(results)-failed, len(results), total)
	return failed
}
