// Package display implementation for terminal-based output.
package display

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"lparsum/pkg/common"
)

// consoleDisplay handles terminal output.
type consoleDisplay struct {
	out     *bufio.Writer
	log     io.Writer
	verbose bool
}

// NewWriterDisplay creates a Display that prints output to out and verbose
// log lines to log. Output is buffered until Close.
func NewWriterDisplay(out, log io.Writer) Display {
	return &consoleDisplay{
		out: bufio.NewWriter(out),
		log: log,
	}
}

// Print writes a message directly to the output writer.
func (d *consoleDisplay) Print(msg string) {
	fmt.Fprint(d.out, msg)
}

func (d *consoleDisplay) Log(msg string) {
	if !d.verbose {
		return
	}
	fmt.Fprintf(d.log, "# %s\n", msg)
}

func (d *consoleDisplay) SetVerbose(v bool) {
	d.verbose = v
}

func (d *consoleDisplay) Close() {
	d.out.Flush()
}

// RenderOutput displays structured data from an Output struct to the console.
func (d *consoleDisplay) RenderOutput(out *common.Output) {
	if out == nil {
		return
	}

	if out.Message != "" {
		d.Print(fmt.Sprintln(out.Message))
	}

	if len(out.KV) > 0 {
		width := 0
		for _, kv := range out.KV {
			width = max(width, len(kv.Key)+1)
		}
		for _, kv := range out.KV {
			d.Print(fmt.Sprintf("%-*s %s\n", width, kv.Key+":", kv.Value))
		}
	}

	if out.Table != nil {
		d.renderTable(out.Table)
	}
}

func (d *consoleDisplay) renderTable(t *common.Table) {
	if len(t.Header) == 0 {
		return
	}

	// Simple column width calculation
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(h)
	}
	for _, row := range slices.Concat(t.Rows, [][]string{t.Footer}) {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	totalWidth := 0
	for _, w := range widths {
		totalWidth += w + 2
	}
	sep := strings.Repeat("-", totalWidth) + "\n"

	d.Print(formatRow(t.Header, widths))
	d.Print(sep)
	for _, row := range t.Rows {
		d.Print(formatRow(row, widths))
	}
	if len(t.Footer) > 0 {
		d.Print(sep)
		d.Print(formatRow(t.Footer, widths))
	}
}

func formatRow(row []string, widths []int) string {
	var sb strings.Builder
	for i, cell := range row {
		if i < len(widths) {
			fmt.Fprintf(&sb, "%-*s  ", widths[i], cell)
		}
	}
	return strings.TrimRight(sb.String(), " ") + "\n"
}
