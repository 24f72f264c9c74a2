// Package common provides the result and output types passed between the
// command handlers and the display.
package common

// ExecutionResult represents the outcome of an lparsum command.
type ExecutionResult struct {
	// ExitCode is the status code the process exits with.
	ExitCode int

	// Output is the structured output the command rendered, if any.
	Output *Output
}

// KV is one labelled value line.
type KV struct {
	Key   string
	Value string
}

// Table is a simple header + rows grid.
type Table struct {
	Header []string
	Rows   [][]string
	// Footer is printed under a separator after the rows, if present.
	Footer []string
}

// Output is structured command output for the display to render.
type Output struct {
	Message string
	KV      []KV
	Table   *Table
}
