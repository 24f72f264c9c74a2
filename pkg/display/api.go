package display

import "lparsum/pkg/common"

// Display handles command output.
type Display interface {
	// Print writes a primary output message (report text, table) as is.
	Print(msg string)
	// Log writes a diagnostic line, shown only in verbose mode.
	Log(msg string)
	// RenderOutput prints structured output from a command.
	RenderOutput(out *common.Output)
	// SetVerbose enables or disables verbose logging.
	SetVerbose(v bool)
	// Close cleans up any resources and ensures final output is rendered.
	Close()
}
