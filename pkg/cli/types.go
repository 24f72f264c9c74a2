package cli

import (
	"context"

	"lparsum/pkg/common"
)

// ExecutionResult is the outcome of a command.
type ExecutionResult = common.ExecutionResult

type Flag struct {
	Name  string
	Short string
	Type  string // "bool", "string"
	Desc  string
}

type Arg struct {
	Name string
	Type string // "string", or "files" to take every remaining word
	Desc string
}

type Command struct {
	Name     string
	Desc     string
	Args     []*Arg
	Flags    []*Flag
	Examples []string
}

type Invocation struct {
	Command *Command
	Args    map[string]string
	Lists   map[string][]string
	Flags   map[string]any
	Global  map[string]any

	// Pending holds the words of an invocation whose first word named no
	// command. They become the arguments of the default report.
	Pending []string
}

// String returns a string flag, checking command flags before global ones.
func (inv *Invocation) String(name string) string {
	if v, ok := inv.Flags[name].(string); ok {
		return v
	}
	v, _ := inv.Global[name].(string)
	return v
}

// Bool returns a bool flag, checking command flags before global ones.
func (inv *Invocation) Bool(name string) bool {
	if v, ok := inv.Flags[name].(bool); ok {
		return v
	}
	v, _ := inv.Global[name].(bool)
	return v
}

type Handler interface {
	Execute(ctx context.Context, inv *Invocation) (*ExecutionResult, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, inv *Invocation) (*ExecutionResult, error)

func (f HandlerFunc) Execute(ctx context.Context, inv *Invocation) (*ExecutionResult, error) {
	return f(ctx, inv)
}
