package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"lparsum/pkg/display"
)

// ErrUsage is returned when the command line names neither a command nor a file.
var ErrUsage = errors.New("missing command or inventory file")

// Mutable
type Engine struct {
	GlobalFlags []*Flag
	Commands    []*Command
	Handlers    map[string]Handler
	Theme       *display.Theme
	Out         io.Writer
	// Err receives the usage text when the command line is empty.
	Err io.Writer
}

func NewEngine() *Engine {
	e := &Engine{
		GlobalFlags: GlobalFlags(),
		Commands:    Commands(),
		Handlers:    make(map[string]Handler),
		Theme:       display.DefaultTheme(),
		Out:         os.Stdout,
		Err:         os.Stderr,
	}
	e.Commands = append(e.Commands, &Command{
		Name: "help",
		Desc: "Show help information",
	})
	return e
}

func (e *Engine) Register(name string, h Handler) {
	e.Handlers[name] = h
}

type ParseResult struct {
	Invocation *Invocation
	Help       bool
	HelpArgs   []string
	Error      error
}

// Run acts on a parsed command line: usage errors print help to Err, help
// requests print to Out, and anything else runs its command, defaultCmd for
// a bare file list.
func (e *Engine) Run(ctx context.Context, res *ParseResult, defaultCmd string) (*ExecutionResult, error) {
	if res.Error != nil {
		if errors.Is(res.Error, ErrUsage) {
			out := e.Out
			e.Out = e.Err
			e.PrintHelp()
			e.Out = out
		}
		return nil, res.Error
	}
	if res.Help {
		e.PrintHelp(res.HelpArgs...)
		return &ExecutionResult{ExitCode: 0}, nil
	}
	if err := e.ResolveDefault(res.Invocation, defaultCmd); err != nil {
		return nil, err
	}
	return e.Execute(ctx, res.Invocation)
}

func (e *Engine) Parse(args []string) *ParseResult {
	res := &ParseResult{
		Invocation: &Invocation{
			Args:   make(map[string]string),
			Lists:  make(map[string][]string),
			Flags:  make(map[string]any),
			Global: make(map[string]any),
		},
	}
	var remaining []string
	// Parse global flags and help
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--help" || arg == "-h" {
			res.Help = true
			continue
		}
		found := false
		for _, gf := range e.GlobalFlags {
			if arg == "--"+gf.Name || (gf.Short != "" && arg == "-"+gf.Short) {
				if gf.Type == "bool" {
					res.Invocation.Global[gf.Name] = true
					found = true
				} else if gf.Type == "string" && i+1 < len(args) {
					res.Invocation.Global[gf.Name] = args[i+1]
					i++
					found = true
				}
			}
		}
		if !found {
			remaining = append(remaining, arg)
		}
	}

	if res.Help {
		res.HelpArgs = remaining
		return res
	}

	if len(remaining) == 0 {
		res.Help = true
		res.Error = ErrUsage
		return res
	}

	inv, err := e.resolve(res.Invocation, remaining)
	if err != nil {
		res.Error = err
		return res
	}
	res.Invocation = inv
	if inv.Command != nil && inv.Command.Name == "help" {
		res.Help = true
		res.HelpArgs = inv.Pending
	}
	return res
}

// ResolveDefault binds an invocation whose first word was not a command to
// the named default command.
func (e *Engine) ResolveDefault(inv *Invocation, name string) error {
	if inv.Command != nil {
		return nil
	}
	cmd := e.Lookup(name)
	if cmd == nil {
		return fmt.Errorf("unknown default command: %s", name)
	}
	inv.Command = cmd
	args := inv.Pending
	inv.Pending = nil
	return e.parseParams(inv, cmd, args)
}

// Lookup finds a command by exact name.
func (e *Engine) Lookup(name string) *Command {
	for _, c := range e.Commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (e *Engine) Execute(ctx context.Context, inv *Invocation) (*ExecutionResult, error) {
	if inv.Command == nil {
		return nil, ErrUsage
	}
	if h, ok := e.Handlers[inv.Command.Name]; ok {
		return h.Execute(ctx, inv)
	}
	return nil, fmt.Errorf("no handler registered for command: %s", inv.Command.Name)
}

func (e *Engine) resolve(inv *Invocation, args []string) (*Invocation, error) {
	word := args[0]
	// Command match: an exact name always wins, a prefix only when no file
	// of that name exists.
	var matches []*Command
	for _, c := range e.Commands {
		if c.Name == word {
			matches = []*Command{c}
			break
		}
		if strings.HasPrefix(c.Name, word) {
			matches = append(matches, c)
		}
	}
	if len(matches) > 0 && matches[0].Name != word && isInput(word) {
		matches = nil
	}
	if len(matches) > 1 {
		var names []string
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return nil, fmt.Errorf("ambiguous command: %s (candidates: %s)", word, strings.Join(names, ", "))
	}
	if len(matches) == 0 {
		// Not a command: the words are files for the default report.
		inv.Pending = args
		return inv, nil
	}

	cmd := matches[0]
	inv.Command = cmd
	if cmd.Name == "help" {
		inv.Pending = args[1:]
		return inv, nil
	}
	if err := e.parseParams(inv, cmd, args[1:]); err != nil {
		return nil, err
	}
	return inv, nil
}

// isInput reports whether word names something the loader can read.
func isInput(word string) bool {
	if word == "-" || strings.HasPrefix(word, "http://") || strings.HasPrefix(word, "https://") {
		return true
	}
	_, err := os.Stat(word)
	return err == nil
}

func (e *Engine) parseParams(inv *Invocation, cmd *Command, args []string) error {
	argIdx := 0
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") && arg != "-" {
			found := false
			for _, f := range cmd.Flags {
				if arg == "--"+f.Name || (f.Short != "" && arg == "-"+f.Short) {
					if f.Type == "bool" {
						inv.Flags[f.Name] = true
						found = true
					} else if f.Type == "string" {
						if i+1 >= len(args) {
							return fmt.Errorf("flag --%s needs a value", f.Name)
						}
						inv.Flags[f.Name] = args[i+1]
						i++
						found = true
					}
					break
				}
			}
			if !found {
				return fmt.Errorf("unknown flag for %s: %s", cmd.Name, arg)
			}
			continue
		}
		if argIdx >= len(cmd.Args) {
			return fmt.Errorf("unexpected argument for %s: %s", cmd.Name, arg)
		}
		a := cmd.Args[argIdx]
		if a.Type == "files" {
			inv.Lists[a.Name] = append(inv.Lists[a.Name], arg)
			continue
		}
		inv.Args[a.Name] = arg
		argIdx++
	}

	// Check for missing required arguments
	if argIdx < len(cmd.Args) {
		a := cmd.Args[argIdx]
		if a.Type != "files" || len(inv.Lists[a.Name]) == 0 {
			return fmt.Errorf("argument %s is missing", a.Name)
		}
	}
	return nil
}

func (e *Engine) PrintHelp(args ...string) {
	if len(args) > 0 {
		for _, c := range e.Commands {
			if c.Name == args[0] || strings.HasPrefix(c.Name, args[0]) {
				e.PrintCommandHelp(c)
				return
			}
		}
	}
	t := e.Theme
	fmt.Fprintf(e.Out, "%s\n", t.Styled(t.Cyan.Bold(true), "lparsum - LPAR volume group capacity summary"))
	fmt.Fprintf(e.Out, "\n%s\n", t.Styled(t.Bold, "Usage:"))
	fmt.Fprintf(e.Out, "  lparsum %s\n", t.Styled(t.Yellow, "[flags] <command> <files...>"))
	fmt.Fprintf(e.Out, "  lparsum %s\n", t.Styled(t.Yellow, "[flags] <files...>"))
	fmt.Fprintf(e.Out, "\n%s\n", t.Styled(t.Bold, "Global Flags:"))
	fmt.Fprintf(e.Out, "  %-14s %s\n", t.Styled(t.Cyan, "--help, -h"), t.Styled(t.Dim, "Show help [command]"))
	for _, f := range e.GlobalFlags {
		short := ""
		if f.Short != "" {
			short = ", -" + f.Short
		}
		fmt.Fprintf(e.Out, "  %-14s %s\n", t.Styled(t.Cyan, "--"+f.Name+short), t.Styled(t.Dim, f.Desc))
	}
	fmt.Fprintf(e.Out, "\n%s\n", t.Styled(t.Bold, "Commands:"))
	for i, c := range e.Commands {
		prefix := t.BoxTree
		if i == len(e.Commands)-1 {
			prefix = t.BoxLast
		}
		fmt.Fprintf(e.Out, "  %s %s %s %s\n", prefix, t.Styled(t.Cyan, c.Name), e.getPadding(c.Name, 12), t.Styled(t.Dim, c.Desc))
	}
	fmt.Fprintf(e.Out, "\n%sType '%s' for more details.\n", t.Icon(t.IconHelp), t.Styled(t.Yellow, "lparsum help <command>"))
}

func (e *Engine) getPadding(name string, target int) string {
	t := e.Theme
	dots := target - len(name)
	if dots < 2 {
		dots = 2
	}
	return t.Styled(t.Dim, strings.Repeat(".", dots))
}

func (e *Engine) PrintCommandHelp(c *Command) {
	t := e.Theme
	fmt.Fprintf(e.Out, "\n%s %s\n", t.Styled(t.Bold, "Command:"), t.Styled(t.Cyan, c.Name))
	fmt.Fprintf(e.Out, "%s %s\n", t.Styled(t.Bold, "Description:"), t.Styled(t.Dim, c.Desc))
	fmt.Fprintln(e.Out)
	if len(c.Args) > 0 {
		fmt.Fprintf(e.Out, "%s\n", t.Styled(t.Bold, "Arguments:"))
		for _, a := range c.Args {
			name := "<" + a.Name + ">"
			if a.Type == "files" {
				name = "<" + a.Name + "...>"
			}
			fmt.Fprintf(e.Out, "  %-15s %s\n", t.Styled(t.Yellow, name), t.Styled(t.Dim, a.Desc))
		}
		fmt.Fprintln(e.Out)
	}
	if len(c.Flags) > 0 {
		fmt.Fprintf(e.Out, "%s\n", t.Styled(t.Bold, "Flags:"))
		for _, f := range c.Flags {
			short := ""
			if f.Short != "" {
				short = ", -" + f.Short
			}
			fmt.Fprintf(e.Out, "  %-15s %s\n", t.Styled(t.Cyan, "--"+f.Name+short), t.Styled(t.Dim, f.Desc))
		}
		fmt.Fprintln(e.Out)
	}
	if len(c.Examples) > 0 {
		fmt.Fprintf(e.Out, "%s\n", t.Styled(t.Bold, "Examples:"))
		for _, ex := range c.Examples {
			fmt.Fprintf(e.Out, "  %s %s\n", t.Styled(t.Green, "$"), ex)
		}
		fmt.Fprintln(e.Out)
	}
}
