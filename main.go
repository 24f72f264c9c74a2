package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"lparsum/pkg/cli"
	"lparsum/pkg/config"
	"lparsum/pkg/display"
	"lparsum/pkg/logging"

	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	res, err := LparsumEngine(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(res.ExitCode)
}

func LparsumEngine(ctx context.Context, args []string, stdout, stderr io.Writer) (*cli.ExecutionResult, error) {
	// 1. Parse command line arguments
	cliEngine := cli.NewEngine()
	pr := cliEngine.Parse(args)
	inv := pr.Invocation

	// 2. Load config, then let global flags override it
	sysCfg, err := config.Init(inv.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}
	noColor := inv.Bool("no-color") || !isTerminal(stdout)
	if noColor || inv.Bool("verbose") {
		w := sysCfg.Checkout()
		if noColor {
			w.SetColor(false)
		}
		if inv.Bool("verbose") {
			w.SetLogLevel("debug")
		}
		sysCfg = w
	}
	sysCfg.Freeze()

	level, err := logging.ParseLevel(sysCfg.GetLogLevel())
	if err != nil {
		return nil, err
	}
	logging.Init(stderr, level, sysCfg.GetLogJSON())

	// 3. Initialize console, setup verbosity, theme etc.
	disp := display.NewWriterDisplay(stdout, stderr)
	defer disp.Close()
	disp.SetVerbose(inv.Bool("verbose"))

	theme := display.NewTheme(sysCfg.GetColor())
	cliEngine.Theme = theme
	cliEngine.Out = stdout
	cliEngine.Err = stderr

	// 4. Execute commands
	cli.RegisterDefaults(cliEngine, &cli.Managers{
		Disp:  disp,
		Cfg:   sysCfg,
		Theme: theme,
	})
	return cliEngine.Run(ctx, pr, sysCfg.GetDefaultReport().String())
}

// isTerminal reports whether w is a terminal. Writers that are not files,
// such as test buffers, count as terminals and leave color to the config.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}
