package cli

import (
	"context"
	"fmt"
	"strings"

	"lparsum/pkg/common"
	"lparsum/pkg/config"
	"lparsum/pkg/display"
	"lparsum/pkg/inventory"
	"lparsum/pkg/report"
	"lparsum/pkg/stats"

	"github.com/dustin/go-humanize"
)

// Managers carries what the handlers need at run time.
type Managers struct {
	Disp  display.Display
	Cfg   config.ReadOnly
	Theme *display.Theme
}

type DefaultHandlers struct {
	Mgr *Managers
}

// RegisterDefaults binds every command in Commands to its handler.
func RegisterDefaults(e *Engine, m *Managers) {
	h := &DefaultHandlers{Mgr: m}
	e.Register("summary", HandlerFunc(h.Summary))
	e.Register("tree", HandlerFunc(h.Tree))
	e.Register("table", HandlerFunc(h.Table))
	e.Register("json", HandlerFunc(h.JSON))
	e.Register("stats", HandlerFunc(h.Stats))
	e.Register("export", HandlerFunc(h.Export))
	e.Register("version", HandlerFunc(h.Version))
}

func (h *DefaultHandlers) load(ctx context.Context, inv *Invocation) (*inventory.Inventory, error) {
	files := inv.Lists["files"]
	h.Mgr.Disp.Log(fmt.Sprintf("loading %s", strings.Join(files, ", ")))
	return inventory.Load(ctx, files...)
}

func (h *DefaultHandlers) Version(ctx context.Context, inv *Invocation) (*ExecutionResult, error) {
	h.Mgr.Disp.Print(config.GetBuildInfo() + "\n")
	return &ExecutionResult{ExitCode: 0}, nil
}

func (h *DefaultHandlers) Summary(ctx context.Context, inv *Invocation) (*ExecutionResult, error) {
	data, err := h.load(ctx, inv)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	if err := report.Summary(&sb, data, h.Mgr.Cfg.GetUnit()); err != nil {
		return nil, err
	}
	h.Mgr.Disp.Print(sb.String())
	return &ExecutionResult{ExitCode: 0}, nil
}

func (h *DefaultHandlers) Tree(ctx context.Context, inv *Invocation) (*ExecutionResult, error) {
	data, err := h.load(ctx, inv)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	if err := report.Tree(&sb, data, h.Mgr.Theme, h.Mgr.Cfg.GetUnit()); err != nil {
		return nil, err
	}
	h.Mgr.Disp.Print(sb.String())
	return &ExecutionResult{ExitCode: 0}, nil
}

func (h *DefaultHandlers) Table(ctx context.Context, inv *Invocation) (*ExecutionResult, error) {
	data, err := h.load(ctx, inv)
	if err != nil {
		return nil, err
	}
	out := &common.Output{Table: report.Table(data, inv.Bool("vgs"), h.Mgr.Cfg.GetUnit())}
	h.Mgr.Disp.RenderOutput(out)
	return &ExecutionResult{ExitCode: 0, Output: out}, nil
}

func (h *DefaultHandlers) JSON(ctx context.Context, inv *Invocation) (*ExecutionResult, error) {
	data, err := h.load(ctx, inv)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	compact := inv.Bool("compact")
	if q := inv.String("query"); q != "" {
		err = report.Query(&sb, data, q, compact)
	} else {
		err = report.JSON(&sb, data, compact)
	}
	if err != nil {
		return nil, err
	}
	h.Mgr.Disp.Print(sb.String())
	return &ExecutionResult{ExitCode: 0}, nil
}

func (h *DefaultHandlers) Stats(ctx context.Context, inv *Invocation) (*ExecutionResult, error) {
	data, err := h.load(ctx, inv)
	if err != nil {
		return nil, err
	}
	r, err := stats.Collect(data, h.Mgr.Cfg.GetStatsAccuracy())
	if err != nil {
		return nil, err
	}
	out := &common.Output{Table: r.Table()}
	h.Mgr.Disp.RenderOutput(out)
	return &ExecutionResult{ExitCode: 0, Output: out}, nil
}

func (h *DefaultHandlers) Export(ctx context.Context, inv *Invocation) (*ExecutionResult, error) {
	path := inv.String("output")
	if path == "" {
		return nil, fmt.Errorf("export needs --output")
	}
	data, err := h.load(ctx, inv)
	if err != nil {
		return nil, err
	}
	n, err := report.ExportFile(ctx, path, data, h.Mgr.Cfg.GetExportCompression())
	if err != nil {
		return nil, fmt.Errorf("export to %s: %w", path, err)
	}
	out := &common.Output{Message: fmt.Sprintf("Exported %s disks to %s", humanize.Comma(int64(n)), path)}
	h.Mgr.Disp.RenderOutput(out)
	return &ExecutionResult{ExitCode: 0, Output: out}, nil
}
