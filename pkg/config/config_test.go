package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Init(path)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if cfg.GetDefaultReport() != ReportSummary {
		t.Errorf("default report = %s, want summary", cfg.GetDefaultReport())
	}
	if cfg.GetUnit() != "MB" {
		t.Errorf("unit = %q, want MB", cfg.GetUnit())
	}
	if cfg.GetStatsAccuracy() != 0.01 {
		t.Errorf("accuracy = %v, want 0.01", cfg.GetStatsAccuracy())
	}
	if cfg.GetExportCompression() != "zstd" {
		t.Errorf("compression = %q, want zstd", cfg.GetExportCompression())
	}
	if cfg.GetConfigFile() != path {
		t.Errorf("config file = %q, want %q", cfg.GetConfigFile(), path)
	}
}

func TestInitReadsYAML(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
report:
  default: tree
  unit: GB
log:
  level: debug
  json: true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Init(path)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if cfg.GetDefaultReport() != ReportTree {
		t.Errorf("default report = %s, want tree", cfg.GetDefaultReport())
	}
	if cfg.GetUnit() != "GB" {
		t.Errorf("unit = %q, want GB", cfg.GetUnit())
	}
	if cfg.GetLogLevel() != "debug" || !cfg.GetLogJSON() {
		t.Errorf("log = %s/%v, want debug/true", cfg.GetLogLevel(), cfg.GetLogJSON())
	}
	if !cfg.GetColor() {
		t.Error("color should keep its default when not set")
	}
	if cfg.GetExportCompression() != "zstd" {
		t.Errorf("compression = %q, want default zstd", cfg.GetExportCompression())
	}
}

func TestInitEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(path, []byte("report:\n  unit: TB\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfig, path)

	cfg, err := Init("")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if cfg.GetUnit() != "TB" {
		t.Errorf("unit = %q, want TB", cfg.GetUnit())
	}
}

func TestInitNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg, err := Init(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if cfg.GetColor() {
		t.Error("NO_COLOR should disable color")
	}
}

func TestInitInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "report: [", "failed to parse config"},
		{"bad report", "report:\n  default: pie\n", "report.default"},
		{"empty unit", "report:\n  unit: \"\"\n", "report.unit"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad accuracy", "stats:\n  accuracy: 1.5\n", "stats.accuracy"},
		{"bad codec", "export:\n  compression: lzma\n", "export.compression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Init(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestFrozenConfigPanics(t *testing.T) {
	cfg, err := Init(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	w := cfg.Checkout()
	w.SetColor(false)
	if cfg.GetColor() {
		t.Error("SetColor through Checkout should apply")
	}
	cfg.Freeze()

	defer func() {
		if recover() == nil {
			t.Error("expected panic when modifying frozen config")
		}
	}()
	w.SetLogLevel("debug")
}

func TestParseReportFormat(t *testing.T) {
	for _, s := range []string{"summary", "TREE", "table", "json", "stats"} {
		if _, err := ParseReportFormat(s); err != nil {
			t.Errorf("ParseReportFormat(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseReportFormat("csv"); err == nil {
		t.Error("expected error for csv")
	}
}
