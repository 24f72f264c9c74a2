// Package config manages lparsum settings. Settings come from an optional
// YAML file in the XDG config directory; every field has a default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReportFormat names one of the report renderers.
type ReportFormat string

const (
	ReportSummary ReportFormat = "summary"
	ReportTree    ReportFormat = "tree"
	ReportTable   ReportFormat = "table"
	ReportJSON    ReportFormat = "json"
	ReportStats   ReportFormat = "stats"
)

// ParseReportFormat converts a report name into a ReportFormat.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch f := ReportFormat(strings.ToLower(s)); f {
	case ReportSummary, ReportTree, ReportTable, ReportJSON, ReportStats:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", s)
	}
}

// String returns the string representation of the ReportFormat.
func (f ReportFormat) String() string {
	return string(f)
}

// Settings is the content of config.yaml.
type Settings struct {
	Report ReportSettings `yaml:"report"`
	Log    LogSettings    `yaml:"log"`
	Stats  StatsSettings  `yaml:"stats"`
	Export ExportSettings `yaml:"export"`
}

// ReportSettings controls report output.
type ReportSettings struct {
	// Default is the report produced by a bare `lparsum <file>`.
	Default string `yaml:"default"`

	// Unit is the label printed after capacities. Sizes are never converted.
	Unit string `yaml:"unit"`

	// Color enables lipgloss styling in tree output and help.
	Color bool `yaml:"color"`
}

// LogSettings controls the slog handler.
type LogSettings struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// StatsSettings controls the size distribution sketch.
type StatsSettings struct {
	// Accuracy is the relative accuracy of reported percentiles, in (0, 1).
	Accuracy float64 `yaml:"accuracy"`
}

// ExportSettings controls the Parquet export.
type ExportSettings struct {
	// Compression is one of zstd, snappy, gzip, none.
	Compression string `yaml:"compression"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Report: ReportSettings{
			Default: string(ReportSummary),
			Unit:    "MB",
			Color:   true,
		},
		Log: LogSettings{
			Level: "warn",
		},
		Stats: StatsSettings{
			Accuracy: 0.01,
		},
		Export: ExportSettings{
			Compression: "zstd",
		},
	}
}

// LoadSettings reads a YAML settings file on top of the defaults. A missing
// file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

// Validate checks every field for a usable value.
func (s *Settings) Validate() error {
	if _, err := ParseReportFormat(s.Report.Default); err != nil {
		return fmt.Errorf("report.default: %w", err)
	}
	if strings.TrimSpace(s.Report.Unit) == "" {
		return errors.New("report.unit: must not be empty")
	}
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", s.Log.Level)
	}
	if s.Stats.Accuracy <= 0 || s.Stats.Accuracy >= 1 {
		return fmt.Errorf("stats.accuracy: %v is not in (0, 1)", s.Stats.Accuracy)
	}
	switch s.Export.Compression {
	case "zstd", "snappy", "gzip", "none":
	default:
		return fmt.Errorf("export.compression: unsupported codec %q", s.Export.Compression)
	}
	return nil
}
