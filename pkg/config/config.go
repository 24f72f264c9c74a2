package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// EnvConfig overrides the config file location.
const EnvConfig = "LPARSUM_CONFIG"

// ReadOnly defines the read-only interface for Config.
// Immutable
type ReadOnly interface {
	GetConfigDir() string
	GetConfigFile() string
	GetDefaultReport() ReportFormat
	GetUnit() string
	GetColor() bool
	GetLogLevel() string
	GetLogJSON() bool
	GetStatsAccuracy() float64
	GetExportCompression() string
	Freeze()
	Checkout() Writable
}

// Writable defines the writable interface for Config.
// Mutable
type Writable interface {
	ReadOnly
	SetColor(bool)
	SetLogLevel(string)
}

// Config holds the resolved settings for one run.
// Mutable
type Config struct {
	configDir  string
	configFile string
	settings   Settings

	frozen bool
	edited bool
}

var _ ReadOnly = (*Config)(nil)
var _ Writable = (*Config)(nil)

func (c *Config) GetConfigDir() string         { return c.configDir }
func (c *Config) GetConfigFile() string        { return c.configFile }
func (c *Config) GetUnit() string              { return c.settings.Report.Unit }
func (c *Config) GetColor() bool               { return c.settings.Report.Color }
func (c *Config) GetLogLevel() string          { return c.settings.Log.Level }
func (c *Config) GetLogJSON() bool             { return c.settings.Log.JSON }
func (c *Config) GetStatsAccuracy() float64    { return c.settings.Stats.Accuracy }
func (c *Config) GetExportCompression() string { return c.settings.Export.Compression }

// GetDefaultReport returns the validated default report.
func (c *Config) GetDefaultReport() ReportFormat {
	f, err := ParseReportFormat(c.settings.Report.Default)
	if err != nil {
		return ReportSummary
	}
	return f
}

func (c *Config) SetColor(v bool) {
	if c.frozen {
		panic("cannot modify frozen config")
	}
	c.settings.Report.Color = v
}

func (c *Config) SetLogLevel(s string) {
	if c.frozen {
		panic("cannot modify frozen config")
	}
	c.settings.Log.Level = s
}

func (c *Config) Freeze() {
	c.frozen = true
}

func (c *Config) Checkout() Writable {
	if c.frozen {
		panic("cannot checkout from frozen config")
	}
	if c.edited {
		panic("config already checked out")
	}
	c.edited = true
	return c
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/lparsum/config.yaml.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, "lparsum", "config.yaml")
}

// Init resolves the config file (explicit path, then $LPARSUM_CONFIG, then
// the XDG location) and loads it. NO_COLOR disables styling.
func Init(path string) (ReadOnly, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultConfigFile()
	}

	settings, err := LoadSettings(path)
	if err != nil {
		return nil, err
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		settings.Report.Color = false
	}

	return &Config{
		configDir:  filepath.Dir(path),
		configFile: path,
		settings:   settings,
	}, nil
}
