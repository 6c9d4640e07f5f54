package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	pin "github.com/grindlemire/go-pin"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if !cfg.Engine.Diagnostics {
		t.Error("Default diagnostics = false, want true")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
engine:
  direction: rtl
  display_scale: 2
logging:
  console:
    level: debug
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Engine.Direction != "rtl" || cfg.Engine.DisplayScale != 2 {
		t.Errorf("Engine = %+v, want rtl scaled by 2", cfg.Engine)
	}
	// Values absent from the file keep their defaults.
	if !cfg.Engine.Diagnostics {
		t.Error("Diagnostics = false, want default true")
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("File level = %q, want default none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	type tc struct {
		content string
	}

	tests := map[string]tc{
		"invalid yaml":  {content: "version: 1\nengine:\n  direction: rtl\n  invalid indent\n"},
		"unknown field": {content: "version: 1\nunknown_field: value\n"},
		"version":       {content: "version: 2\n"},
		"direction":     {content: "version: 1\nengine:\n  direction: up\n"},
		"scale":         {content: "version: 1\nengine:\n  display_scale: -1\n"},
		"level":         {content: "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Errorf("LoadConfiguration(%q) error = nil, want error", tt.content)
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Engine:  EngineConfig{Direction: "rtl", DisplayScale: 3},
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "none"},
			FileLogger:    LoggerConfig{Level: "none"},
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Engine != cfg.Engine {
		t.Errorf("Engine after dump/load = %+v, want %+v", cfg2.Engine, cfg.Engine)
	}
}

func TestEngineConfig_Options(t *testing.T) {
	type tc struct {
		conf    EngineConfig
		want    pin.Direction
		scale   float64
		enabled bool
		wantErr bool
	}

	tests := map[string]tc{
		"defaults":       {conf: EngineConfig{Diagnostics: true}, want: pin.LTR, enabled: true},
		"rtl":            {conf: EngineConfig{Direction: "rtl"}, want: pin.RTL},
		"locale":         {conf: EngineConfig{Locale: "ar-EG"}, want: pin.RTL},
		"direction wins": {conf: EngineConfig{Locale: "ar-EG", Direction: "ltr"}, want: pin.LTR},
		"scale":          {conf: EngineConfig{DisplayScale: 2}, want: pin.LTR, scale: 2},
		"bad direction":  {conf: EngineConfig{Direction: "up"}, wantErr: true},
		"bad locale":     {conf: EngineConfig{Locale: "not a tag"}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts, err := tt.conf.Options(zaptest.NewLogger(t))
			if err == nil {
				var e *pin.Engine
				if e, err = pin.NewEngine(opts...); err == nil {
					if got := e.Direction(); got != tt.want {
						t.Errorf("Direction() = %v, want %v", got, tt.want)
					}
					if got := e.DisplayScale(); got != tt.scale {
						t.Errorf("DisplayScale() = %v, want %v", got, tt.scale)
					}
					if got := e.Diagnostics().Enabled(); got != tt.enabled {
						t.Errorf("Diagnostics().Enabled() = %v, want %v", got, tt.enabled)
					}
				}
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("Options() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoggingConfig_Prepare(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "pin.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: dest, Mode: "overwrite"},
	}

	log, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hidden")
	log.Info("visible")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "visible") || strings.Contains(got, "hidden") {
		t.Errorf("log file = %q, want only info entries", got)
	}
	if !strings.Contains(got, AppName) {
		t.Errorf("log file = %q, want logger name %q", got, AppName)
	}
}

func TestLoggingConfig_PrepareBadDestination(t *testing.T) {
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "debug", Destination: filepath.Join(t.TempDir(), "missing", "pin.log")},
	}
	if _, err := conf.Prepare(); err == nil {
		t.Error("Prepare() error = nil, want error")
	}
}
