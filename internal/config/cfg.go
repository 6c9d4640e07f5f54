// Package config loads the configuration of the pin command.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	pin "github.com/grindlemire/go-pin"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	EngineConfig struct {
		Direction    string  `yaml:"direction" validate:"omitempty,oneof=ltr rtl"`
		Locale       string  `yaml:"locale"`
		DisplayScale float64 `yaml:"display_scale" validate:"gte=0"`
		Diagnostics  bool    `yaml:"diagnostics"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Engine  EngineConfig  `yaml:"engine"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// Only fields we defined are accepted, so yaml.Unmarshal cannot be used
	// directly here.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration expands the configuration template to get defaults,
// superimposes the file at path on top of it when path is not empty and
// validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates the default configuration from the template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// Options turns the engine section into engine options. Diagnostics are
// written to log.
func (conf *EngineConfig) Options(log *zap.Logger) ([]pin.Option, error) {
	diag := pin.NewDiagnostics(log)
	diag.SetEnabled(conf.Diagnostics)

	opts := []pin.Option{pin.WithDiagnostics(diag)}
	if conf.Locale != "" {
		opts = append(opts, pin.WithLocale(conf.Locale))
	}
	if conf.Direction != "" {
		d, err := pin.ParseDirection(conf.Direction)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pin.WithDirection(d))
	}
	if conf.DisplayScale != 0 {
		opts = append(opts, pin.WithDisplayScale(conf.DisplayScale))
	}
	return opts, nil
}
