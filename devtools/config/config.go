// Package config loads the optional YAML configuration of the devtools command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"devtools.znkr.io/devtools/compare"
	"devtools.znkr.io/devtools/i18n"
	"devtools.znkr.io/devtools/report"
)

// DefaultAddr is the address the HTTP front end listens on unless configured otherwise.
const DefaultAddr = "localhost:8080"

// ServeConfig configures the HTTP front end.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// CompareConfig configures the compare command.
type CompareConfig struct {
	Algorithm string `yaml:"algorithm"`
	Format    string `yaml:"format"`
}

// InspectConfig configures the inspect command.
type InspectConfig struct {
	Format string `yaml:"format"`
}

// Config is the complete configuration.
type Config struct {
	Language string        `yaml:"language"`
	Serve    ServeConfig   `yaml:"serve"`
	Compare  CompareConfig `yaml:"compare"`
	Inspect  InspectConfig `yaml:"inspect"`
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	return Config{
		Language: string(i18n.English),
		Serve:    ServeConfig{Addr: DefaultAddr},
		Compare: CompareConfig{
			Algorithm: compare.Aligned.String(),
			Format:    string(report.Text),
		},
		Inspect: InspectConfig{Format: string(report.Text)},
	}
}

// Load reads the configuration from path on top of the defaults. If explicit is false, a missing
// file is not an error and the defaults are returned.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %v", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %v", path, err)
	}
	return &cfg, nil
}

// Validate rejects unknown languages, algorithms and formats.
func (c *Config) Validate() error {
	if _, err := i18n.ParseLanguage(c.Language); err != nil {
		return fmt.Errorf("language: %v", err)
	}
	if c.Serve.Addr == "" {
		return errors.New("serve.addr: must not be empty")
	}
	if _, err := compare.ParseAlgorithm(c.Compare.Algorithm); err != nil {
		return fmt.Errorf("compare.algorithm: %v", err)
	}
	if _, err := report.ParseFormat(c.Compare.Format); err != nil {
		return fmt.Errorf("compare.format: %v", err)
	}
	if _, err := report.ParseFormat(c.Inspect.Format); err != nil {
		return fmt.Errorf("inspect.format: %v", err)
	}
	return nil
}
