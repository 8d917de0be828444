// SPDX-License-Identifier: MIT

// Package config reads the YAML file that drives network ingestion:
// which cost variant to expect, whether edges without a cost block are
// defaulted, how XML is written back, and the log level.
//
//	variant: piecewise-quadratic
//	default_edge_cost: true
//	expression: ""
//	prettify: true
//	log_level: info
//
// Every field is optional; Default() holds the values used when a field is
// absent. Validation uses go-playground/validator struct tags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/costnet/cost"
)

// ErrInvalid is matched by every validation failure returned by Load/Parse.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the decoded configuration file.
type Config struct {
	// Variant is a cost variant tag or "auto".
	Variant string `yaml:"variant" validate:"omitempty,oneof=auto polynomial symbolic piecewise-quadratic"`

	// DefaultEdgeCost fills edges lacking a cost block with variant defaults.
	DefaultEdgeCost bool `yaml:"default_edge_cost"`

	// Expression overrides the symbolic formula declared in the document.
	Expression string `yaml:"expression" validate:"omitempty,max=4096"`

	// Prettify indents XML written by Network.Save and Network.XML when
	// the network was loaded with network.WithConfig.
	Prettify bool `yaml:"prettify"`

	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Variant: "auto", Prettify: true, LogLevel: "info"}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF and keeps the defaults.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags and reports the first violation.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s], got %q", ErrInvalid, e.Field(), e.Param(), e.Value())
	case "max":
		return fmt.Errorf("%w: %s must not exceed %s characters", ErrInvalid, e.Field(), e.Param())
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalid, e.Field(), e.Tag())
	}
}

// Kind maps Variant to a cost.Kind.
func (c Config) Kind() (cost.Kind, error) {
	return cost.ParseKind(c.Variant)
}

// CostOptions translates the ingestion fields into cost.FromXML options.
func (c Config) CostOptions() ([]cost.Option, error) {
	kind, err := c.Kind()
	if err != nil {
		return nil, err
	}
	opts := []cost.Option{cost.WithDefaultEdgeCost(c.DefaultEdgeCost), cost.WithKind(kind)}
	if c.Expression != "" {
		opts = append(opts, cost.WithExpression(c.Expression))
	}
	return opts, nil
}

// NewLogger builds a production zap logger at LogLevel ("info" if empty).
func (c Config) NewLogger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.LogLevel != "" {
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return nil, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
		}
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
