package cmd

import (
	"errors"
	"fmt"

	"github.com/jzelinskie/stringz"
	flag "github.com/spf13/pflag"
)

const (
	// FormatTable renders tuples as a table with one column per variable.
	FormatTable = "table"

	// FormatJSON renders tuples as a JSON list of objects.
	FormatJSON = "json"

	// FormatYAML renders tuples as a YAML list of mappings.
	FormatYAML = "yaml"
)

var outputFormats = []string{FormatTable, FormatJSON, FormatYAML}

// ConfigOption mutates a Config.
type ConfigOption func(c *Config)

// Config configures how tuple sets are flattened and printed.
type Config struct {
	// Variables is the projection to flatten. When empty, every bound variable
	// is requested, in sorted order.
	Variables []string

	// Format is the output format, one of FormatTable, FormatJSON or
	// FormatYAML.
	Format string

	// MaxTuples refuses to flatten projections producing more tuples than this.
	// Zero disables the limit.
	MaxTuples uint64
}

// NewConfigWithOptions creates a Config with the defaults and then applies
// the given options.
func NewConfigWithOptions(opts ...ConfigOption) *Config {
	c := &Config{
		Format:    FormatTable,
		MaxTuples: 10_000,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithVariables sets the projection to flatten.
func WithVariables(variables ...string) ConfigOption {
	return func(c *Config) {
		c.Variables = variables
	}
}

// WithFormat sets the output format.
func WithFormat(format string) ConfigOption {
	return func(c *Config) {
		c.Format = format
	}
}

// WithMaxTuples sets the maximum number of tuples to flatten.
func WithMaxTuples(maxTuples uint64) ConfigOption {
	return func(c *Config) {
		c.MaxTuples = maxTuples
	}
}

// ToOption returns an option copying this Config into another.
func (c *Config) ToOption() ConfigOption {
	return func(to *Config) {
		to.Variables = c.Variables
		to.Format = c.Format
		to.MaxTuples = c.MaxTuples
	}
}

// RegisterFlattenFlags binds the flags of the flatten command to the config.
func RegisterFlattenFlags(flagset *flag.FlagSet, config *Config) {
	flagset.StringSliceVar(&config.Variables, "vars", config.Variables, "variables to flatten, in order (defaults to every bound variable)")
	flagset.StringVar(&config.Format, "format", config.Format, `output format ("table", "json", "yaml")`)
	flagset.Uint64Var(&config.MaxTuples, "max-tuples", config.MaxTuples, "refuse to flatten projections producing more tuples than this (0 for no limit)")
}

// Complete validates the config and turns it into a Flattener.
func (c *Config) Complete() (*Flattener, error) {
	if !stringz.SliceContains(outputFormats, c.Format) {
		return nil, fmt.Errorf("unknown output format `%s`, expected one of %v", c.Format, outputFormats)
	}

	for _, variable := range c.Variables {
		if variable == "" {
			return nil, errors.New("variables must not be empty")
		}
	}

	return &Flattener{
		variables: stringz.Dedup(c.Variables),
		format:    c.Format,
		maxTuples: c.MaxTuples,
	}, nil
}
