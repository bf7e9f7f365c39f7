package schema

import (
	"github.com/spf13/pflag"
)

// Config holds CLI flag values for schema generation.
//
// Register flags with [Config.RegisterFlags] and create a generator with
// [Config.NewGenerator].
type Config struct {
	Title       string
	Description string
	ID          string
	Strict      bool
	Output      string
	Indent      int
}

// NewConfig returns a new [Config] with default values.
func NewConfig() *Config {
	return &Config{Indent: 2}
}

// RegisterFlags adds schema generation flags to the given
// [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Title, "title", c.Title, "schema title")
	flags.StringVar(&c.Description, "description", c.Description, "schema description")
	flags.StringVar(&c.ID, "id", c.ID, "schema $id")
	flags.BoolVar(&c.Strict, "strict", c.Strict, "set additionalProperties to false on objects")
	flags.StringVarP(&c.Output, "output", "o", c.Output, "output file, or - for stdout")
	flags.IntVar(&c.Indent, "indent", c.Indent, "JSON output indentation width")
}

// NewGenerator creates a [Generator] from the configured values.
func (c *Config) NewGenerator() *Generator {
	return NewGenerator(
		WithTitle(c.Title),
		WithDescription(c.Description),
		WithID(c.ID),
		WithStrict(c.Strict),
	)
}
