// Package schema infers JSON Schema (Draft 7) from parsed YAML documents
// on a best-effort basis: scalar types from values, object properties from
// mappings, and widened item types from sequences. The source order of
// mapping keys is not recorded in the generated schema.
package schema

import (
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/udoprog/nondestructive-sub000/yaml"
)

// Sentinel errors returned by the generator.
var (
	ErrInvalidYAML = errors.New("invalid yaml")
	ErrReadInput   = errors.New("read input")
	ErrWriteOutput = errors.New("write output")
)

// Generator produces JSON Schema from YAML input.
type Generator struct {
	title       string
	description string
	id          string
	strict      bool
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithTitle sets the schema title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithDescription sets the schema description.
func WithDescription(desc string) Option {
	return func(g *Generator) {
		g.description = desc
	}
}

// WithID sets the schema $id.
func WithID(id string) Option {
	return func(g *Generator) {
		g.id = id
	}
}

// WithStrict sets additionalProperties to false on objects.
func WithStrict(strict bool) Option {
	return func(g *Generator) {
		g.strict = strict
	}
}

// TrueSchema returns a schema that accepts any value.
func TrueSchema() *jsonschema.Schema {
	return &jsonschema.Schema{}
}

// FalseSchema returns a schema that rejects any value.
func FalseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

// Generate produces a JSON Schema from one or more YAML inputs. Later
// inputs widen the schema of earlier ones.
func (g *Generator) Generate(inputs ...[]byte) (*jsonschema.Schema, error) {
	var result *jsonschema.Schema

	if len(inputs) == 0 {
		result = &jsonschema.Schema{}
	}

	for i, input := range inputs {
		schema, err := g.generateSingle(input)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}

		if result == nil {
			result = schema
			continue
		}

		result = mergeSchemas(result, schema)
	}

	result.Schema = "http://json-schema.org/draft-07/schema#"

	if g.title != "" {
		result.Title = g.title
	}

	if g.description != "" {
		result.Description = g.description
	}

	if g.id != "" {
		result.ID = g.id
	}

	if (result.Type == typeObject || result.Properties != nil) && result.AdditionalProperties == nil {
		if g.strict {
			result.AdditionalProperties = FalseSchema()
		} else {
			result.AdditionalProperties = TrueSchema()
		}
	}

	return result, nil
}

// generateSingle processes a single YAML input into a schema.
func (g *Generator) generateSingle(input []byte) (*jsonschema.Schema, error) {
	if isBlank(input) {
		return &jsonschema.Schema{}, nil
	}

	doc, err := yaml.FromBytes(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	return g.walkValue(doc.AsRef()), nil
}

// walkValue recursively generates a schema from a document value.
func (g *Generator) walkValue(v yaml.Value) *jsonschema.Schema {
	switch v.Kind() {
	case yaml.KindMapping:
		m, _ := v.AsMapping()
		return g.walkMapping(m)
	case yaml.KindSequence:
		s, _ := v.AsSequence()
		return g.walkSequence(s)
	}

	if t := inferType(v); t != "" {
		return &jsonschema.Schema{Type: t}
	}

	return &jsonschema.Schema{}
}

// walkMapping processes a mapping into an object schema. Properties are
// collected into a map, so their source order is not recorded, and no
// required list is produced.
func (g *Generator) walkMapping(m yaml.Mapping) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       typeObject,
		Properties: make(map[string]*jsonschema.Schema, m.Len()),
	}

	if g.strict {
		schema.AdditionalProperties = FalseSchema()
	} else {
		schema.AdditionalProperties = TrueSchema()
	}

	for key, value := range m.All() {
		schema.Properties[string(key)] = g.walkValue(value)
	}

	return schema
}

// walkSequence processes a sequence into an array schema with a widened
// item type.
func (g *Generator) walkSequence(s yaml.Sequence) *jsonschema.Schema {
	schema := &jsonschema.Schema{Type: typeArray}

	if items := g.inferItems(s); items != nil {
		schema.Items = items
	}

	return schema
}

func isBlank(input []byte) bool {
	for _, b := range input {
		switch b {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}

	return true
}
