package schema

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/udoprog/nondestructive-sub000/yaml"
)

// JSON Schema type constants.
const (
	typeBoolean = "boolean"
	typeInteger = "integer"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
)

// inferType returns the JSON Schema type string for the given scalar.
// Returns an empty string for null values (maximally permissive).
func inferType(v yaml.Value) string {
	switch v.Kind() {
	case yaml.KindMapping:
		return typeObject
	case yaml.KindSequence:
		return typeArray
	}

	if _, ok := v.AsBool(); ok {
		return typeBoolean
	}

	if _, ok := v.AsInt64(); ok {
		return typeInteger
	}

	if _, ok := v.AsFloat64(); ok {
		return typeNumber
	}

	if v.IsNull() {
		return ""
	}

	if v.AsBytes() != nil {
		return typeString
	}

	return ""
}

// inferItems creates an items schema from a sequence's elements. Mixed
// element types widen; an empty sequence has no item constraint.
func (g *Generator) inferItems(s yaml.Sequence) *jsonschema.Schema {
	if s.IsEmpty() {
		return nil
	}

	var (
		resultType string
		item       *jsonschema.Schema
		first      = true
		uniform    = true
	)

	for _, v := range s.All() {
		elemType := inferType(v)

		if first {
			resultType = elemType
			item = g.walkValue(v)
			first = false

			continue
		}

		widened := widenType(resultType, elemType)
		if widened != resultType {
			uniform = false
		}

		resultType = widened
	}

	if resultType == "" {
		return nil
	}

	// Object and array elements keep their first element's full schema
	// only when every element shares the type.
	if uniform && (resultType == typeObject || resultType == typeArray) {
		return item
	}

	return &jsonschema.Schema{Type: resultType}
}

// widenType returns the widened type when merging two type strings.
// Returns empty string (no constraint) for incompatible types.
func widenType(a, b string) string {
	if a == b {
		return a
	}

	// Null merges transparently.
	if a == "" {
		return b
	}

	if b == "" {
		return a
	}

	if (a == typeInteger && b == typeNumber) || (a == typeNumber && b == typeInteger) {
		return typeNumber
	}

	return ""
}

// mergeSchemas widens dst by src, unioning object properties and widening
// scalar types.
func mergeSchemas(dst, src *jsonschema.Schema) *jsonschema.Schema {
	if dst == nil {
		return src
	}

	if src == nil {
		return dst
	}

	if dst.Type == typeObject && src.Type == typeObject {
		if dst.Properties == nil {
			dst.Properties = make(map[string]*jsonschema.Schema)
		}

		for key, sub := range src.Properties {
			if existing, ok := dst.Properties[key]; ok {
				dst.Properties[key] = mergeSchemas(existing, sub)
			} else {
				dst.Properties[key] = sub
			}
		}

		return dst
	}

	dst.Type = widenType(dst.Type, src.Type)

	if dst.Type != typeObject {
		dst.Properties = nil
	}

	if dst.Type != typeArray {
		dst.Items = nil
	}

	return dst
}
