package yaml

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
)

// Value is a borrowed, read-only view of a value inside a [Document].
type Value struct {
	d  *data
	id ID
}

// ID returns the identifier of the value, valid for the lifetime of the
// document or until the value is removed.
func (v Value) ID() ID {
	return v.id
}

// Kind reports whether the value is a scalar, a mapping, or a sequence.
func (v Value) Kind() Kind {
	return kindOf(v.d.rawOf(v.id))
}

// IsNull reports whether the value is a null.
func (v Value) IsNull() bool {
	_, ok := v.d.rawOf(v.id).(*rawNull)
	return ok
}

// AsBool returns the value as a boolean.
func (v Value) AsBool() (bool, bool) {
	if r, ok := v.d.rawOf(v.id).(*rawBoolean); ok {
		return r.value, true
	}

	return false, false
}

// AsBytes returns the decoded content of a string value. The result may
// contain non-UTF-8 data. Returns nil when the value is not a string.
func (v Value) AsBytes() []byte {
	if r, ok := v.d.rawOf(v.id).(*rawString); ok {
		if b := v.d.str(r.content); b != nil {
			return b
		}

		return []byte{}
	}

	return nil
}

// AsString returns the decoded content of a string value when it is valid
// UTF-8.
func (v Value) AsString() (string, bool) {
	r, ok := v.d.rawOf(v.id).(*rawString)
	if !ok {
		return "", false
	}

	b := v.d.str(r.content)
	if !utf8.Valid(b) {
		return "", false
	}

	return string(b), true
}

// AsRaw returns the raw byte form of a string or number value. For strings
// that carry an original form, quotes and escapes are included.
func (v Value) AsRaw() []byte {
	switch r := v.d.rawOf(v.id).(type) {
	case *rawString:
		switch r.style {
		case styleOriginal, styleMultiline:
			return v.d.str(r.original)
		}

		return v.d.str(r.content)
	case *rawNumber:
		return v.d.str(r.literal)
	}

	return nil
}

// literal returns the textual form of a number value.
func (v Value) literal() (string, bool) {
	if r, ok := v.d.rawOf(v.id).(*rawNumber); ok {
		return string(v.d.str(r.literal)), true
	}

	return "", false
}

func asInt(v Value, bits int) (int64, bool) {
	lit, ok := v.literal()
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseInt(lit, 10, bits)
	if err != nil {
		return 0, false
	}

	return n, true
}

func asUint(v Value, bits int) (uint64, bool) {
	lit, ok := v.literal()
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseUint(lit, 10, bits)
	if err != nil {
		return 0, false
	}

	return n, true
}

// AsInt8 returns the value as an 8-bit signed integer. Absent on overflow
// or when the literal does not parse.
func (v Value) AsInt8() (int8, bool) {
	n, ok := asInt(v, 8)
	return int8(n), ok
}

// AsInt16 returns the value as a 16-bit signed integer.
func (v Value) AsInt16() (int16, bool) {
	n, ok := asInt(v, 16)
	return int16(n), ok
}

// AsInt32 returns the value as a 32-bit signed integer.
func (v Value) AsInt32() (int32, bool) {
	n, ok := asInt(v, 32)
	return int32(n), ok
}

// AsInt64 returns the value as a 64-bit signed integer.
func (v Value) AsInt64() (int64, bool) {
	return asInt(v, 64)
}

// AsUint8 returns the value as an 8-bit unsigned integer.
func (v Value) AsUint8() (uint8, bool) {
	n, ok := asUint(v, 8)
	return uint8(n), ok
}

// AsUint16 returns the value as a 16-bit unsigned integer.
func (v Value) AsUint16() (uint16, bool) {
	n, ok := asUint(v, 16)
	return uint16(n), ok
}

// AsUint32 returns the value as a 32-bit unsigned integer.
func (v Value) AsUint32() (uint32, bool) {
	n, ok := asUint(v, 32)
	return uint32(n), ok
}

// AsUint64 returns the value as a 64-bit unsigned integer.
func (v Value) AsUint64() (uint64, bool) {
	return asUint(v, 64)
}

// AsFloat32 returns the value as a 32-bit float.
func (v Value) AsFloat32() (float32, bool) {
	lit, ok := v.literal()
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(lit, 32)
	if err != nil {
		return 0, false
	}

	return float32(f), true
}

// AsFloat64 returns the value as a 64-bit float.
func (v Value) AsFloat64() (float64, bool) {
	lit, ok := v.literal()
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// AsDecimal returns the value as an arbitrary-precision decimal, covering
// numbers that do not fit the fixed-width accessors.
func (v Value) AsDecimal() (*apd.Decimal, bool) {
	lit, ok := v.literal()
	if !ok {
		return nil, false
	}

	dec, _, err := apd.NewFromString(lit)
	if err != nil {
		return nil, false
	}

	return dec, true
}

// AsMapping returns the value as a [Mapping].
func (v Value) AsMapping() (Mapping, bool) {
	if _, ok := v.d.rawOf(v.id).(*rawMapping); ok {
		return Mapping{d: v.d, id: v.id}, true
	}

	return Mapping{}, false
}

// AsSequence returns the value as a [Sequence].
func (v Value) AsSequence() (Sequence, bool) {
	if _, ok := v.d.rawOf(v.id).(*rawSequence); ok {
		return Sequence{d: v.d, id: v.id}, true
	}

	return Sequence{}, false
}

// String renders the value, without its prefix.
func (v Value) String() string {
	var sb strings.Builder
	renderRaw(v.d, v.d.rawOf(v.id), &sb)

	return sb.String()
}
