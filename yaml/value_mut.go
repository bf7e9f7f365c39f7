package yaml

import (
	"bytes"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// ValueMut is an exclusive, mutable view of a value inside a [Document].
//
// While a mutable view is in use the document must not be read or written
// through any other view.
type ValueMut struct {
	d  *data
	id ID
}

// ID returns the identifier of the value.
func (v ValueMut) ID() ID {
	return v.id
}

// Kind reports whether the value is a scalar, a mapping, or a sequence.
func (v ValueMut) Kind() Kind {
	return kindOf(v.d.rawOf(v.id))
}

// Ref returns the value as a read-only [Value].
func (v ValueMut) Ref() Value {
	return Value{d: v.d, id: v.id}
}

// AsMappingMut returns the value as a [MappingMut].
func (v ValueMut) AsMappingMut() (MappingMut, bool) {
	if _, ok := v.d.rawOf(v.id).(*rawMapping); ok {
		return MappingMut{d: v.d, id: v.id}, true
	}

	return MappingMut{}, false
}

// AsSequenceMut returns the value as a [SequenceMut].
func (v ValueMut) AsSequenceMut() (SequenceMut, bool) {
	if _, ok := v.d.rawOf(v.id).(*rawSequence); ok {
		return SequenceMut{d: v.d, id: v.id}, true
	}

	return SequenceMut{}, false
}

// SetNull replaces the value with a null of the given kind.
func (v ValueMut) SetNull(kind Null) {
	v.d.replace(v.id, &rawNull{kind: kind})
}

// SetBool replaces the value with a boolean.
func (v ValueMut) SetBool(value bool) {
	v.d.replace(v.id, &rawBoolean{value: value})
}

// SetString replaces the value with a string, quoting it as needed.
func (v ValueMut) SetString(s string) {
	v.d.replace(v.id, newString(v.d, s))
}

// SetStringKind replaces the value with a string of an explicit kind. The
// caller is responsible for the encoding being able to carry the string.
func (v ValueMut) SetStringKind(s string, kind StringKind) {
	v.d.replace(v.id, newStringWith(v.d, s, kind))
}

func (v ValueMut) setNumber(literal string, hint numberHint) {
	v.d.replace(v.id, &rawNumber{literal: v.d.insertString(literal), hint: hint})
}

// SetInt8 replaces the value with an 8-bit signed integer.
func (v ValueMut) SetInt8(n int8) { v.setNumber(strconv.FormatInt(int64(n), 10), hintInt8) }

// SetInt16 replaces the value with a 16-bit signed integer.
func (v ValueMut) SetInt16(n int16) { v.setNumber(strconv.FormatInt(int64(n), 10), hintInt16) }

// SetInt32 replaces the value with a 32-bit signed integer.
func (v ValueMut) SetInt32(n int32) { v.setNumber(strconv.FormatInt(int64(n), 10), hintInt32) }

// SetInt64 replaces the value with a 64-bit signed integer.
func (v ValueMut) SetInt64(n int64) { v.setNumber(strconv.FormatInt(n, 10), hintInt64) }

// SetUint8 replaces the value with an 8-bit unsigned integer.
func (v ValueMut) SetUint8(n uint8) { v.setNumber(strconv.FormatUint(uint64(n), 10), hintUint8) }

// SetUint16 replaces the value with a 16-bit unsigned integer.
func (v ValueMut) SetUint16(n uint16) { v.setNumber(strconv.FormatUint(uint64(n), 10), hintUint16) }

// SetUint32 replaces the value with a 32-bit unsigned integer.
func (v ValueMut) SetUint32(n uint32) { v.setNumber(strconv.FormatUint(uint64(n), 10), hintUint32) }

// SetUint64 replaces the value with a 64-bit unsigned integer.
func (v ValueMut) SetUint64(n uint64) { v.setNumber(strconv.FormatUint(n, 10), hintUint64) }

// SetFloat32 replaces the value with a 32-bit float.
func (v ValueMut) SetFloat32(f float32) {
	v.setNumber(strconv.FormatFloat(float64(f), 'g', -1, 32), hintFloat32)
}

// SetFloat64 replaces the value with a 64-bit float.
func (v ValueMut) SetFloat64(f float64) {
	v.setNumber(strconv.FormatFloat(f, 'g', -1, 64), hintFloat64)
}

// SetDecimal replaces the value with an arbitrary-precision decimal.
func (v ValueMut) SetDecimal(dec *apd.Decimal) {
	v.setNumber(dec.Text('f'), hintDecimal)
}

// MakeMapping replaces the value with an empty block mapping, unless it
// already is a mapping. The mapping indents two characters past its
// containing construct.
func (v ValueMut) MakeMapping() MappingMut {
	if _, ok := v.d.rawOf(v.id).(*rawMapping); !ok {
		indent, _ := makeIndent(v.d, v.id, 0)
		v.d.replace(v.id, &rawMapping{indent: indent})
	}

	return MappingMut{d: v.d, id: v.id}
}

// MakeSequence replaces the value with an empty block sequence, unless it
// already is a sequence. The sequence indents two characters past its
// containing construct.
func (v ValueMut) MakeSequence() SequenceMut {
	if _, ok := v.d.rawOf(v.id).(*rawSequence); !ok {
		indent, _ := makeIndent(v.d, v.id, 0)
		v.d.replace(v.id, &rawSequence{indent: indent})
	}

	return SequenceMut{d: v.d, id: v.id}
}

// hoistToOwnLine moves an empty block container created on its key's line
// onto a fresh line before its first child is added. Containers inside
// sequences keep their place on the marker line, as do containers whose
// prefix already breaks the line.
func hoistToOwnLine(d *data, containerID ID, indent int) {
	if bytes.IndexByte(d.prefix(containerID), newline) >= 0 {
		return
	}

	outer := containerOf(d, containerID)
	if outer == 0 {
		return
	}

	if _, ok := d.rawOf(outer).(*rawMapping); !ok {
		return
	}

	prefix := buildNewlineIndent(indentTail(d.prefix(outer)), indent)
	d.layout(containerID).prefix = d.insertBytes(prefix)
}

// itemPrefixFor computes the prefix of a newly added item. The first item
// follows the container directly; later items start on a new line at the
// container's indentation, or after the previous item's spacing in inline
// containers.
func itemPrefixFor(d *data, containerID ID, indent int, style containerStyle, items []ID) stringID {
	if len(items) == 0 {
		if !style.inline {
			hoistToOwnLine(d, containerID, indent)
		}

		return emptyID
	}

	if style.inline {
		return d.layout(items[len(items)-1]).prefix
	}

	return d.insertBytes(buildNewlineIndent(indentTail(d.prefix(containerID)), indent))
}

// separatorFor resolves a [Separator] against the container's last item.
// In block containers a separator that is empty or breaks the line, as in
// front of a nested container, is not inherited.
func separatorFor(d *data, sep Separator, style containerStyle, lastValue ID) stringID {
	if sep.custom {
		return d.insertBytes(sep.value)
	}

	if lastValue != 0 {
		last := d.layout(lastValue).prefix

		if style.inline {
			return last
		}

		if len(d.str(last)) > 0 && bytes.IndexByte(d.str(last), newline) < 0 {
			return last
		}
	}

	return d.insertString(" ")
}
