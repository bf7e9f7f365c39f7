package yaml

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// SequenceMut is an exclusive, mutable view of a sequence.
type SequenceMut struct {
	d  *data
	id ID
}

// ID returns the identifier of the sequence.
func (s SequenceMut) ID() ID {
	return s.id
}

// Ref returns the sequence as a read-only [Sequence].
func (s SequenceMut) Ref() Sequence {
	return Sequence{d: s.d, id: s.id}
}

// GetMut returns the value at the given index mutably.
func (s SequenceMut) GetMut(index int) (ValueMut, bool) {
	items := s.d.sequence(s.id).items
	if index < 0 || index >= len(items) {
		return ValueMut{}, false
	}

	return ValueMut{d: s.d, id: s.d.sequenceItem(items[index]).value}, true
}

// pushRaw appends a value to the sequence.
func (s SequenceMut) pushRaw(sep Separator, value raw) ID {
	raw := s.d.sequence(s.id)

	var lastValue ID
	if len(raw.items) > 0 {
		lastValue = s.d.sequenceItem(raw.items[len(raw.items)-1]).value
	}

	separator := separatorFor(s.d, sep, raw.style, lastValue)
	itemPrefix := itemPrefixFor(s.d, s.id, raw.indent, raw.style, raw.items)

	itemID := s.d.insert(&rawSequenceItem{}, itemPrefix, s.id)
	valueID := s.d.insert(value, separator, itemID)
	s.d.sequenceItem(itemID).value = valueID

	raw = s.d.sequence(s.id)
	raw.items = append(raw.items, itemID)

	return valueID
}

// Push appends a new null value with the given separator and returns it
// mutably, so any value can be set in place.
func (s SequenceMut) Push(sep Separator) ValueMut {
	return ValueMut{d: s.d, id: s.pushRaw(sep, &rawNull{kind: NullEmpty})}
}

// PushString appends a string, quoting it as needed.
func (s SequenceMut) PushString(value string) {
	s.pushRaw(Auto(), newString(s.d, value))
}

// PushBool appends a boolean.
func (s SequenceMut) PushBool(value bool) {
	s.pushRaw(Auto(), &rawBoolean{value: value})
}

func (s SequenceMut) pushNumber(literal string, hint numberHint) {
	s.pushRaw(Auto(), &rawNumber{literal: s.d.insertString(literal), hint: hint})
}

// PushInt8 appends an 8-bit signed integer.
func (s SequenceMut) PushInt8(n int8) {
	s.pushNumber(strconv.FormatInt(int64(n), 10), hintInt8)
}

// PushInt16 appends a 16-bit signed integer.
func (s SequenceMut) PushInt16(n int16) {
	s.pushNumber(strconv.FormatInt(int64(n), 10), hintInt16)
}

// PushInt32 appends a 32-bit signed integer.
func (s SequenceMut) PushInt32(n int32) {
	s.pushNumber(strconv.FormatInt(int64(n), 10), hintInt32)
}

// PushInt64 appends a 64-bit signed integer.
func (s SequenceMut) PushInt64(n int64) {
	s.pushNumber(strconv.FormatInt(n, 10), hintInt64)
}

// PushUint8 appends an 8-bit unsigned integer.
func (s SequenceMut) PushUint8(n uint8) {
	s.pushNumber(strconv.FormatUint(uint64(n), 10), hintUint8)
}

// PushUint16 appends a 16-bit unsigned integer.
func (s SequenceMut) PushUint16(n uint16) {
	s.pushNumber(strconv.FormatUint(uint64(n), 10), hintUint16)
}

// PushUint32 appends a 32-bit unsigned integer.
func (s SequenceMut) PushUint32(n uint32) {
	s.pushNumber(strconv.FormatUint(uint64(n), 10), hintUint32)
}

// PushUint64 appends a 64-bit unsigned integer.
func (s SequenceMut) PushUint64(n uint64) {
	s.pushNumber(strconv.FormatUint(n, 10), hintUint64)
}

// PushFloat32 appends a 32-bit float.
func (s SequenceMut) PushFloat32(f float32) {
	s.pushNumber(strconv.FormatFloat(float64(f), 'g', -1, 32), hintFloat32)
}

// PushFloat64 appends a 64-bit float.
func (s SequenceMut) PushFloat64(f float64) {
	s.pushNumber(strconv.FormatFloat(f, 'g', -1, 64), hintFloat64)
}

// PushDecimal appends an arbitrary-precision decimal.
func (s SequenceMut) PushDecimal(dec *apd.Decimal) {
	s.pushNumber(dec.Text('f'), hintDecimal)
}

// Remove removes the item at the given index, reporting whether it
// existed. The removed value and its children are dropped; their ids
// become invalid.
func (s SequenceMut) Remove(index int) bool {
	raw := s.d.sequence(s.id)
	if index < 0 || index >= len(raw.items) {
		return false
	}

	itemID := raw.items[index]
	raw.items = append(raw.items[:index], raw.items[index+1:]...)
	s.d.drop(itemID)

	return true
}

// Clear removes every item from the sequence. The container itself
// remains, along with its surrounding whitespace.
func (s SequenceMut) Clear() {
	raw := s.d.sequence(s.id)
	items := raw.items
	raw.items = nil

	for _, itemID := range items {
		s.d.drop(itemID)
	}
}
