package yaml

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// MappingMut is an exclusive, mutable view of a mapping.
type MappingMut struct {
	d  *data
	id ID
}

// ID returns the identifier of the mapping.
func (m MappingMut) ID() ID {
	return m.id
}

// Ref returns the mapping as a read-only [Mapping].
func (m MappingMut) Ref() Mapping {
	return Mapping{d: m.d, id: m.id}
}

// GetMut returns the value of the given key mutably.
func (m MappingMut) GetMut(key string) (ValueMut, bool) {
	itemID, ok := itemByKey(m.d, m.id, key)
	if !ok {
		return ValueMut{}, false
	}

	return ValueMut{d: m.d, id: m.d.mappingItem(itemID).value}, true
}

// insertRaw inserts a value under key. An existing key has its value
// replaced in place, keeping the item and its layout.
func (m MappingMut) insertRaw(key string, sep Separator, value raw) ID {
	if itemID, ok := itemByKey(m.d, m.id, key); ok {
		valueID := m.d.mappingItem(itemID).value
		m.d.replace(valueID, value)

		return valueID
	}

	raw := m.d.mapping(m.id)

	var lastValue ID
	if len(raw.items) > 0 {
		lastValue = m.d.mappingItem(raw.items[len(raw.items)-1]).value
	}

	separator := separatorFor(m.d, sep, raw.style, lastValue)
	itemPrefix := itemPrefixFor(m.d, m.id, raw.indent, raw.style, raw.items)

	itemID := m.d.insert(&rawMappingItem{
		key: rawString{style: styleBare, content: m.d.insertString(key)},
	}, itemPrefix, m.id)

	valueID := m.d.insert(value, separator, itemID)
	m.d.mappingItem(itemID).value = valueID

	raw = m.d.mapping(m.id)
	raw.items = append(raw.items, itemID)

	return valueID
}

// Insert inserts a new null value under key with the given separator and
// returns it mutably, so any value can be set in place. Inserting an
// existing key replaces its value.
func (m MappingMut) Insert(key string, sep Separator) ValueMut {
	return ValueMut{d: m.d, id: m.insertRaw(key, sep, &rawNull{kind: NullEmpty})}
}

// InsertString inserts a string under key, quoting it as needed.
func (m MappingMut) InsertString(key, value string) {
	m.insertRaw(key, Auto(), newString(m.d, value))
}

// InsertBool inserts a boolean under key.
func (m MappingMut) InsertBool(key string, value bool) {
	m.insertRaw(key, Auto(), &rawBoolean{value: value})
}

func (m MappingMut) insertNumber(key, literal string, hint numberHint) {
	m.insertRaw(key, Auto(), &rawNumber{literal: m.d.insertString(literal), hint: hint})
}

// InsertInt8 inserts an 8-bit signed integer under key.
func (m MappingMut) InsertInt8(key string, n int8) {
	m.insertNumber(key, strconv.FormatInt(int64(n), 10), hintInt8)
}

// InsertInt16 inserts a 16-bit signed integer under key.
func (m MappingMut) InsertInt16(key string, n int16) {
	m.insertNumber(key, strconv.FormatInt(int64(n), 10), hintInt16)
}

// InsertInt32 inserts a 32-bit signed integer under key.
func (m MappingMut) InsertInt32(key string, n int32) {
	m.insertNumber(key, strconv.FormatInt(int64(n), 10), hintInt32)
}

// InsertInt64 inserts a 64-bit signed integer under key.
func (m MappingMut) InsertInt64(key string, n int64) {
	m.insertNumber(key, strconv.FormatInt(n, 10), hintInt64)
}

// InsertUint8 inserts an 8-bit unsigned integer under key.
func (m MappingMut) InsertUint8(key string, n uint8) {
	m.insertNumber(key, strconv.FormatUint(uint64(n), 10), hintUint8)
}

// InsertUint16 inserts a 16-bit unsigned integer under key.
func (m MappingMut) InsertUint16(key string, n uint16) {
	m.insertNumber(key, strconv.FormatUint(uint64(n), 10), hintUint16)
}

// InsertUint32 inserts a 32-bit unsigned integer under key.
func (m MappingMut) InsertUint32(key string, n uint32) {
	m.insertNumber(key, strconv.FormatUint(uint64(n), 10), hintUint32)
}

// InsertUint64 inserts a 64-bit unsigned integer under key.
func (m MappingMut) InsertUint64(key string, n uint64) {
	m.insertNumber(key, strconv.FormatUint(n, 10), hintUint64)
}

// InsertFloat32 inserts a 32-bit float under key.
func (m MappingMut) InsertFloat32(key string, f float32) {
	m.insertNumber(key, strconv.FormatFloat(float64(f), 'g', -1, 32), hintFloat32)
}

// InsertFloat64 inserts a 64-bit float under key.
func (m MappingMut) InsertFloat64(key string, f float64) {
	m.insertNumber(key, strconv.FormatFloat(f, 'g', -1, 64), hintFloat64)
}

// InsertDecimal inserts an arbitrary-precision decimal under key.
func (m MappingMut) InsertDecimal(key string, dec *apd.Decimal) {
	m.insertNumber(key, dec.Text('f'), hintDecimal)
}

// InsertBlock inserts a block scalar under key, built from the given lines
// and block configuration.
func (m MappingMut) InsertBlock(key string, lines []string, block Block) {
	valueID := m.insertRaw(key, Auto(), &rawNull{kind: NullEmpty})
	m.d.replace(valueID, newBlock(m.d, valueID, lines, block))
}

// Remove removes the given key, reporting whether it existed. The removed
// value and its children are dropped; their ids become invalid.
func (m MappingMut) Remove(key string) bool {
	itemID, ok := itemByKey(m.d, m.id, key)
	if !ok {
		return false
	}

	raw := m.d.mapping(m.id)

	for i, id := range raw.items {
		if id == itemID {
			raw.items = append(raw.items[:i], raw.items[i+1:]...)
			break
		}
	}

	m.d.drop(itemID)

	return true
}

// Clear removes every item from the mapping. The container itself
// remains, along with its surrounding whitespace.
func (m MappingMut) Clear() {
	raw := m.d.mapping(m.id)
	items := raw.items
	raw.items = nil

	for _, itemID := range items {
		m.d.drop(itemID)
	}
}
