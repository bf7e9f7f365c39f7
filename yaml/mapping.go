package yaml

import "iter"

// Mapping is a borrowed, read-only view of a mapping.
type Mapping struct {
	d  *data
	id ID
}

// ID returns the identifier of the mapping.
func (m Mapping) ID() ID {
	return m.id
}

// Len returns the number of items in the mapping.
func (m Mapping) Len() int {
	return len(m.d.mapping(m.id).items)
}

// IsEmpty reports whether the mapping has no items.
func (m Mapping) IsEmpty() bool {
	return m.Len() == 0
}

// itemByKey returns the first item whose decoded key equals key.
func itemByKey(d *data, id ID, key string) (ID, bool) {
	for _, itemID := range d.mapping(id).items {
		if string(d.str(d.mappingItem(itemID).key.content)) == key {
			return itemID, true
		}
	}

	return 0, false
}

// Get returns the value of the given key, comparing against the decoded
// key content. For duplicate keys the first match wins.
func (m Mapping) Get(key string) (Value, bool) {
	itemID, ok := itemByKey(m.d, m.id, key)
	if !ok {
		return Value{}, false
	}

	return Value{d: m.d, id: m.d.mappingItem(itemID).value}, true
}

// All iterates over the items of the mapping in source order, yielding the
// decoded key bytes and the value.
func (m Mapping) All() iter.Seq2[[]byte, Value] {
	return func(yield func([]byte, Value) bool) {
		for _, itemID := range m.d.mapping(m.id).items {
			item := m.d.mappingItem(itemID)

			if !yield(m.d.str(item.key.content), Value{d: m.d, id: item.value}) {
				return
			}
		}
	}
}

// Backward iterates over the items of the mapping in reverse source order.
func (m Mapping) Backward() iter.Seq2[[]byte, Value] {
	return func(yield func([]byte, Value) bool) {
		items := m.d.mapping(m.id).items

		for i := len(items) - 1; i >= 0; i-- {
			item := m.d.mappingItem(items[i])

			if !yield(m.d.str(item.key.content), Value{d: m.d, id: item.value}) {
				return
			}
		}
	}
}
