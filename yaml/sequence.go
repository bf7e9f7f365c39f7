package yaml

import "iter"

// Sequence is a borrowed, read-only view of a sequence.
type Sequence struct {
	d  *data
	id ID
}

// ID returns the identifier of the sequence.
func (s Sequence) ID() ID {
	return s.id
}

// Len returns the number of items in the sequence.
func (s Sequence) Len() int {
	return len(s.d.sequence(s.id).items)
}

// IsEmpty reports whether the sequence has no items.
func (s Sequence) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns the value at the given index.
func (s Sequence) Get(index int) (Value, bool) {
	items := s.d.sequence(s.id).items
	if index < 0 || index >= len(items) {
		return Value{}, false
	}

	return Value{d: s.d, id: s.d.sequenceItem(items[index]).value}, true
}

// All iterates over the items of the sequence in source order.
func (s Sequence) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, itemID := range s.d.sequence(s.id).items {
			if !yield(i, Value{d: s.d, id: s.d.sequenceItem(itemID).value}) {
				return
			}
		}
	}
}

// Backward iterates over the items of the sequence in reverse source
// order.
func (s Sequence) Backward() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		items := s.d.sequence(s.id).items

		for i := len(items) - 1; i >= 0; i-- {
			if !yield(i, Value{d: s.d, id: s.d.sequenceItem(items[i]).value}) {
				return
			}
		}
	}
}
