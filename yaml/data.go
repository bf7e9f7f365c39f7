package yaml

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// stringID is the 128-bit content hash identifying an interned string.
// Equal ids imply equal bytes. The zero value is the empty string.
type stringID struct {
	hi, lo uint64
}

// emptyID is the sentinel id of the empty string.
var emptyID = stringID{}

func (s stringID) String() string {
	return fmt.Sprintf("%016x%016x", s.hi, s.lo)
}

// ID is a stable, opaque identifier for a value inside a [Document].
//
// It is obtained through [Value.ID], [Mapping.ID], or [Sequence.ID] and can
// be turned back into a value through [Document.Value] or
// [Document.ValueMut]. An ID stays valid until its node is removed from the
// document; using it afterwards panics. Ids must not be shared between
// documents.
type ID int

func (id ID) String() string {
	return fmt.Sprintf("%08x", int(id))
}

// layout is the per-node metadata needed to reconstruct the original bytes.
type layout struct {
	// prefix references the bytes immediately preceding the node, typically
	// whitespace with any comments and newlines.
	prefix stringID
	// parent is the containing node, or zero for the root.
	parent ID
}

// entry pairs a raw node with its layout.
type entry struct {
	raw    raw
	layout layout
}

// data owns every node and interned string of a single document.
//
// Node slots are never reused after a drop, so a stale [ID] always fails
// loudly instead of aliasing a newer node.
type data struct {
	strings map[stringID][]byte
	nodes   []*entry
}

func newData() *data {
	return &data{
		strings: map[stringID][]byte{emptyID: nil},
	}
}

// str returns the interned bytes for id. Panics if the id was never
// produced by this store.
func (d *data) str(id stringID) []byte {
	b, ok := d.strings[id]
	if !ok {
		panic(fmt.Sprintf("yaml: missing string with id %s", id))
	}

	return b
}

// insertBytes interns the given bytes and returns their id. The bytes are
// copied; the store never evicts.
func (d *data) insertBytes(b []byte) stringID {
	if len(b) == 0 {
		return emptyID
	}

	sum := xxh3.Hash128(b)

	id := stringID{hi: sum.Hi, lo: sum.Lo}
	if _, ok := d.strings[id]; !ok {
		owned := make([]byte, len(b))
		copy(owned, b)
		d.strings[id] = owned
	}

	return id
}

// insertString interns a string.
func (d *data) insertString(s string) stringID {
	if len(s) == 0 {
		return emptyID
	}

	sum := xxh3.HashString128(s)

	id := stringID{hi: sum.Hi, lo: sum.Lo}
	if _, ok := d.strings[id]; !ok {
		d.strings[id] = []byte(s)
	}

	return id
}

// insert stores a new node and returns its id.
func (d *data) insert(r raw, prefix stringID, parent ID) ID {
	d.nodes = append(d.nodes, &entry{
		raw:    r,
		layout: layout{prefix: prefix, parent: parent},
	})

	return ID(len(d.nodes))
}

// entryOf resolves an id, panicking when the node has been dropped or the
// id never belonged to this document.
func (d *data) entryOf(id ID) *entry {
	if id <= 0 || int(id) > len(d.nodes) || d.nodes[id-1] == nil {
		panic(fmt.Sprintf("yaml: expected value at %s", id))
	}

	return d.nodes[id-1]
}

func (d *data) layout(id ID) *layout {
	return &d.entryOf(id).layout
}

// prefix returns the prefix bytes of the node at id.
func (d *data) prefix(id ID) []byte {
	return d.str(d.layout(id).prefix)
}

func (d *data) rawOf(id ID) raw {
	return d.entryOf(id).raw
}

func (d *data) mapping(id ID) *rawMapping {
	if r, ok := d.entryOf(id).raw.(*rawMapping); ok {
		return r
	}

	panic(fmt.Sprintf("yaml: expected mapping at %s", id))
}

func (d *data) sequence(id ID) *rawSequence {
	if r, ok := d.entryOf(id).raw.(*rawSequence); ok {
		return r
	}

	panic(fmt.Sprintf("yaml: expected sequence at %s", id))
}

func (d *data) mappingItem(id ID) *rawMappingItem {
	if r, ok := d.entryOf(id).raw.(*rawMappingItem); ok {
		return r
	}

	panic(fmt.Sprintf("yaml: expected mapping item at %s", id))
}

func (d *data) sequenceItem(id ID) *rawSequenceItem {
	if r, ok := d.entryOf(id).raw.(*rawSequenceItem); ok {
		return r
	}

	panic(fmt.Sprintf("yaml: expected sequence item at %s", id))
}

// replace swaps the raw at id in place, keeping the id and layout, and
// recursively drops the children of the previous raw.
func (d *data) replace(id ID, r raw) {
	e := d.entryOf(id)
	old := e.raw
	e.raw = r
	d.dropRaw(old)
}

// replaceWith is replace with a new layout prefix.
func (d *data) replaceWith(id ID, r raw, prefix stringID) {
	e := d.entryOf(id)
	e.layout.prefix = prefix
	old := e.raw
	e.raw = r
	d.dropRaw(old)
}

// drop removes the node at id along with all of its children.
func (d *data) drop(id ID) {
	if id <= 0 || int(id) > len(d.nodes) || d.nodes[id-1] == nil {
		return
	}

	e := d.nodes[id-1]
	d.nodes[id-1] = nil
	d.dropRaw(e.raw)
}

// dropRaw drops the children referenced by a detached raw.
func (d *data) dropRaw(r raw) {
	switch r := r.(type) {
	case *rawMapping:
		for _, item := range r.items {
			d.drop(item)
		}
	case *rawMappingItem:
		d.drop(r.value)
	case *rawSequence:
		for _, item := range r.items {
			d.drop(item)
		}
	case *rawSequenceItem:
		d.drop(r.value)
	}
}
