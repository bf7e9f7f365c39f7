package yaml

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// writeToEq enables the debug cross-check asserting that the display path
// and the writer path produce identical bytes.
var writeToEq = os.Getenv("NONDESTRUCTIVE_WRITE_TO_EQ") != ""

// Document is a whitespace-preserving YAML document.
//
// A document that was never mutated serializes to exactly the bytes it was
// parsed from. A document is singly-owned: read views borrow it shared,
// write views exclusively, and it must not be mutated concurrently.
type Document struct {
	d      *data
	root   ID
	suffix stringID
}

// FromBytes parses a YAML document from a byte slice. The input is not
// required to be UTF-8.
func FromBytes(input []byte) (*Document, error) {
	return parseDocument(input)
}

// FromString parses a YAML document from a string.
func FromString(input string) (*Document, error) {
	return parseDocument([]byte(input))
}

// AsRef returns the root of the document as a [Value].
func (doc *Document) AsRef() Value {
	return Value{d: doc.d, id: doc.root}
}

// AsMut returns the root of the document as a [ValueMut].
func (doc *Document) AsMut() ValueMut {
	return ValueMut{d: doc.d, id: doc.root}
}

// Value resolves an [ID] previously obtained from this document.
//
// Panics if the id refers to a value which has since been removed. Ids
// from other documents have unspecified behavior.
func (doc *Document) Value(id ID) Value {
	doc.d.entryOf(id)

	return Value{d: doc.d, id: id}
}

// ValueMut resolves an [ID] previously obtained from this document into a
// mutable value.
//
// Panics if the id refers to a value which has since been removed. Ids
// from other documents have unspecified behavior.
func (doc *Document) ValueMut(id ID) ValueMut {
	doc.d.entryOf(id)

	return ValueMut{d: doc.d, id: id}
}

// countingWriter tracks how many bytes have been written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)

	return n, err
}

// WriteTo writes the bytes of the document to output, implementing
// [io.WriterTo].
func (doc *Document) WriteTo(output io.Writer) (int64, error) {
	cw := &countingWriter{w: output}

	if err := writeAll(cw, doc.d.prefix(doc.root)); err != nil {
		return cw.n, err
	}

	if err := writeRaw(doc.d, doc.d.rawOf(doc.root), cw); err != nil {
		return cw.n, err
	}

	return cw.n, writeAll(cw, doc.d.str(doc.suffix))
}

func (doc *Document) display() string {
	var sb strings.Builder

	sb.Write(doc.d.prefix(doc.root))
	renderRaw(doc.d, doc.d.rawOf(doc.root), &sb)
	sb.Write(doc.d.str(doc.suffix))

	return sb.String()
}

// String returns the bytes of the document as a string.
//
// When the NONDESTRUCTIVE_WRITE_TO_EQ environment variable is set, the
// result is asserted byte-equal against [Document.WriteTo].
func (doc *Document) String() string {
	out := doc.display()

	if writeToEq {
		var buf strings.Builder

		if _, err := doc.WriteTo(&buf); err != nil {
			panic("yaml: Document.WriteTo to a buffer should not fail: " + err.Error())
		}

		if buf.String() != out {
			slog.Error("serialization paths disagree",
				slog.String("display", out),
				slog.String("write_to", buf.String()),
			)
			panic("yaml: display and WriteTo produced different bytes")
		}
	}

	return out
}
