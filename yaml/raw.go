package yaml

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

const (
	newline = '\n'
	space   = ' '
)

// raw is the closed set of node representations stored in the arena.
type raw interface {
	sealedRaw()
}

type rawNull struct {
	kind Null
}

type rawBoolean struct {
	value bool
}

// numberHint records which numeric setter produced a number, or float64 for
// parsed literals.
type numberHint int

const (
	hintFloat64 numberHint = iota
	hintFloat32
	hintInt8
	hintInt16
	hintInt32
	hintInt64
	hintUint8
	hintUint16
	hintUint32
	hintUint64
	hintDecimal
)

type rawNumber struct {
	// literal is the exact textual form emitted on output.
	literal stringID
	hint    numberHint
}

// stringStyle is the concrete encoding of a string node.
type stringStyle int

const (
	// styleBare is an unquoted string such as `hello-world`.
	styleBare stringStyle = iota
	// styleSingle is a single-quoted string, written with embedded quotes
	// doubled.
	styleSingle
	// styleDouble is a double-quoted string, written with the
	// double-quoted escape table applied to its content.
	styleDouble
	// styleOriginal keeps the original byte form, quotes and escapes
	// included, for byte-exact output.
	styleOriginal
	// styleMultiline is a block scalar; original holds the bytes from the
	// header marker through the last content line.
	styleMultiline
)

type rawString struct {
	style stringStyle
	// content is the decoded semantic value.
	content stringID
	// original is the byte form used on output for styleOriginal and
	// styleMultiline.
	original stringID
	// prefix precedes original on output for styleMultiline values. Parsed
	// block scalars leave it empty, and synthesized blocks use
	// styleOriginal instead.
	prefix stringID
}

// containerStyle carries the inline-vs-block decision and the inline
// trivia needed to reproduce the source.
type containerStyle struct {
	inline bool
	// trailing reports a trailing comma before the closing bracket.
	trailing bool
	// suffix is the whitespace before the closing bracket.
	suffix stringID
}

type rawMapping struct {
	// indent is the unicode character count of the post-newline tail of
	// the indentation this mapping was found or created at.
	indent int
	style  containerStyle
	items  []ID
}

type rawMappingItem struct {
	key   rawString
	value ID
	// suffix holds whitespace between the value and the following comma in
	// inline mappings.
	suffix stringID
}

type rawSequence struct {
	indent int
	style  containerStyle
	items  []ID
}

type rawSequenceItem struct {
	value  ID
	suffix stringID
}

func (*rawNull) sealedRaw()         {}
func (*rawBoolean) sealedRaw()      {}
func (*rawNumber) sealedRaw()       {}
func (*rawString) sealedRaw()       {}
func (*rawMapping) sealedRaw()      {}
func (*rawMappingItem) sealedRaw()  {}
func (*rawSequence) sealedRaw()     {}
func (*rawSequenceItem) sealedRaw() {}

// indentTail returns the bytes after the final newline of a prefix, which
// is the indentation of whatever follows it.
func indentTail(b []byte) []byte {
	if n := bytes.LastIndexByte(b, newline); n >= 0 {
		return b[n+1:]
	}

	return b
}

// countIndent measures a prefix's indentation in unicode characters, not
// bytes, since the input may indent with arbitrary characters.
func countIndent(b []byte) int {
	return utf8.RuneCount(indentTail(b))
}

// detectStyle picks the string style used when a caller-supplied string is
// written into a document.
func detectStyle(s string) stringStyle {
	switch s {
	case "true", "false", "null":
		return styleSingle
	}

	style := styleBare

	for i, r := range s {
		switch {
		case i == 0 && r >= '0' && r <= '9':
			style = styleSingle
		case r == '\'':
			return styleDouble
		case r == ':':
			style = styleSingle
		case unicode.IsControl(r):
			return styleDouble
		}
	}

	return style
}

// newString builds a string raw with an automatically detected style.
func newString(d *data, s string) *rawString {
	return &rawString{style: detectStyle(s), content: d.insertString(s)}
}

// newStringWith builds a string raw with an explicit public kind.
func newStringWith(d *data, s string, kind StringKind) *rawString {
	style := styleBare

	switch kind {
	case StringSingle:
		style = styleSingle
	case StringDouble:
		style = styleDouble
	}

	return &rawString{style: style, content: d.insertString(s)}
}

// buildNewlineIndent synthesizes a "\n" + indentation prefix that is indent
// characters wide, reusing the glyphs of the given existing indentation and
// padding with spaces past its end.
func buildNewlineIndent(existing []byte, indent int) []byte {
	out := make([]byte, 0, indent+1)
	out = append(out, newline)

	n := 0

	for _, r := range string(existing) {
		if n == indent {
			break
		}

		out = utf8.AppendRune(out, r)
		n++
	}

	for ; n < indent; n++ {
		out = append(out, space)
	}

	return out
}

// containerOf resolves the container two levels above a value: its parent
// is a mapping or sequence item, whose parent is the container itself.
// Returns zero when the value does not hang off a container.
func containerOf(d *data, id ID) ID {
	item := d.layout(id).parent
	if item == 0 {
		return 0
	}

	container := d.layout(item).parent
	if container == 0 {
		return 0
	}

	switch d.rawOf(container).(type) {
	case *rawMapping, *rawSequence:
		return container
	}

	return 0
}

// makeIndent computes the indentation for a container or block created at
// id, along with the synthesized newline prefix for content placed under
// it. Inside another container the target is that container's indentation
// plus two; otherwise it derives from the node's own prefix plus extra
// spaces.
func makeIndent(d *data, id ID, extra int) (int, stringID) {
	container := containerOf(d, id)

	if container == 0 {
		prefix := d.layout(id).prefix
		indent := countIndent(d.str(prefix)) + extra

		if extra == 0 {
			return indent, prefix
		}

		out := append([]byte{}, d.str(prefix)...)
		for range extra {
			out = append(out, space)
		}

		return indent, d.insertBytes(out)
	}

	var indent int

	switch r := d.rawOf(container).(type) {
	case *rawMapping:
		indent = r.indent + 2
	case *rawSequence:
		indent = r.indent + 2
	}

	existing := indentTail(d.prefix(container))

	return indent, d.insertBytes(buildNewlineIndent(existing, indent))
}

// newBlock synthesizes a block scalar from lines at the value id. The
// original byte form is kept alongside the decoded content so output is
// byte-exact.
func newBlock(d *data, id ID, lines []string, block Block) *rawString {
	_, prefix := makeIndent(d, id, 2)

	marker, join := byte('|'), byte(newline)
	if block.folded {
		marker, join = '>', space
	}

	original := []byte{marker}

	switch block.chomp {
	case ChompStrip:
		original = append(original, '-')
	case ChompKeep:
		original = append(original, '+')
	}

	for _, line := range lines {
		original = append(original, d.str(prefix)...)
		original = append(original, line...)
	}

	var content []byte

	for i, line := range lines {
		if i > 0 {
			content = append(content, join)
		}

		content = append(content, line...)
	}

	if len(lines) > 0 && block.chomp != ChompStrip {
		content = append(content, newline)
	}

	return &rawString{
		style:    styleOriginal,
		content:  d.insertBytes(content),
		original: d.insertBytes(original),
	}
}
