package yaml

import (
	"bytes"
	"unicode/utf8"
)

// parser is a cursor over the input bytes. Every byte it consumes ends up
// interned into a prefix, separator, or body field of some node; a skipped
// byte would break the round-trip guarantee.
type parser struct {
	d     *data
	input []byte
	pos   int
}

func isSpace(b byte) bool {
	switch b {
	case space, '\t', newline, '\f', '\r':
		return true
	}

	return false
}

func isGraphic(b byte) bool {
	return b > space && b < 0x7f
}

func isNumberStart(b byte) bool {
	return b == '-' || b == '.' || (b >= '0' && b <= '9')
}

func isNumberByte(b byte) bool {
	return b == '.' || (b >= '0' && b <= '9')
}

// peek returns the next byte, or zero at the end of input.
func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}

	return 0
}

// peek2 returns the next two bytes, padded with zero at the end of input.
func (p *parser) peek2() (byte, byte) {
	b0 := p.peek()

	if p.pos+1 < len(p.input) {
		return b0, p.input[p.pos+1]
	}

	return b0, 0
}

// bump advances the cursor by n bytes, clamped to the input.
func (p *parser) bump(n int) {
	p.pos = min(p.pos+n, len(p.input))
}

func (p *parser) eof() bool {
	return p.pos == len(p.input)
}

// string returns the input from start to the cursor.
func (p *parser) string(start int) []byte {
	return p.input[start:p.pos]
}

// find advances the cursor to the next occurrence of b, or to the end of
// input.
func (p *parser) find(b byte) {
	if n := bytes.IndexByte(p.input[p.pos:], b); n >= 0 {
		p.bump(n)
		return
	}

	p.pos = len(p.input)
}

// scanSpace consumes a run of whitespace and returns the newline count.
func (p *parser) scanSpace() int {
	nl := 0

	for isSpace(p.peek()) {
		if p.peek() == newline {
			nl++
		}

		p.bump(1)
	}

	return nl
}

// ws consumes whitespace along with any comment lines and returns the
// interned run and its newline count. Comments belong to the prefix of
// whatever node follows them.
func (p *parser) ws() (stringID, int) {
	start := p.pos
	nl := 0

	for {
		nl += p.scanSpace()

		if p.peek() != '#' {
			break
		}

		p.find(newline)
	}

	return p.d.insertBytes(p.string(start)), nl
}

// number consumes a numeric literal.
func (p *parser) number() stringID {
	start := p.pos

	if p.peek() == '-' {
		p.bump(1)
	}

	for isNumberByte(p.peek()) {
		p.bump(1)
	}

	return p.d.insertBytes(p.string(start))
}

// singleQuoted consumes a single-quoted string, where the only escape is a
// doubled quote. When an escape is present the original byte form is kept
// for output. Returns the string and its source width in characters.
func (p *parser) singleQuoted() (rawString, int) {
	start := p.pos
	p.bump(1)

	inner := p.pos
	escaped := false

	for {
		b, b2 := p.peek2()

		switch {
		case b == '\'' && b2 == '\'':
			escaped = true

			p.bump(2)
		case b == '\'' || b == 0:
			goto done
		default:
			p.bump(1)
		}
	}

done:
	content := p.string(inner)
	p.bump(1)

	width := utf8.RuneCount(p.string(start))

	if escaped {
		return rawString{
			style:    styleOriginal,
			content:  p.d.insertBytes(unescapeSingle(content)),
			original: p.d.insertBytes(p.string(start)),
		}, width
	}

	return rawString{style: styleSingle, content: p.d.insertBytes(content)}, width
}

// doubleQuoted consumes a double-quoted string, decoding the escape table.
// When an escape is present the original byte form is kept for output.
func (p *parser) doubleQuoted() (rawString, int) {
	start := p.pos
	p.bump(1)

	inner := p.pos
	escaped := false

	for {
		switch b := p.peek(); {
		case b == '\\':
			escaped = true

			p.bump(2)
		case b == '"' || b == 0:
			goto done
		default:
			p.bump(1)
		}
	}

done:
	content := p.string(inner)
	p.bump(1)

	width := utf8.RuneCount(p.string(start))

	if escaped {
		return rawString{
			style:    styleOriginal,
			content:  p.d.insertBytes(unescapeDouble(content)),
			original: p.d.insertBytes(p.string(start)),
		}, width
	}

	return rawString{style: styleDouble, content: p.d.insertBytes(content)}, width
}

// classifyPlain turns a plain scalar into the raw it spells: a boolean, a
// null, or a bare string.
func (p *parser) classifyPlain(b []byte) raw {
	switch string(b) {
	case "true":
		return &rawBoolean{value: true}
	case "false":
		return &rawBoolean{value: false}
	case "null":
		return &rawNull{kind: NullKeyword}
	case "~":
		return &rawNull{kind: NullTilde}
	}

	return &rawString{style: styleBare, content: p.d.insertBytes(b)}
}

// value parses a single value. prefix and parent are recorded in the new
// node's layout. indent is the indentation the value itself sits at,
// container the indentation of the owning construct, and inline reports
// whether the value is inside a flow collection.
//
// Block containers and block scalars consume their own trailing whitespace
// and return it with ok set; inline containers and other scalars leave it
// to the caller.
func (p *parser) value(prefix stringID, parent ID, indent, container int, inline bool) (ID, stringID, bool, error) {
	b, b2 := p.peek2()

	switch {
	case !inline && b == '-' && (isSpace(b2) || b2 == 0):
		return p.blockSequence(prefix, parent, indent)

	case b == '[':
		id, err := p.inlineSequence(prefix, parent, indent)
		return id, emptyID, false, err

	case b == '{':
		id, err := p.inlineMapping(prefix, parent, indent)
		return id, emptyID, false, err

	case b == '"':
		s, width := p.doubleQuoted()

		if !inline && p.peek() == ':' {
			return p.blockMapping(prefix, parent, indent, s, width)
		}

		return p.insertValue(&s, prefix, parent), emptyID, false, nil

	case b == '\'':
		s, width := p.singleQuoted()

		if !inline && p.peek() == ':' {
			return p.blockMapping(prefix, parent, indent, s, width)
		}

		return p.insertValue(&s, prefix, parent), emptyID, false, nil

	case !inline && (b == '|' || b == '>'):
		return p.blockScalar(prefix, parent, container)

	case isNumberStart(b):
		literal := p.number()

		if !inline && p.peek() == ':' {
			key := rawString{style: styleBare, content: literal}
			return p.blockMapping(prefix, parent, indent, key, utf8.RuneCount(p.d.str(literal)))
		}

		id := p.d.insert(&rawNumber{literal: literal, hint: hintFloat64}, prefix, parent)

		return id, emptyID, false, nil

	case isGraphic(b):
		start := p.pos

		for {
			switch c := p.peek(); {
			case !inline && c == ':':
				key := rawString{style: styleBare, content: p.d.insertBytes(p.string(start))}
				return p.blockMapping(prefix, parent, indent, key, utf8.RuneCount(p.string(start)))
			case c == newline || c == 0:
				goto done
			case inline && (c == ',' || c == ']' || c == '}'):
				goto done
			default:
				p.bump(1)
			}
		}

	done:
		end := p.pos

		if !inline {
			for end > start && (p.input[end-1] == space || p.input[end-1] == '\t') {
				end--
			}

			p.pos = end
		}

		return p.d.insert(p.classifyPlain(p.input[start:end]), prefix, parent), emptyID, false, nil
	}

	return 0, emptyID, false, newError(p.pos, p.pos+1, ErrorValue)
}

// insertValue stores a parsed string raw.
func (p *parser) insertValue(s *rawString, prefix stringID, parent ID) ID {
	clone := *s
	return p.d.insert(&clone, prefix, parent)
}

// blockSequence parses `- ` marked items at exactly the given indentation.
func (p *parser) blockSequence(prefix stringID, parent ID, indent int) (ID, stringID, bool, error) {
	seqID := p.d.insert(&rawSequence{indent: indent}, prefix, parent)
	itemPrefix := emptyID

	for {
		p.bump(1)

		sep, nl := p.ws()
		itemID := p.d.insert(&rawSequenceItem{}, itemPrefix, seqID)

		valueID, trailing, err := p.itemValue(itemID, sep, nl, indent, indent+1)
		if err != nil {
			return 0, emptyID, false, err
		}

		p.d.sequenceItem(itemID).value = valueID

		seq := p.d.sequence(seqID)
		seq.items = append(seq.items, itemID)

		if countIndent(p.d.str(trailing)) != indent {
			return seqID, trailing, true, nil
		}

		b, b2 := p.peek2()
		if b != '-' || !(isSpace(b2) || b2 == 0) {
			return seqID, trailing, true, nil
		}

		itemPrefix = trailing
	}
}

// blockMapping parses `key: value` items at exactly the given indentation.
// The first key has already been consumed.
func (p *parser) blockMapping(prefix stringID, parent ID, indent int, key rawString, keyWidth int) (ID, stringID, bool, error) {
	mapID := p.d.insert(&rawMapping{indent: indent}, prefix, parent)
	itemPrefix := emptyID

	for {
		if p.peek() != ':' {
			return 0, emptyID, false, newError(p.pos, p.pos+1, ErrorExpectedMappingSeparator)
		}

		p.bump(1)

		sep, nl := p.ws()
		itemID := p.d.insert(&rawMappingItem{key: key}, itemPrefix, mapID)

		valueID, trailing, err := p.itemValue(itemID, sep, nl, indent, indent+keyWidth+1)
		if err != nil {
			return 0, emptyID, false, err
		}

		p.d.mappingItem(itemID).value = valueID

		m := p.d.mapping(mapID)
		m.items = append(m.items, itemID)

		if countIndent(p.d.str(trailing)) != indent {
			return mapID, trailing, true, nil
		}

		next, width, ok, err := p.nextKey()
		if err != nil {
			return 0, emptyID, false, err
		}

		if !ok {
			return mapID, trailing, true, nil
		}

		itemPrefix = trailing
		key, keyWidth = next, width
	}
}

// itemValue parses the value of a block mapping or sequence item, given the
// separator whitespace that followed the marker. It produces an empty null
// when the input dedents or ends before a value, and always returns the
// whitespace run that terminates the item.
func (p *parser) itemValue(itemID ID, sep stringID, nl, indent, sameLineIndent int) (ID, stringID, error) {
	if nl == 0 {
		if p.eof() {
			return p.d.insert(&rawNull{kind: NullEmpty}, sep, itemID), emptyID, nil
		}

		childIndent := sameLineIndent + utf8.RuneCount(p.d.str(sep))

		return p.parsedItemValue(itemID, sep, childIndent, indent)
	}

	childIndent := countIndent(p.d.str(sep))

	if !p.eof() && childIndent > indent {
		return p.parsedItemValue(itemID, sep, childIndent, indent)
	}

	// A sequence may sit at the same indentation as its owning key.
	b, b2 := p.peek2()
	if childIndent == indent && b == '-' && (isSpace(b2) || b2 == 0) {
		return p.parsedItemValue(itemID, sep, childIndent, indent)
	}

	// Nothing on the value side; the whitespace belongs to whatever comes
	// next.
	return p.d.insert(&rawNull{kind: NullEmpty}, emptyID, itemID), sep, nil
}

func (p *parser) parsedItemValue(itemID ID, sep stringID, childIndent, indent int) (ID, stringID, error) {
	valueID, trailing, ok, err := p.value(sep, itemID, childIndent, indent, false)
	if err != nil {
		return 0, emptyID, err
	}

	if !ok {
		trailing, _ = p.ws()
	}

	return valueID, trailing, nil
}

// nextKey reads the key of a block mapping continuation. Reports ok false
// at a clean end of input.
func (p *parser) nextKey() (rawString, int, bool, error) {
	start := p.pos

	switch p.peek() {
	case '\'':
		key, width := p.singleQuoted()
		return key, width, true, nil
	case '"':
		key, width := p.doubleQuoted()
		return key, width, true, nil
	}

	for {
		switch p.peek() {
		case ':':
			key := rawString{style: styleBare, content: p.d.insertBytes(p.string(start))}
			return key, utf8.RuneCount(p.string(start)), true, nil
		case newline:
			return rawString{}, 0, false, newError(start, p.pos, ErrorExpectedMappingSeparator)
		case 0:
			if p.pos == start {
				return rawString{}, 0, false, nil
			}

			return rawString{}, 0, false, newError(start, p.pos, ErrorExpectedMappingSeparator)
		default:
			p.bump(1)
		}
	}
}

// blockScalar parses a `|` or `>` scalar, gathering lines indented
// strictly deeper than the owning construct. The bytes from the marker
// through the last content line are kept verbatim for output.
func (p *parser) blockScalar(prefix stringID, parent ID, container int) (ID, stringID, bool, error) {
	start := p.pos
	folded := p.peek() == '>'
	p.bump(1)

	chomp := ChompClip

	switch p.peek() {
	case '-':
		chomp = ChompStrip

		p.bump(1)
	case '+':
		chomp = ChompKeep

		p.bump(1)
	default:
		if b := p.peek(); b != 0 && b != newline && b != space && b != '\t' {
			return 0, emptyID, false, newError(p.pos, p.pos+1, ErrorBadBlockScalar)
		}
	}

	headerMark := p.pos
	p.find(newline)

	var lines [][]byte

	end := p.pos

	if header := bytes.TrimRight(bytes.TrimLeft(p.string(headerMark), " \t"), " \t"); len(header) > 0 {
		lines = append(lines, header)
	} else {
		p.pos = headerMark
		end = headerMark
	}

	indented := false

	for {
		mark := p.pos
		nl := p.scanSpace()

		if p.eof() || countIndent(p.input[mark:p.pos]) <= container {
			p.pos = mark
			break
		}

		lineStart := p.pos
		p.find(newline)

		if !folded && indented && nl > 1 {
			for range nl - 1 {
				lines = append(lines, nil)
			}
		}

		lines = append(lines, p.string(lineStart))

		indented = true
		end = p.pos
	}

	original := p.d.insertBytes(p.input[start:end])

	trailing, tnl := p.ws()

	join := byte(newline)
	if folded {
		join = space
	}

	var content []byte

	for i, line := range lines {
		if i > 0 {
			content = append(content, join)
		}

		content = append(content, line...)
	}

	if len(lines) > 0 {
		switch chomp {
		case ChompClip:
			content = append(content, newline)
		case ChompKeep:
			for range tnl {
				content = append(content, newline)
			}
		}
	}

	id := p.d.insert(&rawString{
		style:    styleMultiline,
		content:  p.d.insertBytes(content),
		original: original,
	}, prefix, parent)

	return id, trailing, true, nil
}

// inlineSequence parses a `[...]` flow sequence.
func (p *parser) inlineSequence(prefix stringID, parent ID, indent int) (ID, error) {
	seqID := p.d.insert(&rawSequence{
		indent: indent,
		style:  containerStyle{inline: true},
	}, prefix, parent)

	p.bump(1)

	lastComma := false

	for {
		ws, _ := p.ws()

		if p.peek() == ']' {
			p.bump(1)

			seq := p.d.sequence(seqID)
			seq.style.trailing = lastComma && len(seq.items) > 0
			seq.style.suffix = ws

			return seqID, nil
		}

		if p.eof() {
			return 0, newError(p.pos, p.pos+1, ErrorValue)
		}

		itemID := p.d.insert(&rawSequenceItem{}, ws, seqID)

		valueID, _, _, err := p.value(emptyID, itemID, indent, indent, true)
		if err != nil {
			return 0, err
		}

		p.d.sequenceItem(itemID).value = valueID

		seq := p.d.sequence(seqID)
		seq.items = append(seq.items, itemID)

		done, err := p.inlineNext(itemID, seqID, ']', &lastComma)
		if err != nil {
			return 0, err
		}

		if done {
			return seqID, nil
		}
	}
}

// inlineMapping parses a `{...}` flow mapping.
func (p *parser) inlineMapping(prefix stringID, parent ID, indent int) (ID, error) {
	mapID := p.d.insert(&rawMapping{
		indent: indent,
		style:  containerStyle{inline: true},
	}, prefix, parent)

	p.bump(1)

	lastComma := false

	for {
		ws, _ := p.ws()

		if p.peek() == '}' {
			p.bump(1)

			m := p.d.mapping(mapID)
			m.style.trailing = lastComma && len(m.items) > 0
			m.style.suffix = ws

			return mapID, nil
		}

		if p.eof() {
			return 0, newError(p.pos, p.pos+1, ErrorValue)
		}

		key, err := p.inlineKey()
		if err != nil {
			return 0, err
		}

		p.bump(1)

		sep, _ := p.ws()
		itemID := p.d.insert(&rawMappingItem{key: key}, ws, mapID)

		valueID, _, _, err := p.value(sep, itemID, indent, indent, true)
		if err != nil {
			return 0, err
		}

		p.d.mappingItem(itemID).value = valueID

		m := p.d.mapping(mapID)
		m.items = append(m.items, itemID)

		done, err := p.inlineNext(itemID, mapID, '}', &lastComma)
		if err != nil {
			return 0, err
		}

		if done {
			return mapID, nil
		}
	}
}

// inlineKey reads a flow mapping key up to its `:`.
func (p *parser) inlineKey() (rawString, error) {
	start := p.pos

	switch p.peek() {
	case '\'':
		key, _ := p.singleQuoted()
		if p.peek() != ':' {
			return rawString{}, newError(start, p.pos, ErrorExpectedMappingSeparator)
		}

		return key, nil
	case '"':
		key, _ := p.doubleQuoted()
		if p.peek() != ':' {
			return rawString{}, newError(start, p.pos, ErrorExpectedMappingSeparator)
		}

		return key, nil
	}

	for {
		switch p.peek() {
		case ':':
			return rawString{style: styleBare, content: p.d.insertBytes(p.string(start))}, nil
		case ',', '}', newline, 0:
			return rawString{}, newError(start, p.pos, ErrorExpectedMappingSeparator)
		default:
			p.bump(1)
		}
	}
}

// inlineNext consumes the whitespace and delimiter after a flow item. The
// whitespace lands in the item's suffix before a comma, or in the
// container's suffix before the closing bracket.
func (p *parser) inlineNext(itemID, containerID ID, closer byte, lastComma *bool) (bool, error) {
	ws, _ := p.ws()

	switch p.peek() {
	case ',':
		p.bump(1)

		switch item := p.d.entryOf(itemID).raw.(type) {
		case *rawSequenceItem:
			item.suffix = ws
		case *rawMappingItem:
			item.suffix = ws
		}

		*lastComma = true

		return false, nil
	case closer:
		p.bump(1)

		switch c := p.d.entryOf(containerID).raw.(type) {
		case *rawSequence:
			c.style.suffix = ws
		case *rawMapping:
			c.style.suffix = ws
		}

		return true, nil
	}

	return false, newError(p.pos, p.pos+1, ErrorValue)
}

// parseDocument parses a complete document.
func parseDocument(input []byte) (*Document, error) {
	p := &parser{d: newData(), input: input}

	prefix, _ := p.ws()
	indent := countIndent(p.d.str(prefix))

	root, trailing, ok, err := p.value(prefix, 0, indent, indent, false)
	if err != nil {
		return nil, err
	}

	suffix := trailing
	if !ok {
		suffix, _ = p.ws()
	}

	if !p.eof() {
		return nil, newError(p.pos, p.pos+1, ErrorValue)
	}

	return &Document{d: p.d, root: root, suffix: suffix}, nil
}
