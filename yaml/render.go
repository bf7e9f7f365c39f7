package yaml

import "strings"

// The display path renders a subtree into a [strings.Builder]. It must
// stay in lockstep with the io.Writer path in write.go; Document.String
// cross-checks the two when the debug toggle is set.

func renderNull(kind Null, sb *strings.Builder) {
	switch kind {
	case NullKeyword:
		sb.WriteString("null")
	case NullTilde:
		sb.WriteByte('~')
	}
}

func renderString(d *data, s *rawString, sb *strings.Builder) {
	switch s.style {
	case styleBare:
		sb.Write(d.str(s.content))
	case styleSingle:
		sb.Write(appendSingleQuoted(nil, d.str(s.content)))
	case styleDouble:
		sb.Write(appendDoubleQuoted(nil, d.str(s.content)))
	case styleOriginal:
		sb.Write(d.str(s.original))
	case styleMultiline:
		sb.Write(d.str(s.prefix))
		sb.Write(d.str(s.original))
	}
}

func renderRaw(d *data, r raw, sb *strings.Builder) {
	switch r := r.(type) {
	case *rawNull:
		renderNull(r.kind, sb)

	case *rawBoolean:
		if r.value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}

	case *rawNumber:
		sb.Write(d.str(r.literal))

	case *rawString:
		renderString(d, r, sb)

	case *rawSequence:
		if r.style.inline {
			sb.WriteByte('[')
		}

		for i, itemID := range r.items {
			item := d.sequenceItem(itemID)

			sb.Write(d.prefix(itemID))

			if !r.style.inline {
				sb.WriteByte('-')
			}

			sb.Write(d.prefix(item.value))
			renderRaw(d, d.rawOf(item.value), sb)

			if r.style.inline {
				sb.Write(d.str(item.suffix))

				if i+1 < len(r.items) {
					sb.WriteByte(',')
				}
			}
		}

		if r.style.inline {
			if r.style.trailing {
				sb.WriteByte(',')
			}

			sb.Write(d.str(r.style.suffix))
			sb.WriteByte(']')
		}

	case *rawSequenceItem:
		sb.Write(d.prefix(r.value))
		renderRaw(d, d.rawOf(r.value), sb)

	case *rawMapping:
		if r.style.inline {
			sb.WriteByte('{')
		}

		for i, itemID := range r.items {
			item := d.mappingItem(itemID)

			sb.Write(d.prefix(itemID))
			renderString(d, &item.key, sb)
			sb.WriteByte(':')
			sb.Write(d.prefix(item.value))
			renderRaw(d, d.rawOf(item.value), sb)

			if r.style.inline {
				sb.Write(d.str(item.suffix))

				if i+1 < len(r.items) {
					sb.WriteByte(',')
				}
			}
		}

		if r.style.inline {
			if r.style.trailing {
				sb.WriteByte(',')
			}

			sb.Write(d.str(r.style.suffix))
			sb.WriteByte('}')
		}

	case *rawMappingItem:
		renderString(d, &r.key, sb)
		sb.WriteByte(':')
		sb.Write(d.prefix(r.value))
		renderRaw(d, d.rawOf(r.value), sb)
	}
}
