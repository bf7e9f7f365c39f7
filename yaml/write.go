package yaml

import "io"

// The sink path streams a subtree to an [io.Writer] without intermediate
// buffering. It must stay in lockstep with the display path in render.go.

func writeAll(w io.Writer, bs ...[]byte) error {
	for _, b := range bs {
		if len(b) == 0 {
			continue
		}

		if _, err := w.Write(b); err != nil {
			return err
		}
	}

	return nil
}

var (
	nullBytes  = []byte("null")
	tildeBytes = []byte("~")
	trueBytes  = []byte("true")
	falseBytes = []byte("false")
	openSeq    = []byte("[")
	closeSeq   = []byte("]")
	openMap    = []byte("{")
	closeMap   = []byte("}")
	commaBytes = []byte(",")
	dashBytes  = []byte("-")
	colonBytes = []byte(":")
)

func writeNull(kind Null, w io.Writer) error {
	switch kind {
	case NullKeyword:
		return writeAll(w, nullBytes)
	case NullTilde:
		return writeAll(w, tildeBytes)
	}

	return nil
}

func writeString(d *data, s *rawString, w io.Writer) error {
	switch s.style {
	case styleSingle:
		return writeAll(w, appendSingleQuoted(nil, d.str(s.content)))
	case styleDouble:
		return writeAll(w, appendDoubleQuoted(nil, d.str(s.content)))
	case styleOriginal:
		return writeAll(w, d.str(s.original))
	case styleMultiline:
		return writeAll(w, d.str(s.prefix), d.str(s.original))
	}

	return writeAll(w, d.str(s.content))
}

func writeRaw(d *data, r raw, w io.Writer) error {
	switch r := r.(type) {
	case *rawNull:
		return writeNull(r.kind, w)

	case *rawBoolean:
		if r.value {
			return writeAll(w, trueBytes)
		}

		return writeAll(w, falseBytes)

	case *rawNumber:
		return writeAll(w, d.str(r.literal))

	case *rawString:
		return writeString(d, r, w)

	case *rawSequence:
		if r.style.inline {
			if err := writeAll(w, openSeq); err != nil {
				return err
			}
		}

		for i, itemID := range r.items {
			item := d.sequenceItem(itemID)

			if err := writeAll(w, d.prefix(itemID)); err != nil {
				return err
			}

			if !r.style.inline {
				if err := writeAll(w, dashBytes); err != nil {
					return err
				}
			}

			if err := writeAll(w, d.prefix(item.value)); err != nil {
				return err
			}

			if err := writeRaw(d, d.rawOf(item.value), w); err != nil {
				return err
			}

			if r.style.inline {
				if err := writeAll(w, d.str(item.suffix)); err != nil {
					return err
				}

				if i+1 < len(r.items) {
					if err := writeAll(w, commaBytes); err != nil {
						return err
					}
				}
			}
		}

		if r.style.inline {
			if r.style.trailing {
				if err := writeAll(w, commaBytes); err != nil {
					return err
				}
			}

			return writeAll(w, d.str(r.style.suffix), closeSeq)
		}

		return nil

	case *rawSequenceItem:
		if err := writeAll(w, d.prefix(r.value)); err != nil {
			return err
		}

		return writeRaw(d, d.rawOf(r.value), w)

	case *rawMapping:
		if r.style.inline {
			if err := writeAll(w, openMap); err != nil {
				return err
			}
		}

		for i, itemID := range r.items {
			item := d.mappingItem(itemID)

			if err := writeAll(w, d.prefix(itemID)); err != nil {
				return err
			}

			if err := writeString(d, &item.key, w); err != nil {
				return err
			}

			if err := writeAll(w, colonBytes, d.prefix(item.value)); err != nil {
				return err
			}

			if err := writeRaw(d, d.rawOf(item.value), w); err != nil {
				return err
			}

			if r.style.inline {
				if err := writeAll(w, d.str(item.suffix)); err != nil {
					return err
				}

				if i+1 < len(r.items) {
					if err := writeAll(w, commaBytes); err != nil {
						return err
					}
				}
			}
		}

		if r.style.inline {
			if r.style.trailing {
				if err := writeAll(w, commaBytes); err != nil {
					return err
				}
			}

			return writeAll(w, d.str(r.style.suffix), closeMap)
		}

		return nil

	case *rawMappingItem:
		if err := writeString(d, &r.key, w); err != nil {
			return err
		}

		if err := writeAll(w, colonBytes, d.prefix(r.value)); err != nil {
			return err
		}

		return writeRaw(d, d.rawOf(r.value), w)
	}

	return nil
}
