// Package yaml implements non-destructive YAML editing.
//
// A document is parsed once with [FromBytes] into an arena of nodes that
// retain every original byte: indentation, separators, comments, quoting
// style, and block markers. The document can then be navigated through
// [Value], mutated through [ValueMut], and serialized through
// [Document.String] or [Document.WriteTo]. Bytes that were not touched by
// an edit are emitted verbatim, so a document that was never edited
// serializes back to exactly its input.
//
// # Specification compliance
//
// The parser does not strictly adhere to the YAML specification:
//
//   - Any form of indentation is supported, not just spaces.
//   - Neither input nor output is required to be UTF-8.
//   - Keys in mappings can be almost anything; the only requirement is
//     that they are succeeded by a colon (`:`).
//   - Sequence items can be anything; everything after the `-` is the
//     value.
//
// Both spec and non-spec compliant YAML parse validly. Since editing is
// non-destructive, spec compliant input produces spec compliant output,
// and non-compliant input produces similarly non-compliant output.
package yaml
