// Package stringtest provides helpers for constructing expected test
// output with explicit line endings.
package stringtest

import "strings"

func join(sep string, ss []string) string {
	var sb strings.Builder

	for i, s := range ss {
		if i > 0 {
			sb.WriteString(sep)
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinLF joins multiple strings with LF line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//	) // -> "line1\nline2"
func JoinLF(ss ...string) string {
	return join("\n", ss)
}

// JoinCRLF joins multiple strings with CRLF line endings. Use this to
// construct expected output with Windows line endings.
func JoinCRLF(ss ...string) string {
	return join("\r\n", ss)
}

// LinesLF joins multiple strings with LF line endings and appends a
// trailing newline, matching how most files on disk end.
func LinesLF(ss ...string) string {
	return join("\n", ss) + "\n"
}
