package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udoprog/nondestructive-sub000/yaml"
)

func decoded(t *testing.T, input string) string {
	t.Helper()

	doc, err := yaml.FromString(input)
	require.NoError(t, err)

	b := doc.AsRef().AsBytes()
	require.NotNil(t, b, "input %q is not a string", input)

	return string(b)
}

func TestDoubleQuotedEscapes(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"newline":        {input: `"a \n b"`, want: "a \n b"},
		"nul":            {input: `"a \0 b"`, want: "a \x00 b"},
		"bell":           {input: `"a \a b"`, want: "a \x07 b"},
		"backspace":      {input: `"a \b b"`, want: "a \x08 b"},
		"tab":            {input: `"a \t b"`, want: "a \x09 b"},
		"vertical tab":   {input: `"a \v b"`, want: "a \x0b b"},
		"form feed":      {input: `"a \f b"`, want: "a \x0c b"},
		"carriage":       {input: `"a \r b"`, want: "a \r b"},
		"escape":         {input: `"a \e b"`, want: "a \x1b b"},
		"backslash":      {input: `"a \\ b"`, want: `a \ b`},
		"quote":          {input: `"a \" b"`, want: `a " b`},
		"hex":            {input: `"a \x77 b"`, want: "a \x77 b"},
		"unicode escape": {input: "\"a \\u79c1 b\"", want: "a 私 b"},
		"unicode":        {input: `"a 私 b"`, want: "a 私 b"},
		"plain quoted":   {input: `"plain"`, want: "plain"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, decoded(t, tc.input))

			// The original byte form is reproduced on output.
			requireRoundTrip(t, tc.input)
		})
	}
}

func TestSingleQuotedEscapes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "It is a party!", decoded(t, "'It is a party!'"))
	assert.Equal(t, "It's a party!", decoded(t, "'It''s a party!'"))

	requireRoundTrip(t, "'It''s a party!'")
}

func TestSetStringDetection(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"bare":              {input: "i-am-a-string", want: "  i-am-a-string"},
		"bare with spaces":  {input: "I am a string", want: "  I am a string"},
		"control escapes":   {input: "I am a\n string", want: "  \"I am a\\n string\""},
		"embedded quotes":   {input: `I am a string with "quotes"`, want: `  I am a string with "quotes"`},
		"reserved null":     {input: "null", want: "  'null'"},
		"reserved true":     {input: "true", want: "  'true'"},
		"leading digit":     {input: "1 potato", want: "  '1 potato'"},
		"contains colon":    {input: "before: after", want: "  'before: after'"},
		"single quote":      {input: "It's", want: "  \"It's\""},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := yaml.FromString("  string")
			require.NoError(t, err)

			doc.AsMut().SetString(tc.input)
			assert.Equal(t, tc.want, doc.String())
		})
	}
}

func TestSetStringKind(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("value")
	require.NoError(t, err)

	doc.AsMut().SetStringKind("hello", yaml.StringDouble)
	assert.Equal(t, `"hello"`, doc.String())

	doc.AsMut().SetStringKind("hello", yaml.StringSingle)
	assert.Equal(t, "'hello'", doc.String())

	doc.AsMut().SetStringKind("hello", yaml.StringBare)
	assert.Equal(t, "hello", doc.String())
}

func TestDoubleQuotedControlEncoding(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("value")
	require.NoError(t, err)

	doc.AsMut().SetString("a \x01 b")
	assert.Equal(t, `"a \x01 b"`, doc.String())
}
