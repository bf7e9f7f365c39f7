package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udoprog/nondestructive-sub000/stringtest"
	"github.com/udoprog/nondestructive-sub000/yaml"
)

func getString(t *testing.T, doc *yaml.Document, key string) string {
	t.Helper()

	root, ok := doc.AsRef().AsMapping()
	require.True(t, ok, "missing root mapping")

	v, ok := root.Get(key)
	require.True(t, ok, "missing key %q", key)

	s, ok := v.AsString()
	require.True(t, ok, "key %q is not a string", key)

	return s
}

func TestBlockScalarDecoding(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"literal clip": {
			input: stringtest.LinesLF(
				"first: |",
				"  foo",
				"",
				"  bar",
				"  baz",
				"second: 2",
			),
			want: "foo\n\nbar\nbaz\n",
		},
		"literal header content": {
			input: stringtest.LinesLF(
				"first: | foo",
				"",
				"  bar",
				"  baz",
				"second: 2",
			),
			want: "foo\nbar\nbaz\n",
		},
		"literal strip": {
			input: stringtest.LinesLF(
				"first: |-",
				"  foo",
				"",
				"  bar",
				"  baz",
				"second: 2",
			),
			want: "foo\n\nbar\nbaz",
		},
		"literal keep": {
			input: stringtest.LinesLF(
				"first: |+",
				"  foo",
				"",
				"  bar",
				"  baz",
				"",
				"second: 2",
			),
			want: "foo\n\nbar\nbaz\n\n",
		},
		"folded header content": {
			input: stringtest.LinesLF(
				"first: > foo",
				"",
				"  bar",
				"  baz",
				"second: 2",
			),
			want: "foo bar baz\n",
		},
		"folded": {
			input: stringtest.LinesLF(
				"first: >",
				"  foo",
				"",
				"  bar",
				"  baz",
				"second: 2",
			),
			want: "foo bar baz\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := requireRoundTrip(t, tc.input)
			assert.Equal(t, tc.want, getString(t, doc, "first"))

			root, ok := doc.AsRef().AsMapping()
			require.True(t, ok)
			v, ok := root.Get("second")
			require.True(t, ok)
			n, ok := v.AsUint32()
			require.True(t, ok)
			assert.Equal(t, uint32(2), n)
		})
	}
}

func TestBlockScalarReplacedByScalar(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString(stringtest.LinesLF(
		"first: > foo",
		"",
		"  bar",
		"  baz",
		"second: 2",
	))
	require.NoError(t, err)

	root, ok := doc.AsMut().AsMappingMut()
	require.True(t, ok)

	v, ok := root.GetMut("first")
	require.True(t, ok)
	v.SetString("removed")

	assert.Equal(t, stringtest.LinesLF(
		"first: removed",
		"second: 2",
	), doc.String())
}

func TestInsertBlockStrip(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("doc: test")
	require.NoError(t, err)

	root, ok := doc.AsMut().AsMappingMut()
	require.True(t, ok)
	root.InsertBlock("my_string", []string{"one", "two"}, yaml.Literal(yaml.ChompStrip))

	assert.Equal(t, "doc: test\nmy_string: |-\n  one\n  two", doc.String())

	assert.Equal(t, "one\ntwo", getString(t, doc, "my_string"))
}

func TestInsertBlockStripLeadingNewline(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("\ndoc: test")
	require.NoError(t, err)

	root, ok := doc.AsMut().AsMappingMut()
	require.True(t, ok)
	root.InsertBlock("my_string", []string{"one", "two"}, yaml.Literal(yaml.ChompStrip))

	assert.Equal(t, "\ndoc: test\nmy_string: |-\n  one\n  two", doc.String())
}

func TestInsertBlockVaryingDepth(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString(stringtest.JoinLF(
		"",
		"    doc: test",
		"    obj:",
		"      title: Object",
		"    obj_array:",
		"      - title: Object in an array",
	))
	require.NoError(t, err)

	block := yaml.Literal(yaml.ChompStrip)

	root, ok := doc.AsMut().AsMappingMut()
	require.True(t, ok)
	root.InsertBlock("my_string_outer", []string{"one", "two"}, block)

	obj, ok := root.GetMut("obj")
	require.True(t, ok)
	objMut, ok := obj.AsMappingMut()
	require.True(t, ok)
	objMut.InsertBlock("my_string_inner1", []string{"one", "two"}, block)

	arr, ok := root.GetMut("obj_array")
	require.True(t, ok)
	arrMut, ok := arr.AsSequenceMut()
	require.True(t, ok)

	first, ok := arrMut.GetMut(0)
	require.True(t, ok)
	firstMut, ok := first.AsMappingMut()
	require.True(t, ok)
	firstMut.InsertBlock("my_string_inner2", []string{"one", "two"}, block)

	assert.Equal(t, stringtest.JoinLF(
		"",
		"    doc: test",
		"    obj:",
		"      title: Object",
		"      my_string_inner1: |-",
		"        one",
		"        two",
		"    obj_array:",
		"      - title: Object in an array",
		"        my_string_inner2: |-",
		"          one",
		"          two",
		"    my_string_outer: |-",
		"      one",
		"      two",
	), doc.String())
}

func TestInsertBlockFoldedClip(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("doc: test")
	require.NoError(t, err)

	root, ok := doc.AsMut().AsMappingMut()
	require.True(t, ok)
	root.InsertBlock("folded", []string{"one", "two"}, yaml.Folded(yaml.ChompClip))

	assert.Equal(t, "doc: test\nfolded: >\n  one\n  two", doc.String())
	assert.Equal(t, "one two\n", getString(t, doc, "folded"))
}
