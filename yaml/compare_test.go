package yaml_test

import (
	"fmt"
	"strconv"
	"testing"

	goccy "github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udoprog/nondestructive-sub000/stringtest"
	"github.com/udoprog/nondestructive-sub000/yaml"
)

// TestCompareWithReferenceParser checks the read tree against an
// independent parse of the same input: scalars by typed value, mappings by
// key set, sequences by position.
func TestCompareWithReferenceParser(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"scalars": stringtest.LinesLF(
			"name: app",
			"replicas: 3",
			"enabled: true",
			"disabled: false",
			"threshold: 2.5",
			"empty: null",
		),
		"nested": stringtest.LinesLF(
			"servers:",
			"  - host: a.example.com",
			"    port: 8080",
			"  - host: b.example.com",
			"    port: 9090",
			"labels: {team: infra, tier: backend}",
			"tags: [one, two, three]",
		),
		"strings": stringtest.LinesLF(
			"plain: hello world",
			"quoted: \"with \\n escape\"",
			"single: 'It''s fine'",
			"description: |",
			"  line one",
			"  line two",
		),
		"deep": stringtest.LinesLF(
			"a:",
			"  b:",
			"    c:",
			"      - 1",
			"      - 2",
		),
	}

	for name, input := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var reference any
			require.NoError(t, goccy.Unmarshal([]byte(input), &reference))

			doc := requireRoundTrip(t, input)
			compareValue(t, "$", doc.AsRef(), reference)

			// Reparsing the serialized form yields the same tree.
			again, err := yaml.FromString(doc.String())
			require.NoError(t, err)
			compareValue(t, "$", again.AsRef(), reference)
		})
	}
}

func compareValue(t *testing.T, path string, a yaml.Value, ref any) {
	t.Helper()

	switch ref := ref.(type) {
	case map[string]any:
		m, ok := a.AsMapping()
		require.True(t, ok, "%s: expected a mapping", path)
		require.Equal(t, len(ref), m.Len(), "%s: mapping size", path)

		for key, sub := range ref {
			v, ok := m.Get(key)
			require.True(t, ok, "%s: missing key %q", path, key)
			compareValue(t, path+"."+key, v, sub)
		}
	case []any:
		s, ok := a.AsSequence()
		require.True(t, ok, "%s: expected a sequence", path)
		require.Equal(t, len(ref), s.Len(), "%s: sequence size", path)

		for i, sub := range ref {
			v, ok := s.Get(i)
			require.True(t, ok)
			compareValue(t, fmt.Sprintf("%s[%d]", path, i), v, sub)
		}
	case bool:
		b, ok := a.AsBool()
		require.True(t, ok, "%s: expected a boolean", path)
		assert.Equal(t, ref, b, path)
	case string:
		s, ok := a.AsString()
		require.True(t, ok, "%s: expected a string", path)
		assert.Equal(t, ref, s, path)
	case nil:
		assert.True(t, a.IsNull(), "%s: expected a null", path)
	default:
		// Numbers decode to a reference-parser specific width; compare
		// through their textual form.
		want, err := strconv.ParseFloat(fmt.Sprint(ref), 64)
		require.NoError(t, err, "%s: reference value %v is not comparable", path, ref)

		got, ok := a.AsFloat64()
		require.True(t, ok, "%s: expected a number", path)
		assert.InDelta(t, want, got, 0, path)
	}
}
