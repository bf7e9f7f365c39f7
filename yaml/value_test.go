package yaml_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udoprog/nondestructive-sub000/yaml"
)

func TestValueNumberAccessors(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("42")
	require.NoError(t, err)

	v := doc.AsRef()
	assert.Equal(t, yaml.KindScalar, v.Kind())

	n8, ok := v.AsUint8()
	require.True(t, ok)
	assert.Equal(t, uint8(42), n8)

	i64, ok := v.AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(42), i64)

	f, ok := v.AsFloat64()
	require.True(t, ok)
	assert.InDelta(t, 42.0, f, 0)

	assert.Equal(t, []byte("42"), v.AsRaw())
}

func TestValueNumberOverflow(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("300")
	require.NoError(t, err)

	v := doc.AsRef()

	_, ok := v.AsUint8()
	assert.False(t, ok, "300 does not fit an 8-bit integer")

	_, ok = v.AsInt8()
	assert.False(t, ok)

	n, ok := v.AsUint16()
	require.True(t, ok)
	assert.Equal(t, uint16(300), n)
}

func TestValueNegativeNumbers(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("-42")
	require.NoError(t, err)

	v := doc.AsRef()

	i, ok := v.AsInt32()
	require.True(t, ok)
	assert.Equal(t, int32(-42), i)

	_, ok = v.AsUint32()
	assert.False(t, ok)
}

func TestValueFloat(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("3.1415")
	require.NoError(t, err)

	v := doc.AsRef()

	f32, ok := v.AsFloat32()
	require.True(t, ok)
	assert.InDelta(t, float32(3.1415), f32, 1e-6)

	_, ok = v.AsInt64()
	assert.False(t, ok)

	assert.Equal(t, []byte("3.1415"), v.AsRaw())
}

func TestValueDecimal(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("340282366920938463463374607431768211456")
	require.NoError(t, err)

	v := doc.AsRef()

	_, ok := v.AsUint64()
	assert.False(t, ok, "exceeds 64 bits")

	dec, ok := v.AsDecimal()
	require.True(t, ok)
	assert.Equal(t, "340282366920938463463374607431768211456", dec.Text('f'))
}

func TestValueSetters(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		mutate func(yaml.ValueMut)
		want   string
	}{
		"uint32":  {mutate: func(v yaml.ValueMut) { v.SetUint32(42) }, want: "  42"},
		"int64":   {mutate: func(v yaml.ValueMut) { v.SetInt64(-7) }, want: "  -7"},
		"float64": {mutate: func(v yaml.ValueMut) { v.SetFloat64(10.42) }, want: "  10.42"},
		"bool":    {mutate: func(v yaml.ValueMut) { v.SetBool(true) }, want: "  true"},
		"null keyword": {
			mutate: func(v yaml.ValueMut) { v.SetNull(yaml.NullKeyword) },
			want:   "  null",
		},
		"null tilde": {
			mutate: func(v yaml.ValueMut) { v.SetNull(yaml.NullTilde) },
			want:   "  ~",
		},
		"null empty": {
			mutate: func(v yaml.ValueMut) { v.SetNull(yaml.NullEmpty) },
			want:   "  ",
		},
		"decimal": {
			mutate: func(v yaml.ValueMut) {
				dec, _, err := apd.NewFromString("12345678901234567890")
				if err != nil {
					panic(err)
				}

				v.SetDecimal(dec)
			},
			want: "  12345678901234567890",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := yaml.FromString("  string")
			require.NoError(t, err)

			tc.mutate(doc.AsMut())
			assert.Equal(t, tc.want, doc.String())
		})
	}
}

func TestValueStringAccessors(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString(`"Hello\n World"`)
	require.NoError(t, err)

	v := doc.AsRef()

	s, ok := v.AsString()
	require.True(t, ok)
	assert.Equal(t, "Hello\n World", s)

	// The raw form of an escaped string includes the quotes.
	assert.Equal(t, []byte(`"Hello\n World"`), v.AsRaw())

	doc, err = yaml.FromString(`"Hello World"`)
	require.NoError(t, err)

	assert.Equal(t, []byte("Hello World"), doc.AsRef().AsRaw())
}

func TestValueKindQueries(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("one: 1\n")
	require.NoError(t, err)

	v := doc.AsRef()
	assert.Equal(t, yaml.KindMapping, v.Kind())

	_, ok := v.AsBool()
	assert.False(t, ok)

	assert.Nil(t, v.AsBytes())

	_, ok = v.AsSequence()
	assert.False(t, ok)

	_, ok = v.AsMapping()
	assert.True(t, ok)

	doc, err = yaml.FromString("- 1\n")
	require.NoError(t, err)
	assert.Equal(t, yaml.KindSequence, doc.AsRef().Kind())
}

func TestValueDisplay(t *testing.T) {
	t.Parallel()

	doc, err := yaml.FromString("first: 32\nsecond: [1, 2, 3]\n")
	require.NoError(t, err)

	root, ok := doc.AsRef().AsMapping()
	require.True(t, ok)

	second, ok := root.Get("second")
	require.True(t, ok)

	assert.Equal(t, "[1, 2, 3]", second.String())
}
