package pathspec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathSpec_String(t *testing.T) {
	t.Run("should print field name only", func(t *testing.T) {
		assert.Equal(t, "fieldName", New("fieldName").String())
	})

	t.Run("should omit empty arguments", func(t *testing.T) {
		assert.Equal(t, "fieldName", New("fieldName").WithArgs(Arguments{}).String())
	})

	t.Run("should print arguments in declaration order and array index", func(t *testing.T) {
		spec := New("fieldName").WithArgs(Arguments{{Name: "b", Value: "x"}, {Name: "a", Value: json.Number("1")}}).WithArrayIndex(3)
		assert.Equal(t, `fieldName({"b":"x","a":1})[3]`, spec.String())
	})
}

func TestParse(t *testing.T) {
	roundTrip := func(spec PathSpec) func(t *testing.T) {
		return func(t *testing.T) {
			parsed, err := Parse(spec.String())
			require.NoError(t, err)
			assert.Equal(t, spec, parsed)
		}
	}

	t.Run("should round trip field name", roundTrip(New("fieldName")))
	t.Run("should round trip array index", roundTrip(New("fieldName").WithArrayIndex(2)))
	t.Run("should round trip params", roundTrip(New("fieldName").WithArgs(Arguments{{Name: "paramName", Value: `(["/])`}})))
	t.Run("should round trip params and array index", roundTrip(New("fieldName").WithArgs(Arguments{{Name: "paramName", Value: `(["/])`}}).WithArrayIndex(2)))
	t.Run("should round trip unicode and nested values", roundTrip(New("fieldName").WithArgs(Arguments{
		{Name: "name", Value: "Zoë ✓"},
		{Name: "filter", Value: map[string]interface{}{"first": json.Number("10"), "tags": []interface{}{"a", "b"}}},
		{Name: "flag", Value: true},
		{Name: "nothing", Value: nil},
	})))

	t.Run("should parse explicitly empty arguments", func(t *testing.T) {
		spec, err := Parse("fieldName({})")
		require.NoError(t, err)
		assert.Equal(t, "fieldName", spec.FieldName)
		assert.NotNil(t, spec.Args)
		assert.Len(t, spec.Args, 0)
	})

	t.Run("should keep argument order", func(t *testing.T) {
		spec, err := Parse(`rootField({"foo":"bar","bar":"baz"})`)
		require.NoError(t, err)
		assert.Equal(t, Arguments{{Name: "foo", Value: "bar"}, {Name: "bar", Value: "baz"}}, spec.Args)
	})

	for _, malformed := range []string{
		"",
		"fieldName]",
		"fieldName[x]",
		"fieldName[-1]",
		"fieldName)",
		`fieldName(["a"])`,
		`fieldName({"a":)`,
		`({"a":1})`,
		"field[1]Name",
	} {
		malformed := malformed
		t.Run("should reject "+malformed, func(t *testing.T) {
			_, err := Parse(malformed)
			assert.ErrorIs(t, err, ErrMalformedPathSpec)
		})
	}
}

func TestURLPath(t *testing.T) {
	t.Run("should make and parse url path", func(t *testing.T) {
		specs := []PathSpec{
			New("parentField"),
			New("fieldName").WithArgs(Arguments{{Name: "paramName", Value: `(["/])`}}).WithArrayIndex(2),
		}
		urlPath := MakeURLPath(specs)
		assert.NotContains(t, urlPath[len("parentField/"):], "/")

		parsed, err := ParseURLPath(urlPath)
		require.NoError(t, err)
		assert.Equal(t, specs, parsed)
	})

	t.Run("should treat empty path as root", func(t *testing.T) {
		specs, err := ParseURLPath("/")
		require.NoError(t, err)
		assert.Len(t, specs, 0)
		assert.Equal(t, "", MakeURLPath(nil))
	})

	t.Run("should reject empty segments", func(t *testing.T) {
		_, err := ParseURLPath("a//b")
		assert.ErrorIs(t, err, ErrMalformedPathSpec)
	})
}

func TestAppend(t *testing.T) {
	base := make([]PathSpec, 1, 4)
	base[0] = New("a")
	first := Append(base, New("b"))
	second := Append(base, New("c"))
	assert.Equal(t, "b", first[1].FieldName)
	assert.Equal(t, "c", second[1].FieldName)
	assert.Equal(t, []PathSpec{New("a")}, Parent(first))
}
