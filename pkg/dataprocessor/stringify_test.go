package dataprocessor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	run := func(value interface{}, expected string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, expected, Stringify(value))
		}
	}

	t.Run("string", run("foo", "foo"))
	t.Run("json number", run(json.Number("1.50"), "1.50"))
	t.Run("float", run(float64(2.5), "2.5"))
	t.Run("int", run(42, "42"))
	t.Run("bool", run(false, "false"))
	t.Run("null", run(nil, ""))
	t.Run("list of scalars", run([]interface{}{"a", json.Number("1"), true, nil}, "a, 1, true, "))
	t.Run("empty list", run([]interface{}{}, ""))
	t.Run("list of objects", run([]interface{}{map[string]interface{}{}}, unsupportedType))
	t.Run("object", run(map[string]interface{}{"a": "b"}, unsupportedType))
}
