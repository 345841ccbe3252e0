package graphql

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Marshal(t *testing.T) {
	t.Run("should marshal missing variables as null", func(t *testing.T) {
		out, err := Request{Query: "query { a }"}.Marshal()
		require.NoError(t, err)
		assert.Equal(t, `{"query":"query { a }","variables":null}`, string(out))
	})

	t.Run("should marshal variables", func(t *testing.T) {
		out, err := Request{Query: "query ($var0: ID!) { node(id: $var0) { __typename } }", Variables: map[string]interface{}{"var0": "x"}}.Marshal()
		require.NoError(t, err)
		assert.Equal(t, `{"query":"query ($var0: ID!) { node(id: $var0) { __typename } }","variables":{"var0":"x"}}`, string(out))
	})
}

func TestUnmarshalRequest(t *testing.T) {
	request, err := UnmarshalRequest(strings.NewReader(`{"query":"{ a }","variables":{"b":1}}`))
	require.NoError(t, err)
	assert.Equal(t, "{ a }", request.Query)
	assert.Len(t, request.Variables, 1)

	_, err = UnmarshalRequest(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestResponse_DecodeData(t *testing.T) {
	t.Run("should keep numbers", func(t *testing.T) {
		data, err := Response{Data: []byte(`{"count":12}`)}.DecodeData()
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"count": json.Number("12")}, data)
	})

	t.Run("should decode missing data to nil", func(t *testing.T) {
		data, err := Response{}.DecodeData()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("should report errors", func(t *testing.T) {
		assert.True(t, Response{Errors: ResponseErrors{{Message: "a"}}}.HasErrors())
		assert.False(t, Response{}.HasErrors())
	})
}
