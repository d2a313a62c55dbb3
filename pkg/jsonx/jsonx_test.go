package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringArray_Valid(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringArray(`["a","b"]`))
	assert.Equal(t, []string{}, StringArray(`[]`))
}

func TestStringArray_DegradesOnFailure(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"not json",
		`{"a":1}`,
		`[1,2,3]`,
		`["unterminated`,
		"null",
	}
	for _, raw := range cases {
		out := StringArray(raw)
		assert.NotNil(t, out, "input %q", raw)
		assert.Empty(t, out, "input %q", raw)
	}
}

func TestMarshalStringArray(t *testing.T) {
	assert.Equal(t, `["x"]`, MarshalStringArray([]string{"x"}))
	assert.Equal(t, `[]`, MarshalStringArray(nil))
	assert.Equal(t, `[]`, MarshalStringArray([]string{}))
}

func TestObjectMap_Valid(t *testing.T) {
	out := ObjectMap(`{"grade":"9.8","signed":true}`)
	assert.Equal(t, "9.8", out["grade"])
	assert.Equal(t, true, out["signed"])
}

func TestObjectMap_DegradesOnFailure(t *testing.T) {
	cases := []string{"", "not json", `["array"]`, "null"}
	for _, raw := range cases {
		out := ObjectMap(raw)
		assert.NotNil(t, out, "input %q", raw)
		assert.Empty(t, out, "input %q", raw)
	}
}

func TestMarshalObjectMap(t *testing.T) {
	assert.Equal(t, `{}`, MarshalObjectMap(nil))
	assert.Equal(t, `{"a":1}`, MarshalObjectMap(map[string]interface{}{"a": 1}))
}
