package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func userSpec() *ObjectSpec {
	return Object(map[string]Field{
		"userId": {Type: cty.String, Required: true},
		"count":  {Type: cty.Number},
		"active": {Type: cty.Bool},
		"tags":   {Type: cty.List(cty.String)},
		"extra":  {Type: cty.DynamicPseudoType},
	})
}

func TestObjectSpec_Validate(t *testing.T) {
	spec := userSpec()

	err := spec.Validate(map[string]any{
		"userId": "123",
		"count":  float64(2),
		"active": true,
		"tags":   []any{"a", "b"},
		"extra":  map[string]any{"nested": true},
	})
	require.NoError(t, err)
}

func TestObjectSpec_Validate_MissingRequired(t *testing.T) {
	spec := userSpec()

	err := spec.Validate(map[string]any{"count": 1})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "userId", ve.Field)

	// nil counts as missing
	err = spec.Validate(map[string]any{"userId": nil})
	require.Error(t, err)
}

func TestObjectSpec_Validate_WrongType(t *testing.T) {
	spec := userSpec()

	err := spec.Validate(map[string]any{
		"userId": "123",
		"active": "yes indeed",
	})
	require.Error(t, err)

	ve := err.(*ValidationError)
	assert.Equal(t, "active", ve.Field)
}

func TestObjectSpec_Validate_NotAnObject(t *testing.T) {
	spec := userSpec()
	require.Error(t, spec.Validate("just a string"))
	require.Error(t, spec.Validate(42))
}

func TestObjectSpec_Validate_NilValue(t *testing.T) {
	optional := Object(map[string]Field{
		"label": {Type: cty.String},
	})
	require.NoError(t, optional.Validate(nil))

	required := Object(map[string]Field{
		"label": {Type: cty.String, Required: true},
	})
	require.Error(t, required.Validate(nil))
}

func TestObjectSpec_Validate_ConvertibleNumbers(t *testing.T) {
	spec := Object(map[string]Field{
		"count": {Type: cty.Number},
	})
	require.NoError(t, spec.Validate(map[string]any{"count": 2}))
	require.NoError(t, spec.Validate(map[string]any{"count": int64(2)}))
	require.NoError(t, spec.Validate(map[string]any{"count": 2.5}))
	// cty converts numeric strings; a non-numeric string must fail
	require.Error(t, spec.Validate(map[string]any{"count": "two"}))
}

func TestObjectSpec_IgnoresUnknownFields(t *testing.T) {
	spec := Object(map[string]Field{
		"userId": {Type: cty.String, Required: true},
	})
	require.NoError(t, spec.Validate(map[string]any{
		"userId":  "1",
		"unknown": struct{ X chan int }{},
	}))
}

func TestObjectSpec_SafeValidate(t *testing.T) {
	spec := userSpec()

	res := spec.SafeValidate(map[string]any{"userId": "1"})
	require.True(t, res.OK)
	assert.Nil(t, res.Err)
	assert.NotNil(t, res.Value)

	res = spec.SafeValidate(map[string]any{})
	require.False(t, res.OK)
	require.NotNil(t, res.Err)
	assert.Equal(t, "userId", res.Err.Field)
	assert.Nil(t, res.Value)
}

func TestAny(t *testing.T) {
	var v Any
	require.NoError(t, v.Validate(nil))
	require.NoError(t, v.Validate(make(chan int)))

	res := v.SafeValidate("anything")
	assert.True(t, res.OK)
	assert.Equal(t, "anything", res.Value)
}

func TestObjectSpec_Fields(t *testing.T) {
	spec := userSpec()
	assert.Equal(t, []string{"active", "count", "extra", "tags", "userId"}, spec.Fields())

	f, ok := spec.Field("userId")
	require.True(t, ok)
	assert.True(t, f.Required)

	_, ok = spec.Field("missing")
	assert.False(t, ok)
}
