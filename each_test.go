package swaggervalidation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/Gobd/swaggervalidation"
)

func TestArrayCollectionFormats(t *testing.T) {
	validator := emptyValidator(t)
	items := &v.Schema{Type: v.TypeString}

	tests := []struct {
		format string
		value  string
		want   []any
	}{
		{format: "", value: "a,b,c", want: []any{"a", "b", "c"}},
		{format: v.CollectionCSV, value: "a,b,c", want: []any{"a", "b", "c"}},
		{format: v.CollectionTSV, value: "a\tb", want: []any{"a", "b"}},
		{format: v.CollectionSSV, value: "a b", want: []any{"a", "b"}},
		{format: v.CollectionPipes, value: "a|b|c", want: []any{"a", "b", "c"}},
		{format: v.CollectionMulti, value: "a,b", want: []any{"a,b"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			node := &v.Schema{Type: v.TypeArray, CollectionFormat: tt.format, Items: items}
			out, errs := validator.ValidateSchema(tt.value, node, "list")
			require.Empty(t, errs)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestArray(t *testing.T) {
	validator := emptyValidator(t)

	tests := []struct {
		name  string
		node  *v.Schema
		value any
		want  []v.Code
	}{
		{
			name:  "unknown collection format",
			node:  &v.Schema{Type: v.TypeArray, CollectionFormat: "semicolons", Items: &v.Schema{Type: v.TypeString}},
			value: "a;b",
			want:  []v.Code{v.CodeUnknownCollectionFormat},
		},
		{
			name:  "not an array",
			node:  &v.Schema{Type: v.TypeArray, Items: &v.Schema{Type: v.TypeString}},
			value: map[string]any{"a": 1.0},
			want:  []v.Code{v.CodeExpectArray},
		},
		{
			name:  "too many",
			node:  &v.Schema{Type: v.TypeArray, MaxItems: v.Int(1), Items: &v.Schema{Type: v.TypeNumber}},
			value: []any{1.0, 2.0},
			want:  []v.Code{v.CodeMaximumItems},
		},
		{
			name:  "too few",
			node:  &v.Schema{Type: v.TypeArray, MinItems: v.Int(3), Items: &v.Schema{Type: v.TypeNumber}},
			value: []any{1.0, 2.0},
			want:  []v.Code{v.CodeMinimumItems},
		},
		{
			name:  "empty below min items",
			node:  &v.Schema{Type: v.TypeArray, MinItems: v.Int(1), Items: &v.Schema{Type: v.TypeNumber}},
			value: []any{},
			want:  []v.Code{v.CodeMinimumItems},
		},
		{
			name:  "zero max items",
			node:  &v.Schema{Type: v.TypeArray, MaxItems: v.Int(0), Items: &v.Schema{Type: v.TypeNumber}},
			value: []any{1.0},
			want:  []v.Code{v.CodeMaximumItems},
		},
		{
			name:  "duplicates anywhere",
			node:  &v.Schema{Type: v.TypeArray, UniqueItems: true, Items: &v.Schema{Type: v.TypeNumber}},
			value: []any{1.0, 2.0, 1.0},
			want:  []v.Code{v.CodeUniqueItems},
		},
		{
			name:  "duplicate objects",
			node:  &v.Schema{Type: v.TypeArray, UniqueItems: true},
			value: []any{map[string]any{"a": 1.0}, map[string]any{"a": 1.0}},
			want:  []v.Code{v.CodeUniqueItems},
		},
		{
			name:  "unique",
			node:  &v.Schema{Type: v.TypeArray, UniqueItems: true, Items: &v.Schema{Type: v.TypeString}},
			value: []any{"1", "2"},
		},
		{
			name:  "items are validated",
			node:  &v.Schema{Type: v.TypeArray, Items: &v.Schema{Type: v.TypeString}},
			value: []any{"a", 2.0, "c", false},
			want:  []v.Code{v.CodeNotString, v.CodeNotString},
		},
		{
			name:  "string slice",
			node:  &v.Schema{Type: v.TypeArray, Items: &v.Schema{Type: v.TypeString, MinLength: v.Int(2)}},
			value: []string{"ab", "c"},
			want:  []v.Code{v.CodeMinLength},
		},
		{
			name:  "no items",
			node:  &v.Schema{Type: v.TypeArray},
			value: []any{1.0, "a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := validator.ValidateSchema(tt.value, tt.node, "list")
			assert.Equal(t, tt.want, nilIfEmpty(codes(errs)))
		})
	}
}

func TestArrayItemNames(t *testing.T) {
	validator := emptyValidator(t)
	node := &v.Schema{Type: v.TypeArray, Items: &v.Schema{Type: v.TypeString}}

	_, errs := validator.ValidateSchema([]any{"a", 2.0}, node, "tags")
	require.Len(t, errs, 1)
	assert.Equal(t, "tags[1]", errs[0].Name())
	assert.Equal(t, `The value in "tags[1]" must be a string`, errs[0].Message)
}

func TestArrayStrictItems(t *testing.T) {
	node := &v.Schema{Type: v.TypeArray}

	_, errs := emptyValidator(t, v.WithStrictItems(true)).ValidateSchema([]any{1.0}, node, "list")
	require.Len(t, errs, 1)
	assert.Equal(t, v.CodeMissingItemsSpec, errs[0].Code)
	assert.Equal(t, `"items" must be defined for an array "list"`, errs[0].Message)

	_, errs = emptyValidator(t).ValidateSchema([]any{1.0}, node, "list")
	assert.Empty(t, errs)
}

func TestArrayCoercesItems(t *testing.T) {
	validator := emptyValidator(t)
	node := &v.Schema{
		Type:  v.TypeArray,
		Items: &v.Schema{Type: v.TypeInteger, Extensions: v.Extensions{v.ExtCoerce: true}},
	}

	out, errs := validator.ValidateSchema("1,2,3", node, "ids")
	require.Empty(t, errs)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, out)

	list := []any{"4", "5"}
	_, errs = validator.ValidateSchema(list, node, "ids")
	require.Empty(t, errs)
	assert.Equal(t, []any{int64(4), int64(5)}, list)
}

func TestArrayLeavesItemsWithoutCoerce(t *testing.T) {
	validator := emptyValidator(t)
	node := &v.Schema{Type: v.TypeArray, Items: &v.Schema{Type: v.TypeInteger}}

	list := []any{"4", "5"}
	_, errs := validator.ValidateSchema(list, node, "ids")
	require.Empty(t, errs)
	assert.Equal(t, []any{"4", "5"}, list)
}
