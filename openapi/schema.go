package openapi

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"

	sv "github.com/Gobd/swaggervalidation"
)

func convertParameter(p *openapi2.Parameter) *sv.Parameter {
	if p.Ref != "" {
		return &sv.Parameter{Ref: p.Ref}
	}
	out := &sv.Parameter{
		Name:            p.Name,
		In:              sv.Location(p.In),
		Required:        p.Required,
		AllowEmptyValue: p.AllowEmptyValue,
		Extensions:      p.Extensions,
	}
	if p.Schema != nil {
		out.Schema = convertSchemaRef(p.Schema)
	}
	if p.Type != nil {
		out.DataType = dataType(p)
	}
	return out
}

// constraints are the schema keywords that kin-openapi's Swagger 2 parameters, Swagger 2
// schemas and OpenAPI 3 schemas all spell the same way.
type constraints struct {
	typ                        *openapi3.Types
	format, pattern            string
	enum                       []any
	def                        any
	minLength, minItems        uint64
	maxLength, maxItems        *uint64
	min, max, multipleOf       *float64
	exclusiveMin, exclusiveMax bool
	uniqueItems                bool
}

func (c constraints) schema(ext sv.Extensions) *sv.Schema {
	return &sv.Schema{
		Type:             typeName(c.typ),
		Format:           c.format,
		Pattern:          c.pattern,
		MinLength:        minCount(c.minLength),
		MaxLength:        maxCount(c.maxLength),
		Minimum:          c.min,
		Maximum:          c.max,
		ExclusiveMinimum: c.exclusiveMin,
		ExclusiveMaximum: c.exclusiveMax,
		MultipleOf:       c.multipleOf,
		Enum:             c.enum,
		MinItems:         minCount(c.minItems),
		MaxItems:         maxCount(c.maxItems),
		UniqueItems:      c.uniqueItems,
		Default:          c.def,
		Extensions:       ext,
	}
}

// dataType builds the inline type descriptor of a non-body parameter or a header.
func dataType(p *openapi2.Parameter) *sv.Schema {
	s := constraints{
		p.Type, p.Format, p.Pattern, p.Enum, p.Default,
		p.MinLength, p.MinItems, p.MaxLength, p.MaxItems,
		p.Minimum, p.Maximum, p.MultipleOf,
		p.ExclusiveMin, p.ExclusiveMax, p.UniqueItems,
	}.schema(p.Extensions)
	s.CollectionFormat = p.CollectionFormat
	if p.Items != nil {
		s.Items = convertSchemaRef(p.Items)
	}
	return s
}

// convertSchemaRef converts a Swagger 2 schema. A boolean additionalProperties is not
// carried over: only additional properties with a schema are validated.
func convertSchemaRef(ref *openapi2.SchemaRef) *sv.Schema {
	if ref == nil {
		return nil
	}
	if ref.Ref != "" {
		return &sv.Schema{Ref: ref.Ref, Extensions: ref.Extensions}
	}
	if ref.Value == nil {
		return nil
	}
	v := ref.Value
	s := constraints{
		v.Type, v.Format, v.Pattern, v.Enum, v.Default,
		v.MinLength, v.MinItems, v.MaxLength, v.MaxItems,
		v.Min, v.Max, v.MultipleOf,
		v.ExclusiveMin, v.ExclusiveMax, v.UniqueItems,
	}.schema(mergeExtensions(ref.Extensions, v.Extensions))
	s.Required = v.Required
	if v.Items != nil {
		s.Items = convertSchemaRef(v.Items)
	}
	for _, name := range sortedKeys(v.Properties) {
		s.Properties = append(s.Properties, sv.Property{Name: name, Schema: convertSchemaRef(v.Properties[name])})
	}
	if v.AdditionalProperties.Schema != nil {
		s.AdditionalProperties = convertSchemaRef3(v.AdditionalProperties.Schema)
	}
	return s
}

// convertSchemaRef3 converts the OpenAPI 3 schemas kin-openapi uses for
// additionalProperties in Swagger 2 documents.
func convertSchemaRef3(ref *openapi3.SchemaRef) *sv.Schema {
	if ref == nil {
		return nil
	}
	if ref.Ref != "" {
		return &sv.Schema{Ref: ref.Ref, Extensions: ref.Extensions}
	}
	if ref.Value == nil {
		return nil
	}
	v := ref.Value
	s := constraints{
		v.Type, v.Format, v.Pattern, v.Enum, v.Default,
		v.MinLength, v.MinItems, v.MaxLength, v.MaxItems,
		v.Min, v.Max, v.MultipleOf,
		v.ExclusiveMin, v.ExclusiveMax, v.UniqueItems,
	}.schema(mergeExtensions(ref.Extensions, v.Extensions))
	s.Required = v.Required
	if v.Items != nil {
		s.Items = convertSchemaRef3(v.Items)
	}
	for _, name := range sortedKeys(v.Properties) {
		s.Properties = append(s.Properties, sv.Property{Name: name, Schema: convertSchemaRef3(v.Properties[name])})
	}
	if v.AdditionalProperties.Schema != nil {
		s.AdditionalProperties = convertSchemaRef3(v.AdditionalProperties.Schema)
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// typeName returns the first declared type. Swagger 2 allows a single type.
func typeName(t *openapi3.Types) string {
	if s := t.Slice(); len(s) > 0 {
		return s[0]
	}
	return ""
}

// minCount maps an absent lower bound, which kin-openapi stores as 0, to nil.
func minCount(n uint64) *int {
	if n == 0 {
		return nil
	}
	i := int(n)
	return &i
}

func maxCount(n *uint64) *int {
	if n == nil {
		return nil
	}
	i := int(*n)
	return &i
}

func mergeExtensions(a, b map[string]any) sv.Extensions {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(sv.Extensions, len(a)+len(b))
	for k, val := range b {
		out[k] = val
	}
	for k, val := range a {
		out[k] = val
	}
	return out
}
