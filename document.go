package swaggervalidation

import "strings"

// Location is where a parameter is carried in a request.
type Location string

// Parameter locations.
const (
	InPath     Location = "path"
	InQuery    Location = "query"
	InHeader   Location = "header"
	InFormData Location = "formData"
	InBody     Location = "body"
)

// Schema types.
const (
	TypeArray   = "array"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeObject  = "object"
	TypeString  = "string"
)

// Vendor extensions understood by the validator.
const (
	ExtCoerce               = "x-coerce"
	ExtNoValidation         = "x-no-validation"
	ExtNoRequestValidation  = "x-no-request-validation"
	ExtNoResponseValidation = "x-no-response-validation"
	ExtIsEmail              = "x-isemail"
)

type (
	// Document is a decoded Swagger 2.0 document. It is never mutated by validation.
	Document struct {
		Paths       []*PathItem
		Definitions map[string]*Schema
		Parameters  map[string]*Parameter
		Responses   map[string]*Response
		Consumes    []string
		Schemes     []string
	}

	// PathItem holds the operations of one path template, keyed by lower case method.
	PathItem struct {
		Template   string
		Operations map[string]*Operation
	}

	// Operation is a single method on a path.
	Operation struct {
		ID         string
		Parameters []*Parameter
		Responses  map[string]*Response
		Consumes   []string
		Schemes    []string
		Deprecated bool
		Extensions Extensions
	}

	// Parameter describes one request input. A Parameter with a Ref carries nothing else.
	// Body parameters are described by Schema, all others by DataType.
	Parameter struct {
		Ref             string
		Name            string
		In              Location
		Required        bool
		AllowEmptyValue bool
		Schema          *Schema
		DataType        *Schema
		Extensions      Extensions
	}

	// Property is a named object property. Properties keep declaration order.
	Property struct {
		Name   string
		Schema *Schema
	}

	// Schema is a node of a data shape description.
	Schema struct {
		Ref                  string
		Type                 string
		Format               string
		Properties           []Property
		Required             []string
		AdditionalProperties *Schema
		Items                *Schema
		CollectionFormat     string
		Pattern              string
		MinLength            *int
		MaxLength            *int
		Minimum              *float64
		Maximum              *float64
		ExclusiveMinimum     bool
		ExclusiveMaximum     bool
		MultipleOf           *float64
		Enum                 []any
		MinItems             *int
		MaxItems             *int
		UniqueItems          bool
		Default              any
		Extensions           Extensions
	}

	// Response describes one response of an operation.
	Response struct {
		Ref     string
		Schema  *Schema
		Headers map[string]*Schema
	}

	// Extensions holds the x- vendor extensions of a node.
	Extensions map[string]any
)

// Bool reports whether the extension is set to true.
func (e Extensions) Bool(key string) bool {
	b, _ := e[key].(bool)
	return b
}

// Coerce reports the x-coerce setting. set is false when the extension is absent.
func (e Extensions) Coerce() (coerce, set bool) {
	coerce, set = e[ExtCoerce].(bool)
	return coerce, set
}

// Property returns the named property schema.
func (s *Schema) Property(name string) (*Schema, bool) {
	for i := range s.Properties {
		if s.Properties[i].Name == name {
			return s.Properties[i].Schema, true
		}
	}
	return nil, false
}

// IsRequired reports whether name is listed in the schema's required properties.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

func (s *Schema) coerce() bool {
	if s == nil {
		return false
	}
	c, _ := s.Extensions.Coerce()
	return c
}

func (p *Parameter) coerce() bool {
	if c, ok := p.Extensions.Coerce(); ok {
		return c
	}
	if p.Schema != nil {
		return p.Schema.coerce()
	}
	return p.DataType.coerce()
}

// Operation returns the operation for method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	return p.Operations[strings.ToLower(method)]
}

// Int returns a pointer to i. It helps building schemas in code.
func Int(i int) *int {
	return &i
}

// Float returns a pointer to f. It helps building schemas in code.
func Float(f float64) *float64 {
	return &f
}
