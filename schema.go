package swaggervalidation

// state collects the errors of one validation call. It is never shared between calls.
type state struct {
	v    *Validator
	errs []*ValidationError
}

// field is the value being validated as seen from its parent.
type field struct {
	name     string
	required bool
}

func (s *state) fail(code Code, info map[string]any, value any) {
	s.errs = append(s.errs, NewValidationError(code, info, value))
}

// schema validates value against node and returns the coerced value.
func (s *state) schema(value any, node *Schema, f field) any {
	if node == nil {
		s.fail(CodeUnspecifiedSchema, map[string]any{"name": f.name}, value)
		return value
	}
	if node.Ref != "" {
		resolved, name, ok := s.resolveSchema(node.Ref)
		if !ok {
			return value
		}
		return s.schema(value, resolved, field{name: name, required: f.required})
	}
	if node.Extensions.Bool(ExtNoValidation) {
		return value
	}

	switch node.Type {
	case TypeArray:
		return s.array(value, node, f)
	case "", TypeObject:
		s.object(value, node, f)
		return value
	}
	if p, ok := primitives[node.Type]; ok {
		return p.validate(s, value, node, f)
	}
	s.fail(CodeUnknownType, map[string]any{"name": f.name, "type": node.Type}, value)
	return value
}

// dataType validates value against an inline type descriptor, as used by non-body
// parameters and response headers. Only arrays and primitives are allowed.
func (s *state) dataType(value any, node *Schema, f field) any {
	if node == nil {
		s.fail(CodeUnspecifiedDataType, map[string]any{"name": f.name}, value)
		return value
	}
	if node.Ref != "" {
		resolved, name, ok := s.resolveSchema(node.Ref)
		if !ok {
			return value
		}
		return s.dataType(value, resolved, field{name: name, required: f.required})
	}

	if node.Type == TypeArray {
		return s.array(value, node, f)
	}
	if p, ok := primitives[node.Type]; ok {
		return p.validate(s, value, node, f)
	}
	s.fail(CodeUnknownType, map[string]any{"name": f.name, "type": node.Type}, value)
	return value
}
