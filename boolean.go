package swaggervalidation

type booleanType struct{}

func (booleanType) validate(s *state, value any, node *Schema, f field) any {
	if str, ok := value.(string); ok && node.coerce() {
		if str != "true" && str != "false" {
			s.fail(CodeInvalidBoolean, map[string]any{"name": f.name}, value)
			// The rejected string is kept rather than coerced to false.
			return value
		}
		return str == "true"
	}
	if _, ok := value.(bool); !ok {
		s.fail(CodeInvalidBoolean, map[string]any{"name": f.name}, value)
	}
	return value
}
