package swaggervalidation

// deprecated reports use of a deprecated operation, named by its operationId or
// its path template.
func (s *state) deprecated(op *Operation, template string) {
	if !op.Deprecated {
		return
	}
	name := op.ID
	if name == "" {
		name = template
	}
	s.fail(CodeDeprecated, map[string]any{"name": name}, nil)
}
