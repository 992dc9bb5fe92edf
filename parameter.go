package swaggervalidation

import "strings"

// parameter validates one declared parameter against req, coercing in place.
func (s *state) parameter(p *Parameter, req *Request, template string) {
	if p == nil {
		return
	}
	if p.Ref != "" {
		resolved, ok := s.resolveParameter(p.Ref)
		if !ok {
			return
		}
		s.parameter(resolved, req, template)
		return
	}

	f := field{name: p.Name, required: p.Required}
	switch p.In {
	case InPath:
		value := req.PathParams[p.Name]
		if falsy(value) {
			s.fail(CodeRequiredParameter, map[string]any{"name": p.Name}, value)
			return
		}
		out := s.parameterValue(value, p, f)
		if p.coerce() {
			req.PathParams[p.Name] = out
		}

	case InQuery:
		value, present := req.Query[p.Name]
		if !present {
			if p.Required {
				s.fail(CodeRequiredParameter, map[string]any{"name": p.Name}, nil)
			}
			return
		}
		if empty(value) && !p.AllowEmptyValue {
			s.fail(CodeMissingValue, map[string]any{"name": p.Name}, value)
			return
		}
		out := s.parameterValue(value, p, f)
		if p.coerce() {
			req.Query[p.Name] = out
		}

	case InHeader:
		value, present := lookupHeader(req.Header, p.Name)
		if !present && p.Required {
			s.fail(CodeRequiredParameter, map[string]any{"name": p.Name}, nil)
			return
		}
		out := s.parameterValue(value, p, f)
		if p.coerce() {
			if req.Header == nil {
				req.Header = make(map[string]any)
			}
			req.Header[strings.ToLower(p.Name)] = out
		}

	case InFormData:
		// Form bodies are not validated.

	case InBody:
		if req.Body == nil {
			s.fail(CodeMissingBody, map[string]any{"path": template, "url": req.URL}, nil)
			return
		}
		out := s.schema(req.Body, p.Schema, f)
		if p.Schema.coerce() {
			req.Body = out
		}

	default:
		s.fail(CodeParameterUnknown, map[string]any{"name": p.Name, "in": string(p.In)}, nil)
	}
}

// parameterValue validates a non-body parameter value against its schema, or its
// inline type descriptor when it has none.
func (s *state) parameterValue(value any, p *Parameter, f field) any {
	if p.Schema != nil {
		return s.schema(value, p.Schema, f)
	}
	return s.dataType(value, p.typeNode(), f)
}

// typeNode returns the inline type descriptor with the parameter's own x-coerce
// setting applied, so primitives see it.
func (p *Parameter) typeNode() *Schema {
	c, set := p.Extensions.Coerce()
	if !set || p.DataType == nil {
		return p.DataType
	}
	if own, ownSet := p.DataType.Extensions.Coerce(); ownSet && own == c {
		return p.DataType
	}
	node := *p.DataType
	node.Extensions = make(Extensions, len(p.DataType.Extensions)+1)
	for k, val := range p.DataType.Extensions {
		node.Extensions[k] = val
	}
	node.Extensions[ExtCoerce] = c
	return &node
}

// empty reports whether a query value was sent without content.
func empty(value any) bool {
	switch val := value.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}
