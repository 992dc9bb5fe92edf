package swaggervalidation

import "strings"

// Document sections a local reference can point into.
const (
	SectionDefinitions = "definitions"
	SectionParameters  = "parameters"
	SectionResponses   = "responses"
)

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// splitRef parses a local reference of the form #/<section>/<name>.
func splitRef(ref string) (section, name string, ok bool) {
	rest, found := strings.CutPrefix(ref, "#/")
	if !found {
		return "", "", false
	}
	section, name, found = strings.Cut(rest, "/")
	if !found || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return section, pointerUnescaper.Replace(name), true
}

// Resolve looks up a local reference. It returns a *Schema, *Parameter or *Response
// depending on the section, together with the entry name. A reference that is not
// local or names a missing entry fails with a BAD_REFERENCE error.
func (v *Validator) Resolve(ref string) (any, string, *ValidationError) {
	section, name, ok := splitRef(ref)
	if ok {
		switch section {
		case SectionDefinitions:
			if s := v.doc.Definitions[name]; s != nil {
				return s, name, nil
			}
		case SectionParameters:
			if p := v.doc.Parameters[name]; p != nil {
				return p, name, nil
			}
		case SectionResponses:
			if r := v.doc.Responses[name]; r != nil {
				return r, name, nil
			}
		}
	}
	return nil, "", NewValidationError(CodeBadReference, map[string]any{"ref": ref}, nil)
}

func (s *state) resolve(ref string) (any, string, bool) {
	node, name, err := s.v.Resolve(ref)
	if err != nil {
		s.errs = append(s.errs, err)
		return nil, "", false
	}
	return node, name, true
}

func (s *state) resolveSchema(ref string) (*Schema, string, bool) {
	node, name, ok := s.resolve(ref)
	if !ok {
		return nil, "", false
	}
	schema, ok := node.(*Schema)
	if !ok {
		s.fail(CodeBadReference, map[string]any{"ref": ref}, nil)
		return nil, "", false
	}
	return schema, name, true
}

func (s *state) resolveParameter(ref string) (*Parameter, bool) {
	node, _, ok := s.resolve(ref)
	if !ok {
		return nil, false
	}
	p, ok := node.(*Parameter)
	if !ok {
		s.fail(CodeBadReference, map[string]any{"ref": ref}, nil)
		return nil, false
	}
	return p, true
}

func (s *state) resolveResponse(ref string) (*Response, bool) {
	node, _, ok := s.resolve(ref)
	if !ok {
		return nil, false
	}
	r, ok := node.(*Response)
	if !ok {
		s.fail(CodeBadReference, map[string]any{"ref": ref}, nil)
		return nil, false
	}
	return r, true
}
