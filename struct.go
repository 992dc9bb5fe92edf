package swaggervalidation

import "sort"

// object validates a structured value. Declared properties are visited in declaration
// order when present or required; additional properties in sorted key order.
func (s *state) object(value any, node *Schema, f field) {
	obj, ok := value.(map[string]any)
	if !ok {
		typ := node.Type
		if typ == "" {
			typ = TypeObject
		}
		s.fail(CodeUndefinedValue, map[string]any{"name": f.name, "type": typ}, value)
		return
	}

	for _, p := range node.Properties {
		child, present := obj[p.Name]
		required := node.IsRequired(p.Name)
		if !present && !required {
			continue
		}
		out := s.schema(child, p.Schema, field{name: f.name + "." + p.Name, required: required})
		if present && p.Schema.coerce() {
			obj[p.Name] = out
		}
	}

	if node.AdditionalProperties == nil {
		return
	}
	extra := make([]string, 0, len(obj))
	for k := range obj {
		if _, declared := node.Property(k); !declared {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		out := s.schema(obj[k], node.AdditionalProperties, field{name: f.name + "." + k})
		if node.AdditionalProperties.coerce() {
			obj[k] = out
		}
	}
}
