package swaggervalidation

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// array validates a sequence. A string value is first split by the node's collection
// format, csv when none is declared.
func (s *state) array(value any, node *Schema, f field) any {
	if str, ok := value.(string); ok {
		format := node.CollectionFormat
		if format == "" {
			format = CollectionCSV
		}
		split, ok := collectionFormats[format]
		if !ok {
			s.fail(CodeUnknownCollectionFormat, map[string]any{"name": f.name, "collectionFormat": format}, value)
			return value
		}
		value = split(str)
	}

	items, ok := toSlice(value)
	if !ok {
		s.fail(CodeExpectArray, map[string]any{"name": f.name}, value)
		return value
	}

	if node.MaxItems != nil && maxLength(*node.MaxItems, CodeMaximumItems).Validate(items) != nil {
		s.fail(CodeMaximumItems, map[string]any{"name": f.name, "maxItems": *node.MaxItems}, items)
	}
	if node.MinItems != nil && validation.Validate(items, minLength(*node.MinItems, CodeMinimumItems)...) != nil {
		s.fail(CodeMinimumItems, map[string]any{"name": f.name, "minItems": *node.MinItems}, items)
	}
	if node.UniqueItems && containsDuplicates(items) {
		s.fail(CodeUniqueItems, map[string]any{"name": f.name}, items)
	}

	if node.Items == nil {
		if s.v.cfg.strictItems {
			s.fail(CodeMissingItemsSpec, map[string]any{"name": f.name}, items)
		}
		return items
	}
	coerce := node.Items.coerce()
	for i := range items {
		out := s.schema(items[i], node.Items, field{name: fmt.Sprintf("%s[%d]", f.name, i)})
		if coerce {
			items[i] = out
		}
	}
	return items
}
