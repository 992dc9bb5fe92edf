package swaggervalidation

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// maxFormatLength is the longest string that is checked against a format.
const maxFormatLength = 255

type stringType struct{}

func (stringType) validate(s *state, value any, node *Schema, f field) any {
	if falsy(value) && !falsy(node.Default) && !f.required {
		value = fmt.Sprint(node.Default)
	}

	str, ok := value.(string)
	if !ok {
		s.fail(CodeNotString, map[string]any{"name": f.name}, value)
		return value
	}

	if node.MinLength != nil && validation.Validate(str, minLength(*node.MinLength, CodeMinLength)...) != nil {
		s.fail(CodeMinLength, map[string]any{"name": f.name, "minLength": *node.MinLength}, str)
	}
	if node.MaxLength != nil && maxLength(*node.MaxLength, CodeMaxLength).Validate(str) != nil {
		s.fail(CodeMaxLength, map[string]any{"name": f.name, "maxLength": *node.MaxLength}, str)
	}
	if node.Pattern != "" {
		re, err := s.v.pattern(node.Pattern)
		if err != nil || match(re).Validate(str) != nil {
			s.fail(CodePattern, map[string]any{"name": f.name, "pattern": node.Pattern}, str)
		}
	}
	if node.Format != "" {
		s.format(str, utf8.RuneCountInString(str), node, f)
	}
	if len(node.Enum) > 0 && in(node.Enum...).Validate(str) != nil {
		s.fail(CodeEnum, map[string]any{"name": f.name, "enum": node.Enum}, str)
	}
	return str
}

// matchRule is an ozzo MatchRule that also tests the empty string, which ozzo accepts.
type matchRule struct {
	validation.MatchRule
	re *regexp.Regexp
}

func match(re *regexp.Regexp) matchRule {
	return matchRule{validation.Match(re).ErrorObject(messages[CodePattern]), re}
}

func (r matchRule) Validate(value any) error {
	if str, ok := value.(string); ok && str == "" && !r.re.MatchString(str) {
		return messages[CodePattern]
	}
	return r.MatchRule.Validate(value)
}
