package swaggervalidation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxNumberLength is the longest string that is parsed as a number.
const maxNumberLength = 255

var (
	floatPattern       = regexp.MustCompile(`^[+-]?(\d+([.,]\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	floatPrefixPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	intPattern         = regexp.MustCompile(`^[+-]?\d+$`)
	intPrefixPattern   = regexp.MustCompile(`^[+-]?\d+`)
)

// parseFloatPrefix parses the longest numeric prefix of s, ignoring leading spaces.
func parseFloatPrefix(s string) (float64, bool) {
	m := floatPrefixPattern.FindString(strings.TrimLeft(s, " \t\n\r"))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	return f, true
}

// parseIntPrefix parses the longest integer prefix of s, ignoring leading spaces. Values
// out of the int64 range are returned as float64.
func parseIntPrefix(s string) (any, bool) {
	m := intPrefixPattern.FindString(strings.TrimLeft(s, " \t\n\r"))
	if m == "" {
		return nil, false
	}
	i, err := strconv.ParseInt(m, 10, 64)
	if err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !isRangeErr(err) {
		return nil, false
	}
	return f, true
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

type numberType struct{}

func (numberType) validate(s *state, value any, node *Schema, f field) any {
	if str, ok := value.(string); ok {
		if !node.coerce() {
			s.fail(CodeExpectNumber, map[string]any{"name": f.name, "value": str}, str)
			return value
		}
		if utf8.RuneCountInString(str) > maxNumberLength {
			s.fail(CodeMaximumStringNumber, map[string]any{"name": f.name, "value": str}, str)
			return value
		}
		if !floatPattern.MatchString(str) {
			s.fail(CodeExpectFloat, map[string]any{"name": f.name, "value": str}, str)
		}
		parsed, ok := parseFloatPrefix(str)
		if !ok {
			s.fail(CodeExpectNumber, map[string]any{"name": f.name, "value": str}, str)
			return value
		}
		value = parsed
	}

	n, ok := toFloat(value)
	if !ok || math.IsNaN(n) {
		s.fail(CodeExpectNumber, map[string]any{"name": f.name, "value": value}, value)
		return value
	}
	s.bounds(n, value, node, f)
	return value
}

type integerType struct{}

func (integerType) validate(s *state, value any, node *Schema, f field) any {
	if str, ok := value.(string); ok {
		if utf8.RuneCountInString(str) > maxNumberLength {
			s.fail(CodeMaximumStringNumber, map[string]any{"name": f.name, "value": str}, str)
			return value
		}
		if coerce, set := node.Extensions.Coerce(); set && !coerce {
			s.fail(CodeExpectInteger, map[string]any{"name": f.name, "value": str}, str)
			return value
		}
		if !intPattern.MatchString(str) {
			s.fail(CodeExpectInteger, map[string]any{"name": f.name, "value": str}, str)
			parsed, ok := parseIntPrefix(str)
			if !ok {
				return value
			}
			value = parsed
		} else {
			value, _ = parseIntPrefix(str)
		}
	}

	n, ok := toFloat(value)
	if !ok || math.IsNaN(n) {
		s.fail(CodeExpectInteger, map[string]any{"name": f.name, "value": value}, value)
		return value
	}
	if !isSafeInteger(n) && node.Format != "int64" {
		s.fail(CodeExpectInteger, map[string]any{"name": f.name, "value": value}, value)
	}
	s.bounds(n, value, node, f)
	return value
}
