package swaggervalidation

import "math"

// primitive validates one scalar type and returns the coerced value.
type primitive interface {
	validate(s *state, value any, node *Schema, f field) any
}

var primitives = map[string]primitive{
	TypeString:  stringType{},
	TypeNumber:  numberType{},
	TypeInteger: integerType{},
	TypeBoolean: booleanType{},
}

// maxSafeInteger is the largest integer a float64 represents exactly along with its neighbours.
const maxSafeInteger = 1<<53 - 1

func isSafeInteger(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger
}

// toFloat converts any Go numeric value, or a json.Number, to float64.
func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// falsy reports whether value counts as not given: nil, an empty string, false or zero.
func falsy(value any) bool {
	switch val := value.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	}
	if f, ok := toFloat(value); ok {
		return f == 0 || math.IsNaN(f)
	}
	return false
}
