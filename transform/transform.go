package transform

import "strings"

// TrimSpace runs [strings.TrimSpace] on every string in a decoded JSON value.
func TrimSpace(v any) any {
	return StringFunc(v, strings.TrimSpace)
}

// ToLower runs [strings.ToLower] on every string in a decoded JSON value.
func ToLower(v any) any {
	return StringFunc(v, strings.ToLower)
}

// StringFunc applies f to every string in a decoded JSON value, including strings
// nested in objects and arrays. Map keys are left alone. Objects and arrays are
// changed in place; the result must be used when v itself is a string.
func StringFunc(v any, f func(string) string) any {
	switch val := v.(type) {
	case string:
		return f(val)
	case map[string]any:
		for k, child := range val {
			val[k] = StringFunc(child, f)
		}
	case []any:
		for i := range val {
			val[i] = StringFunc(val[i], f)
		}
	case []string:
		for i := range val {
			val[i] = f(val[i])
		}
	}
	return v
}

// Multi runs the given transforms in order.
func Multi(fns ...func(any) any) func(any) any {
	return func(v any) any {
		for _, f := range fns {
			v = f(v)
		}
		return v
	}
}
