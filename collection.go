package swaggervalidation

import "strings"

// Collection formats for arrays sent as a single string.
const (
	CollectionCSV   = "csv"
	CollectionTSV   = "tsv"
	CollectionSSV   = "ssv"
	CollectionPipes = "pipes"
	CollectionMulti = "multi"
)

func splitter(sep string) func(string) []any {
	return func(s string) []any {
		parts := strings.Split(s, sep)
		out := make([]any, len(parts))
		for i := range parts {
			out[i] = parts[i]
		}
		return out
	}
}

var collectionFormats = map[string]func(string) []any{
	CollectionCSV:   splitter(","),
	CollectionTSV:   splitter("\t"),
	CollectionSSV:   splitter(" "),
	CollectionPipes: splitter("|"),
	CollectionMulti: func(s string) []any { return []any{s} },
}

// toSlice returns value as a []any. A []any is returned as is so that coerced items
// are written back into the caller's slice.
func toSlice(value any) ([]any, bool) {
	switch val := value.(type) {
	case []any:
		return val, true
	case []string:
		out := make([]any, len(val))
		for i := range val {
			out[i] = val[i]
		}
		return out, true
	}
	return nil, false
}
