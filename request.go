package swaggervalidation

import (
	"net/http"
	"strings"
)

// Request is the validated view of an HTTP request.
//
// Validation coerces values in place: when a parameter or a body property declares
// x-coerce, its value in PathParams, Query, Header or Body is replaced by the converted
// value, for example the string "12" by the int64 12.
type Request struct {
	Method      string
	Path        string
	URL         string
	Scheme      string
	ContentType string

	// PathParams holds the path template bindings.
	PathParams map[string]any

	// Query holds a string per key, or a []string when the key is repeated.
	Query map[string]any

	// Header is keyed by lower case header name.
	Header map[string]any

	// Body is the decoded JSON body, or nil when the request has none.
	Body any
}

// ResponseData is an outgoing response to validate.
type ResponseData struct {
	Status int
	Header map[string]any
	Body   any
}

// NewRequest builds a Request from r. The body is not read; set Body to the decoded
// payload. params are the path bindings when the caller routed the request itself.
func NewRequest(r *http.Request, params map[string]string) *Request {
	req := &Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		URL:         r.URL.RequestURI(),
		Scheme:      scheme(r),
		ContentType: r.Header.Get("Content-Type"),
		PathParams:  make(map[string]any, len(params)),
		Query:       make(map[string]any),
		Header:      headerMap(r.Header),
	}
	for k, val := range params {
		req.PathParams[k] = val
	}
	for k, vals := range r.URL.Query() {
		if len(vals) == 1 {
			req.Query[k] = vals[0]
		} else {
			req.Query[k] = vals
		}
	}
	return req
}

func scheme(r *http.Request) string {
	if s := r.Header.Get("X-Forwarded-Proto"); s != "" {
		return strings.ToLower(s)
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func headerMap(h http.Header) map[string]any {
	m := make(map[string]any, len(h))
	for k, vals := range h {
		m[strings.ToLower(k)] = strings.Join(vals, ", ")
	}
	return m
}

// bind adds route bindings that are not already set.
func (r *Request) bind(params map[string]string) {
	if len(params) == 0 {
		return
	}
	if r.PathParams == nil {
		r.PathParams = make(map[string]any, len(params))
	}
	for k, val := range params {
		if _, ok := r.PathParams[k]; !ok {
			r.PathParams[k] = val
		}
	}
}

// lookupHeader finds a header ignoring case.
func lookupHeader(h map[string]any, name string) (any, bool) {
	if val, ok := h[strings.ToLower(name)]; ok {
		return val, true
	}
	for k, val := range h {
		if strings.EqualFold(k, name) {
			return val, true
		}
	}
	return nil, false
}
