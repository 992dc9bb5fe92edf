package swaggervalidation

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// defaultBodyLimit caps how much of a request body is read for validation.
const defaultBodyLimit = 10 << 20

type (
	// RequestErrorHandler writes the response for a request that failed validation.
	RequestErrorHandler func(w http.ResponseWriter, r *http.Request, err *ValidationErrors)

	// ResponseOverride is called when a response fails validation. It returns true when it
	// wrote the response itself; otherwise the response is replaced by a 500 carrying err.
	ResponseOverride func(w http.ResponseWriter, r *http.Request, res *ResponseData, err *ValidationErrors) bool

	// MiddlewareOption configures Middleware.
	MiddlewareOption func(*middlewareConfig)

	middlewareConfig struct {
		onRequestError   RequestErrorHandler
		validateResponse bool
		onResponseError  ResponseOverride
		bodyLimit        int64
		bodyTransform    func(any) any
	}

	requestKey struct{}
)

// WithRequestErrorHandler replaces the default 400 JSON response for invalid requests.
func WithRequestErrorHandler(h RequestErrorHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.onRequestError = h
	}
}

// WithResponseValidation buffers handler responses and validates them. override may be nil.
func WithResponseValidation(override ResponseOverride) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.validateResponse = true
		c.onResponseError = override
	}
}

// WithBodyLimit sets the largest request body read for validation. Default is 10 MiB.
func WithBodyLimit(n int64) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.bodyLimit = n
	}
}

// WithBodyTransform rewrites the decoded request body before it is validated, for
// example with transform.TrimSpace. The handler still receives the original bytes.
func WithBodyTransform(fn func(any) any) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.bodyTransform = fn
	}
}

// RequestFromContext returns the validated request, with coerced values, stored by Middleware.
func RequestFromContext(ctx context.Context) (*Request, bool) {
	req, ok := ctx.Value(requestKey{}).(*Request)
	return req, ok
}

// Middleware validates requests before they reach next. JSON bodies are decoded for
// validation and restored for next.
func (v *Validator) Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		onRequestError: WriteError,
		bodyLimit:      defaultBodyLimit,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ov, params, ok := v.Lookup(r.Method, r.URL.Path)
			if !ok {
				if !v.cfg.strictRouting {
					next.ServeHTTP(w, r)
					return
				}
				err := v.ValidateRequest(NewRequest(r, nil))
				cfg.onRequestError(w, r, err.(*ValidationErrors))
				return
			}

			req := NewRequest(r, params)
			body, err := readBody(r, cfg.bodyLimit)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			req.Body = decodeBody(body, req.ContentType)
			if cfg.bodyTransform != nil && req.Body != nil {
				req.Body = cfg.bodyTransform(req.Body)
			}

			if err := ov.errorSet(req, ov.ValidateRequest(req)); err != nil {
				cfg.onRequestError(w, r, err.(*ValidationErrors))
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), requestKey{}, req))

			if !cfg.validateResponse {
				next.ServeHTTP(w, r)
				return
			}

			rec := newResponseRecorder()
			next.ServeHTTP(rec, r)
			res := rec.data()
			if err := ov.errorSet(req, ov.ValidateResponse(res)); err != nil {
				set := err.(*ValidationErrors)
				if cfg.onResponseError != nil && cfg.onResponseError(w, r, res, set) {
					return
				}
				writeJSON(w, http.StatusInternalServerError, set)
				return
			}
			rec.flush(w)
		})
	}
}

// WriteError writes err as a 400 JSON response.
func WriteError(w http.ResponseWriter, _ *http.Request, err *ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, err)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// replayBody serves the bytes already read for validation, then the rest of the body.
type replayBody struct {
	io.Reader
	io.Closer
}

// readBody reads at most limit bytes of the body for validation. The next handler still
// reads the whole body.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(io.LimitReader(r.Body, limit))
	if err != nil {
		return nil, err
	}
	r.Body = replayBody{io.MultiReader(bytes.NewReader(b), r.Body), r.Body}
	return b, nil
}

// decodeBody returns the decoded JSON payload, the raw text when it is not JSON, or nil
// when there is no payload.
func decodeBody(b []byte, contentType string) any {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if contentType == "" || strings.Contains(strings.ToLower(contentType), "json") {
		var out any
		if err := json.Unmarshal(b, &out); err == nil {
			return out
		}
	}
	return string(b)
}

// responseRecorder buffers a handler's response until it has been validated.
type responseRecorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{header: make(http.Header)}
}

func (rr *responseRecorder) Header() http.Header {
	return rr.header
}

func (rr *responseRecorder) WriteHeader(code int) {
	if rr.status == 0 {
		rr.status = code
	}
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	if rr.status == 0 {
		rr.status = http.StatusOK
	}
	return rr.body.Write(b)
}

func (rr *responseRecorder) data() *ResponseData {
	status := rr.status
	if status == 0 {
		status = http.StatusOK
	}
	return &ResponseData{
		Status: status,
		Header: headerMap(rr.header),
		Body:   decodeBody(rr.body.Bytes(), rr.header.Get("Content-Type")),
	}
}

func (rr *responseRecorder) flush(w http.ResponseWriter) {
	for k, vals := range rr.header {
		w.Header()[k] = vals
	}
	status := rr.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write(rr.body.Bytes())
}
