package swaggervalidation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNilDocument is returned by New when no document is given.
var ErrNilDocument = errors.New("swaggervalidation: document cannot be nil")

// Validator validates requests and responses against one Document. It is safe for
// concurrent use. Operation validators are built on first use and kept for the
// lifetime of the Validator.
type Validator struct {
	doc        *Document
	routes     []route
	operations sync.Map // key -> *OperationValidator
	patterns   sync.Map // pattern -> *regexp.Regexp or error
	log        zerolog.Logger
	cfg        *config
}

type route struct {
	matcher *PathMatcher
	item    *PathItem
}

// New compiles the path templates of doc and returns a Validator for it.
func New(doc *Document, opts ...Option) (*Validator, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	v := &Validator{
		doc: doc,
		log: cfg.logger,
		cfg: cfg,
	}
	for _, item := range doc.Paths {
		if item == nil {
			continue
		}
		pm, err := NewPathMatcher(item.Template)
		if err != nil {
			return nil, fmt.Errorf("swaggervalidation: %w", err)
		}
		v.routes = append(v.routes, route{matcher: pm, item: item})
	}
	return v, nil
}

// Document returns the document the Validator was built from.
func (v *Validator) Document() *Document {
	return v.doc
}

// Lookup finds the operation for method and path. Templates are tried in declaration
// order and the first one that matches and declares the method wins. The path
// parameter bindings are returned with it.
func (v *Validator) Lookup(method, path string) (*OperationValidator, map[string]string, bool) {
	for _, r := range v.routes {
		op := r.item.Operation(method)
		if op == nil {
			continue
		}
		if ok, params := r.matcher.Match(path); ok {
			return v.operation(strings.ToLower(method), r.item.Template, op), params, true
		}
	}
	v.log.Debug().Str("method", method).Str("path", path).Msg("no operation for request")
	return nil, nil, false
}

// Operation returns the validator for method on the given path template, for callers
// that already routed the request.
func (v *Validator) Operation(method, template string) (*OperationValidator, bool) {
	for _, r := range v.routes {
		if r.item.Template != template {
			continue
		}
		op := r.item.Operation(method)
		if op == nil {
			return nil, false
		}
		return v.operation(strings.ToLower(method), template, op), true
	}
	return nil, false
}

func (v *Validator) operation(method, template string, op *Operation) *OperationValidator {
	key := op.ID
	if key == "" {
		key = method + template
	}
	if ov, ok := v.operations.Load(key); ok {
		return ov.(*OperationValidator)
	}
	ov, loaded := v.operations.LoadOrStore(key, &OperationValidator{
		v:         v,
		key:       key,
		method:    method,
		template:  template,
		operation: op,
	})
	if !loaded {
		v.log.Debug().Str("operation", key).Msg("built operation validator")
	}
	return ov.(*OperationValidator)
}

// ValidateRequest finds the operation for req and validates req against it. Path
// parameters bound by the route are added to req.PathParams when not already set.
// It returns a *ValidationErrors when the request is invalid. A request that matches
// no operation is valid unless WithStrictRouting is set.
func (v *Validator) ValidateRequest(req *Request) error {
	ov, params, ok := v.Lookup(req.Method, req.Path)
	if !ok {
		if !v.cfg.strictRouting {
			return nil
		}
		return &ValidationErrors{
			Path: req.Path,
			URL:  req.URL,
			Errors: []*ValidationError{
				NewValidationError(CodeNoPathOperation, map[string]any{"method": req.Method, "path": req.Path}, nil),
			},
		}
	}
	req.bind(params)
	return ov.errorSet(req, ov.ValidateRequest(req))
}

// ValidateResponse finds the operation for req and validates res against it.
func (v *Validator) ValidateResponse(req *Request, res *ResponseData) error {
	ov, _, ok := v.Lookup(req.Method, req.Path)
	if !ok {
		return nil
	}
	return ov.errorSet(req, ov.ValidateResponse(res))
}

// ValidateSchema validates value against node, using name for error messages. It
// returns the coerced value and the errors found.
func (v *Validator) ValidateSchema(value any, node *Schema, name string) (any, []*ValidationError) {
	s := &state{v: v}
	out := s.schema(value, node, field{name: name})
	return out, s.errs
}

// pattern compiles a pattern as a full-string match and caches the result.
func (v *Validator) pattern(p string) (*regexp.Regexp, error) {
	if cached, ok := v.patterns.Load(p); ok {
		if re, ok := cached.(*regexp.Regexp); ok {
			return re, nil
		}
		return nil, cached.(error)
	}
	re, err := regexp.Compile("^(?:" + p + ")$")
	if err != nil {
		v.log.Debug().Str("pattern", p).Err(err).Msg("invalid pattern")
		v.patterns.Store(p, err)
		return nil, err
	}
	v.patterns.Store(p, re)
	return re, nil
}
