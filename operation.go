package swaggervalidation

import (
	"sort"
	"strconv"
	"strings"
)

// OperationValidator validates requests and responses of one operation. It holds no
// per-call state and is safe for concurrent use.
type OperationValidator struct {
	v         *Validator
	key       string
	method    string
	template  string
	operation *Operation
}

// Key returns the identity of the operation: its operationId, or method and template.
func (o *OperationValidator) Key() string {
	return o.key
}

// Template returns the path template of the operation.
func (o *OperationValidator) Template() string {
	return o.template
}

// Operation returns the operation being validated.
func (o *OperationValidator) Operation() *Operation {
	return o.operation
}

// ValidateRequest checks req against the operation and returns every violation found,
// in declaration order. Coerced values are written back into req.
func (o *OperationValidator) ValidateRequest(req *Request) []*ValidationError {
	op := o.operation
	if op.Extensions.Bool(ExtNoValidation) || op.Extensions.Bool(ExtNoRequestValidation) {
		return nil
	}
	s := &state{v: o.v}

	s.deprecated(op, o.template)

	if len(op.Schemes) > 0 && req.Scheme != "" && !contains(op.Schemes, req.Scheme) {
		s.fail(CodeSchemeNotSupported, map[string]any{"protocol": req.Scheme}, nil)
	}

	consumes := op.Consumes
	if len(consumes) == 0 {
		consumes = o.v.doc.Consumes
	}
	if ct := strings.ToLower(req.ContentType); ct != "" && len(consumes) > 0 && !acceptsContentType(consumes, ct) {
		s.fail(CodeContentTypeNotSupported, map[string]any{"contentType": ct, "operationId": op.ID}, nil)
	}

	for _, p := range op.Parameters {
		if p == nil || p.Extensions.Bool(ExtNoValidation) {
			continue
		}
		s.parameter(p, req, o.template)
	}

	o.report(s.errs, "request")
	o.v.cfg.metrics.requestRejected(o.key, s.errs)
	return s.errs
}

// ValidateResponse checks res against the response declared for its status code, or
// the default response. Undeclared status codes are not errors.
func (o *OperationValidator) ValidateResponse(res *ResponseData) []*ValidationError {
	op := o.operation
	if op.Extensions.Bool(ExtNoValidation) || op.Extensions.Bool(ExtNoResponseValidation) {
		return nil
	}
	response, ok := op.Responses[strconv.Itoa(res.Status)]
	if !ok {
		response = op.Responses["default"]
	}
	if response == nil {
		return nil
	}

	s := &state{v: o.v}
	if response.Ref != "" {
		if response, ok = s.resolveResponse(response.Ref); !ok {
			return s.errs
		}
	}

	names := make([]string, 0, len(response.Headers))
	for name := range response.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value, _ := lookupHeader(res.Header, name)
		s.dataType(value, response.Headers[name], field{name: name})
	}

	if response.Schema != nil {
		s.schema(res.Body, response.Schema, field{name: "response"})
	}

	o.report(s.errs, "response")
	o.v.cfg.metrics.responseRejected(o.key, s.errs)
	return s.errs
}

// errorSet wraps errs for req, or returns nil when there are none.
func (o *OperationValidator) errorSet(req *Request, errs []*ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationErrors{
		Operation: o.operation,
		Path:      o.template,
		URL:       req.URL,
		Errors:    errs,
	}
}

func (o *OperationValidator) report(errs []*ValidationError, kind string) {
	if len(errs) == 0 {
		return
	}
	o.v.log.Debug().
		Str("operation", o.key).
		Str("kind", kind).
		Int("errors", len(errs)).
		Str("first", errs[0].Message).
		Msg("validation failed")
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func acceptsContentType(consumes []string, contentType string) bool {
	for _, c := range consumes {
		if strings.Contains(contentType, strings.ToLower(c)) {
			return true
		}
	}
	return false
}
