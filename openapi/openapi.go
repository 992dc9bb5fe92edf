package openapi

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"

	sv "github.com/Gobd/swaggervalidation"
)

var (
	// ErrNilDocument is returned when no document is given.
	ErrNilDocument = errors.New("openapi: document cannot be nil")

	// ErrUnsupportedVersion is returned for documents that are not Swagger 2.
	ErrUnsupportedVersion = errors.New("openapi: unsupported swagger version")
)

// methods lists the operations of a path item in a fixed order.
var methods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPost,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodHead,
	http.MethodPatch,
}

// FromV2 converts a Swagger 2.0 document. Path level parameters are merged into
// each operation, where an operation parameter with the same name and location wins.
func FromV2(doc *openapi2.T) (*sv.Document, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if major, _, _ := strings.Cut(doc.Swagger, "."); major != "2" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, doc.Swagger)
	}

	out := &sv.Document{
		Definitions: make(map[string]*sv.Schema, len(doc.Definitions)),
		Parameters:  make(map[string]*sv.Parameter, len(doc.Parameters)),
		Responses:   make(map[string]*sv.Response, len(doc.Responses)),
		Consumes:    doc.Consumes,
		Schemes:     doc.Schemes,
	}
	for name, ref := range doc.Definitions {
		out.Definitions[name] = convertSchemaRef(ref)
	}
	for name, p := range doc.Parameters {
		out.Parameters[name] = convertParameter(p)
	}
	for name, r := range doc.Responses {
		out.Responses[name] = convertResponse(r)
	}

	templates := make([]string, 0, len(doc.Paths))
	for template := range doc.Paths {
		templates = append(templates, template)
	}
	sort.Strings(templates)

	for _, template := range templates {
		item := doc.Paths[template]
		if item == nil {
			continue
		}
		if item.Ref != "" {
			return nil, fmt.Errorf("openapi: path %q: path item references are not supported", template)
		}
		pi := &sv.PathItem{
			Template:   template,
			Operations: make(map[string]*sv.Operation),
		}
		for _, method := range methods {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			pi.Operations[strings.ToLower(method)] = convertOperation(op, item.Parameters)
		}
		out.Paths = append(out.Paths, pi)
	}
	return out, nil
}

func convertOperation(op *openapi2.Operation, shared openapi2.Parameters) *sv.Operation {
	out := &sv.Operation{
		ID:         op.OperationID,
		Consumes:   op.Consumes,
		Schemes:    op.Schemes,
		Deprecated: op.Deprecated,
		Extensions: op.Extensions,
		Responses:  make(map[string]*sv.Response, len(op.Responses)),
	}

	for _, p := range shared {
		if p == nil || overridden(p, op.Parameters) {
			continue
		}
		out.Parameters = append(out.Parameters, convertParameter(p))
	}
	for _, p := range op.Parameters {
		if p != nil {
			out.Parameters = append(out.Parameters, convertParameter(p))
		}
	}

	for code, r := range op.Responses {
		out.Responses[code] = convertResponse(r)
	}
	return out
}

// overridden reports whether a path level parameter is redefined by the operation.
func overridden(p *openapi2.Parameter, params openapi2.Parameters) bool {
	if p.Ref != "" {
		return false
	}
	for _, own := range params {
		if own != nil && own.Ref == "" && own.Name == p.Name && own.In == p.In {
			return true
		}
	}
	return false
}

func convertResponse(r *openapi2.Response) *sv.Response {
	if r == nil {
		return nil
	}
	if r.Ref != "" {
		return &sv.Response{Ref: r.Ref}
	}
	out := &sv.Response{}
	if r.Schema != nil {
		out.Schema = convertSchemaRef(r.Schema)
	}
	if len(r.Headers) > 0 {
		out.Headers = make(map[string]*sv.Schema, len(r.Headers))
		for name, h := range r.Headers {
			if h != nil {
				out.Headers[name] = dataType(&h.Parameter)
			}
		}
	}
	return out
}
