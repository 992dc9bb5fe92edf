package swaggervalidation

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-json"
)

// ValidationErrors is the set of violations found for one request or response.
// It implements the error interface and serializes to
// {operationId, url, path, errors:[{code, message}]}.
type ValidationErrors struct {
	Operation *Operation
	Path      string
	URL       string
	Errors    []*ValidationError
}

type (
	errorsJSON struct {
		OperationID string      `json:"operationId"`
		URL         string      `json:"url,omitempty"`
		Path        string      `json:"path"`
		Errors      []errorJSON `json:"errors"`
	}

	errorJSON struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	}
)

// OperationID returns the operationId of the validated operation, or "" when unknown.
func (e *ValidationErrors) OperationID() string {
	if e.Operation == nil {
		return ""
	}
	return e.Operation.ID
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i := range e.Errors {
		msgs[i] = e.Errors[i].Message
	}
	return strings.Join(msgs, "; ")
}

// MarshalJSON implements json.Marshaler.
func (e *ValidationErrors) MarshalJSON() ([]byte, error) {
	out := errorsJSON{
		OperationID: e.OperationID(),
		URL:         e.URL,
		Path:        e.Path,
		Errors:      make([]errorJSON, len(e.Errors)),
	}
	for i := range e.Errors {
		out.Errors[i] = errorJSON{Code: e.Errors[i].Code, Message: e.Errors[i].Message}
	}
	return json.Marshal(out)
}

// Fields groups the errors by the name they refer to. Errors without a name, such as
// MISSING_BODY or CONTENT_TYPE_NOT_SUPPORTED, are keyed by their code. When a name has
// several errors only the first is kept.
func (e *ValidationErrors) Fields() validation.Errors {
	errs := validation.Errors{}
	for _, ve := range e.Errors {
		key := ve.Name()
		if key == "" {
			key = string(ve.Code)
		}
		if _, ok := errs[key]; ok {
			continue
		}
		errs[key] = ve
	}
	return errs
}
