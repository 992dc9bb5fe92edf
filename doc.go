// Package swaggervalidation validates HTTP requests and responses against a
// Swagger 2.0 document.
//
// Build a [Validator] once per document, then validate requests with it:
//
//	validator, err := swaggervalidation.New(doc)
//	if err != nil {
//	    return err
//	}
//	if err := validator.ValidateRequest(req); err != nil {
//	    // err is a *ValidationErrors listing every violation in declaration order.
//	}
//
// Every violation is reported, not just the first. Each [ValidationError] has a
// [Code] and a rendered message, and a [ValidationErrors] serializes to
// {operationId, url, path, errors:[{code, message}]}.
//
// Schema nodes, parameters and operations understand these extensions:
//   - x-no-validation skips the node, parameter or operation
//   - x-no-request-validation and x-no-response-validation skip one direction of an operation
//   - x-coerce converts string input to the declared type and writes it back
//   - x-isemail passes checkDNS and minDomainAtoms to the email format
//
// For net/http servers, [Validator.Middleware] decodes JSON bodies, rejects
// invalid requests with a 400 JSON body and can validate responses too.
//
// Sub-packages:
//   - openapi converts kin-openapi Swagger 2.0 documents and serves them with Swagger UI
//   - transform normalizes decoded bodies, for use with [WithBodyTransform]
package swaggervalidation
