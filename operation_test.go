package swaggervalidation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/Gobd/swaggervalidation"
)

func requestErrors(t *testing.T, validator *v.Validator, req *v.Request) []*v.ValidationError {
	t.Helper()
	err := validator.ValidateRequest(req)
	if err == nil {
		return nil
	}
	var set *v.ValidationErrors
	require.ErrorAs(t, err, &set)
	return set.Errors
}

func TestValidateRequest(t *testing.T) {
	validator := newPetstore(t)
	pet := `{"name": "rex", "photoUrls": []}`

	tests := []struct {
		name     string
		req      *v.Request
		want     []codeMessage
		wantNone bool
	}{
		{
			name: "deprecated operation without id",
			req:  &v.Request{Method: "GET", Path: "/store/inventory"},
			want: []codeMessage{{v.CodeDeprecated, `The operation "/store/inventory" is deprecated`}},
		},
		{
			name: "scheme not supported",
			req:  &v.Request{Method: "GET", Path: "/user/login", Scheme: "http", Query: map[string]any{"username": "rex"}},
			want: []codeMessage{{v.CodeSchemeNotSupported, `The scheme "http" is not supported by this operation`}},
		},
		{
			name:     "scheme compared without case",
			req:      &v.Request{Method: "GET", Path: "/user/login", Scheme: "HTTPS", Query: map[string]any{"username": "rex"}},
			wantNone: true,
		},
		{
			name:     "unknown scheme is not checked",
			req:      &v.Request{Method: "GET", Path: "/user/login", Query: map[string]any{"username": "rex"}},
			wantNone: true,
		},
		{
			name: "content type not supported",
			req:  &v.Request{Method: "POST", Path: "/pet", ContentType: "Text/XML", Body: decode(t, pet)},
			want: []codeMessage{{v.CodeContentTypeNotSupported, `The Content-Type "text/xml" is not supported by this operation addPet`}},
		},
		{
			name: "missing body",
			req:  &v.Request{Method: "POST", Path: "/pet", URL: "/pet?draft=1", ContentType: "application/json"},
			want: []codeMessage{{v.CodeMissingBody, `Missing body for "/pet" "/pet?draft=1"`}},
		},
		{
			name: "missing required query parameter",
			req:  &v.Request{Method: "GET", Path: "/pet/findByStatus"},
			want: []codeMessage{{v.CodeRequiredParameter, `Missing required parameter: "status"`}},
		},
		{
			name: "query array item",
			req:  &v.Request{Method: "GET", Path: "/pet/findByStatus", Query: map[string]any{"status": "available,lost"}},
			want: []codeMessage{{v.CodeEnum, `The value in "status[1]" must be one of the following: "available, pending, sold"`}},
		},
		{
			name: "repeated query key",
			req:  &v.Request{Method: "GET", Path: "/pet/findByStatus", Query: map[string]any{"status": []string{"sold", "gone"}}},
			want: []codeMessage{{v.CodeEnum, `The value in "status[1]" must be one of the following: "available, pending, sold"`}},
		},
		{
			name: "missing required header",
			req:  &v.Request{Method: "DELETE", Path: "/pet/1"},
			want: []codeMessage{{v.CodeRequiredParameter, `Missing required parameter: "api_key"`}},
		},
		{
			name: "header name ignores case",
			req:  &v.Request{Method: "DELETE", Path: "/pet/1", Header: map[string]any{"Api_Key": "short"}},
			want: []codeMessage{{v.CodeMinLength, `The value in "api_key" must be at least "8" characters long`}},
		},
		{
			name: "path parameter",
			req:  &v.Request{Method: "GET", Path: "/pet/0"},
			want: []codeMessage{{v.CodeBelowMinimum, `The value in "petId" must be greater than or equal to "1" > "0"`}},
		},
		{
			name: "path parameter not a number",
			req:  &v.Request{Method: "GET", Path: "/pet/rex"},
			want: []codeMessage{{v.CodeExpectInteger, `The value in "petId" must be an integer, "string" given`}},
		},
		{
			name:     "unmatched path",
			req:      &v.Request{Method: "GET", Path: "/nope"},
			wantNone: true,
		},
		{
			name:     "undeclared method",
			req:      &v.Request{Method: "PATCH", Path: "/pet"},
			wantNone: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := requestErrors(t, validator, tt.req)
			if tt.wantNone {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.want, codeMessages(errs))
		})
	}
}

func TestValidateRequestCoercesInPlace(t *testing.T) {
	validator := newPetstore(t)

	req := &v.Request{
		Method: "GET",
		Path:   "/user/login",
		Query:  map[string]any{"username": "rex", "remember": "true"},
	}
	require.NoError(t, validator.ValidateRequest(req))
	assert.Equal(t, true, req.Query["remember"])
	assert.Equal(t, "rex", req.Query["username"])

	req = &v.Request{
		Method:     "GET",
		Path:       "/pet/7",
		PathParams: map[string]any{"petId": "8"},
	}
	require.NoError(t, validator.ValidateRequest(req))
	assert.Equal(t, int64(8), req.PathParams["petId"])
}

func parameterDoc(params ...*v.Parameter) *v.Document {
	return &v.Document{
		Paths: []*v.PathItem{{
			Template: "/things",
			Operations: map[string]*v.Operation{
				"post": {ID: "createThing", Parameters: params},
			},
		}},
	}
}

func TestParameterLocations(t *testing.T) {
	tests := []struct {
		name   string
		params []*v.Parameter
		req    *v.Request
		want   []v.Code
	}{
		{
			name:   "unknown location",
			params: []*v.Parameter{{Name: "sid", In: "cookie", DataType: &v.Schema{Type: v.TypeString}}},
			req:    &v.Request{},
			want:   []v.Code{v.CodeParameterUnknown},
		},
		{
			name:   "form data is not validated",
			params: []*v.Parameter{{Name: "file", In: v.InFormData, Required: true, DataType: &v.Schema{Type: "file"}}},
			req:    &v.Request{},
		},
		{
			name:   "empty query value allowed",
			params: []*v.Parameter{{Name: "q", In: v.InQuery, AllowEmptyValue: true, DataType: &v.Schema{Type: v.TypeString}}},
			req:    &v.Request{Query: map[string]any{"q": ""}},
		},
		{
			name:   "optional header absent",
			params: []*v.Parameter{{Name: "X-Trace", In: v.InHeader, DataType: &v.Schema{Type: v.TypeString}}},
			req:    &v.Request{},
			want:   []v.Code{v.CodeNotString},
		},
		{
			name:   "optional header absent with default",
			params: []*v.Parameter{{Name: "X-Trace", In: v.InHeader, DataType: &v.Schema{Type: v.TypeString, Default: "none"}}},
			req:    &v.Request{},
		},
		{
			name:   "inline type missing",
			params: []*v.Parameter{{Name: "q", In: v.InQuery}},
			req:    &v.Request{Query: map[string]any{"q": "x"}},
			want:   []v.Code{v.CodeUnspecifiedDataType},
		},
		{
			name:   "object is not a parameter type",
			params: []*v.Parameter{{Name: "q", In: v.InQuery, DataType: &v.Schema{Type: v.TypeObject}}},
			req:    &v.Request{Query: map[string]any{"q": "x"}},
			want:   []v.Code{v.CodeUnknownType},
		},
		{
			name:   "bad parameter reference",
			params: []*v.Parameter{{Ref: "#/parameters/nope"}, {Name: "q", In: v.InQuery, Required: true, DataType: &v.Schema{Type: v.TypeString}}},
			req:    &v.Request{},
			want:   []v.Code{v.CodeBadReference, v.CodeRequiredParameter},
		},
		{
			name:   "parameter without validation",
			params: []*v.Parameter{{Name: "q", In: v.InQuery, Required: true, DataType: &v.Schema{Type: v.TypeString}, Extensions: v.Extensions{v.ExtNoValidation: true}}},
			req:    &v.Request{},
		},
		{
			name:   "body parameter named by parameter",
			params: []*v.Parameter{{Name: "thing", In: v.InBody, Schema: &v.Schema{Type: v.TypeObject}}},
			req:    &v.Request{Body: "text"},
			want:   []v.Code{v.CodeUndefinedValue},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator, err := v.New(parameterDoc(tt.params...))
			require.NoError(t, err)
			tt.req.Method = "POST"
			tt.req.Path = "/things"
			errs := requestErrors(t, validator, tt.req)
			assert.Equal(t, tt.want, nilIfEmpty(codes(errs)))
		})
	}
}

func TestHeaderCoercion(t *testing.T) {
	validator, err := v.New(parameterDoc(&v.Parameter{
		Name:       "X-Page",
		In:         v.InHeader,
		DataType:   &v.Schema{Type: v.TypeInteger},
		Extensions: v.Extensions{v.ExtCoerce: true},
	}))
	require.NoError(t, err)

	req := &v.Request{Method: "POST", Path: "/things", Header: map[string]any{"x-page": "3"}}
	require.NoError(t, validator.ValidateRequest(req))
	assert.Equal(t, int64(3), req.Header["x-page"])
}

func TestBodyCoercion(t *testing.T) {
	validator, err := v.New(parameterDoc(&v.Parameter{
		Name: "thing",
		In:   v.InBody,
		Schema: &v.Schema{
			Type:       v.TypeObject,
			Properties: []v.Property{{Name: "count", Schema: &v.Schema{Type: v.TypeInteger, Extensions: v.Extensions{v.ExtCoerce: true}}}},
		},
	}))
	require.NoError(t, err)

	body := map[string]any{"count": "12"}
	req := &v.Request{Method: "POST", Path: "/things", Body: body}
	require.NoError(t, validator.ValidateRequest(req))
	assert.Equal(t, int64(12), body["count"])
}

func TestOperationEscapeHatches(t *testing.T) {
	required := &v.Parameter{Name: "q", In: v.InQuery, Required: true, DataType: &v.Schema{Type: v.TypeString}}
	response := map[string]*v.Response{"200": {Schema: &v.Schema{Type: v.TypeString}}}

	tests := []struct {
		ext          string
		wantRequest  bool
		wantResponse bool
	}{
		{ext: v.ExtNoValidation},
		{ext: v.ExtNoRequestValidation, wantResponse: true},
		{ext: v.ExtNoResponseValidation, wantRequest: true},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			doc := &v.Document{Paths: []*v.PathItem{{
				Template: "/things",
				Operations: map[string]*v.Operation{"get": {
					Deprecated: true,
					Parameters: []*v.Parameter{required},
					Responses:  response,
					Extensions: v.Extensions{tt.ext: true},
				}},
			}}}
			validator, err := v.New(doc)
			require.NoError(t, err)
			ov, ok := validator.Operation("GET", "/things")
			require.True(t, ok)

			assert.Equal(t, tt.wantRequest, len(ov.ValidateRequest(&v.Request{})) > 0)
			assert.Equal(t, tt.wantResponse, len(ov.ValidateResponse(&v.ResponseData{Status: 200, Body: 1.0})) > 0)
		})
	}
}

func TestValidateResponse(t *testing.T) {
	validator := newPetstore(t)
	getPet := &v.Request{Method: "GET", Path: "/pet/1"}

	tests := []struct {
		name string
		req  *v.Request
		res  *v.ResponseData
		want []codeMessage
	}{
		{
			name: "valid",
			req:  getPet,
			res: &v.ResponseData{
				Status: 200,
				Header: map[string]any{"x-rate-limit": "10"},
				Body:   decode(t, `{"name": "rex", "photoUrls": ["http://example.com/rex.png"]}`),
			},
		},
		{
			name: "header and body through response reference",
			req:  getPet,
			res: &v.ResponseData{
				Status: 200,
				Header: map[string]any{"X-Rate-Limit": "many"},
				Body:   decode(t, `{"photoUrls": []}`),
			},
			want: []codeMessage{
				{v.CodeExpectInteger, `The value in "X-Rate-Limit" must be an integer, "string" given`},
				{v.CodeNotString, `The value in "Pet.name" must be a string`},
			},
		},
		{
			name: "default response",
			req:  getPet,
			res:  &v.ResponseData{Status: 404, Body: decode(t, `{}`)},
			want: []codeMessage{{v.CodeNotString, `The value in "response.message" must be a string`}},
		},
		{
			name: "undeclared status",
			req:  &v.Request{Method: "POST", Path: "/pet"},
			res:  &v.ResponseData{Status: 201, Body: "anything"},
		},
		{
			name: "body of the wrong shape",
			req:  &v.Request{Method: "POST", Path: "/pet"},
			res:  &v.ResponseData{Status: 200, Body: "text"},
			want: []codeMessage{{v.CodeUndefinedValue, `Undefined value for "Pet" "object"`}},
		},
		{
			name: "unmatched path",
			req:  &v.Request{Method: "GET", Path: "/nope"},
			res:  &v.ResponseData{Status: 500},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateResponse(tt.req, tt.res)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var set *v.ValidationErrors
			require.ErrorAs(t, err, &set)
			assert.Equal(t, tt.want, codeMessages(set.Errors))
		})
	}
}

func TestValidateResponseBadReference(t *testing.T) {
	doc := &v.Document{Paths: []*v.PathItem{{
		Template: "/things",
		Operations: map[string]*v.Operation{"get": {
			Responses: map[string]*v.Response{"200": {Ref: "#/responses/Missing"}},
		}},
	}}}
	validator, err := v.New(doc)
	require.NoError(t, err)

	err = validator.ValidateResponse(&v.Request{Method: "GET", Path: "/things"}, &v.ResponseData{Status: 200})
	var set *v.ValidationErrors
	require.ErrorAs(t, err, &set)
	require.Len(t, set.Errors, 1)
	assert.Equal(t, v.CodeBadReference, set.Errors[0].Code)
	assert.Equal(t, "/things", set.Path)
	assert.Equal(t, "", set.OperationID())
}
