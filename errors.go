package swaggervalidation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Code identifies the kind of a validation failure.
type Code string

// Validation error codes.
const (
	CodeBadReference            Code = "BAD_REFERENCE"
	CodeBelowExclusiveMinimum   Code = "BELOW_EXCLUSIVE_MINIMUM"
	CodeBelowMinimum            Code = "BELOW_MINIMUM"
	CodeContentTypeNotSupported Code = "CONTENT_TYPE_NOT_SUPPORTED"
	CodeDeprecated              Code = "DEPRECATED"
	CodeEnum                    Code = "ENUM"
	CodeExceedsExclusiveMaximum Code = "EXCEEDS_EXCLUSIVE_MAXIMUM"
	CodeExceedsMaximum          Code = "EXCEEDS_MAXIMUM"
	CodeExpectArray             Code = "EXPECT_ARRAY"
	CodeExpectFloat             Code = "EXPECT_FLOAT"
	CodeExpectInteger           Code = "EXPECT_INTEGER"
	CodeExpectNumber            Code = "EXPECT_NUMBER"
	CodeInvalidBoolean          Code = "INVALID_BOOLEAN"
	CodeInvalidFormat           Code = "INVALID_FORMAT"
	CodeMaximumItems            Code = "MAXIMUM_ITEMS"
	CodeMaximumStringNumber     Code = "MAXIMUM_STRING_NUMBER"
	CodeMaxLength               Code = "MAXLENGTH"
	CodeMinimumItems            Code = "MINIMUM_ITEMS"
	CodeMinLength               Code = "MINLENGTH"
	CodeMissingBody             Code = "MISSING_BODY"
	CodeMissingItemsSpec        Code = "MISSING_ITEMS_SPEC"
	CodeMissingValue            Code = "MISSING_VALUE"
	CodeNotMultiple             Code = "NOT_MULTIPLE"
	CodeNotString               Code = "NOT_STRING"
	CodeNoPathOperation         Code = "NO_PATH_OPERATION"
	CodeParameterUnknown        Code = "PARAMETER_UNKNOWN"
	CodePattern                 Code = "PATTERN"
	CodeRequiredParameter       Code = "REQUIRED_PARAMETER"
	CodeSchemeNotSupported      Code = "SCHEME_NOT_SUPPORTED"
	CodeStringTooLong           Code = "STRING_TOO_LONG"
	CodeUndefinedValue          Code = "UNDEFINED_VALUE"
	CodeUniqueItems             Code = "UNIQUE_ITEMS"
	CodeUnknownCollectionFormat Code = "UNKNOWN_COLLECTION_FORMAT"
	CodeUnknownFormat           Code = "UNKNOWN_FORMAT"
	CodeUnknownType             Code = "UNKNOWN_TYPE"
	CodeUnspecifiedDataType     Code = "UNSPECIFIED_DATA_TYPE"
	CodeUnspecifiedSchema       Code = "UNSPECIFIED_SCHEMA"
)

func newError(c Code, tmpl string) validation.Error {
	return validation.NewError(string(c), tmpl)
}

// messages holds one message template per code. Templates are rendered with the
// error info plus the derived params added by params.
var messages = map[Code]validation.Error{
	CodeBadReference:            newError(CodeBadReference, `Unable to resolve the ReferenceObject "{{.ref}}"`),
	CodeBelowExclusiveMinimum:   newError(CodeBelowExclusiveMinimum, `The value in "{{.name}}" must be greater than "{{.minimum}}" >= "{{.value}}"`),
	CodeBelowMinimum:            newError(CodeBelowMinimum, `The value in "{{.name}}" must be greater than or equal to "{{.minimum}}" > "{{.value}}"`),
	CodeContentTypeNotSupported: newError(CodeContentTypeNotSupported, `The Content-Type "{{.contentType}}" is not supported by this operation {{.operationId}}`),
	CodeDeprecated:              newError(CodeDeprecated, `The operation "{{.name}}" is deprecated`),
	CodeEnum:                    newError(CodeEnum, `The value in "{{.name}}" must be one of the following: "{{.enumList}}"`),
	CodeExceedsExclusiveMaximum: newError(CodeExceedsExclusiveMaximum, `The value in "{{.name}}" must be less than "{{.maximum}}" <= {{.value}}`),
	CodeExceedsMaximum:          newError(CodeExceedsMaximum, `The value in "{{.name}}" must be less than or equal to "{{.maximum}}" < {{.value}}`),
	CodeExpectArray:             newError(CodeExpectArray, `The value in "{{.name}}" must be an array`),
	CodeExpectFloat:             newError(CodeExpectFloat, `The value in "{{.name}}" must be an float|double`),
	CodeExpectInteger:           newError(CodeExpectInteger, `The value in "{{.name}}" must be an integer, "{{.typeOf}}" given`),
	CodeExpectNumber:            newError(CodeExpectNumber, `The value in "{{.name}}" must be a number`),
	CodeInvalidBoolean:          newError(CodeInvalidBoolean, `The value in "{{.name}}" must be either true or false`),
	CodeInvalidFormat:           newError(CodeInvalidFormat, `The value in "{{.name}}" must be in the format "{{.format}}"`),
	CodeMaximumItems:            newError(CodeMaximumItems, `The value in "{{.name}}" must contain no more than "{{.maxItems}}"`),
	CodeMaximumStringNumber:     newError(CodeMaximumStringNumber, `The value in "{{.name}}" exceeds the maximum string length for number validation (255) "{{.length}}"`),
	CodeMaxLength:               newError(CodeMaxLength, `The value in "{{.name}}" must be less than "{{.maxLength}}" characters long`),
	CodeMinimumItems:            newError(CodeMinimumItems, `The value in "{{.name}}" must contain no less than "{{.minItems}}"`),
	CodeMinLength:               newError(CodeMinLength, `The value in "{{.name}}" must be at least "{{.minLength}}" characters long`),
	CodeMissingBody:             newError(CodeMissingBody, `Missing body for "{{.path}}" "{{.url}}"`),
	CodeMissingItemsSpec:        newError(CodeMissingItemsSpec, `"items" must be defined for an array "{{.name}}"`),
	CodeMissingValue:            newError(CodeMissingValue, `The value of "{{.name}}" is not specified`),
	CodeNotMultiple:             newError(CodeNotMultiple, `The value in "{{.name}}" must be a multiple of "{{.multipleOf}}". {{.value}} % {{.multipleOf}} == {{.remainder}}`),
	CodeNotString:               newError(CodeNotString, `The value in "{{.name}}" must be a string`),
	CodeNoPathOperation:         newError(CodeNoPathOperation, `There is no operation schema for "{{.method}}" "{{.path}}"`),
	CodeParameterUnknown:        newError(CodeParameterUnknown, `Unknown location of parameter "{{.name}}" in "{{.in}}"`),
	CodePattern:                 newError(CodePattern, `"{{.name}}" does not match the pattern "{{.pattern}}"`),
	CodeRequiredParameter:       newError(CodeRequiredParameter, `Missing required parameter: "{{.name}}"`),
	CodeSchemeNotSupported:      newError(CodeSchemeNotSupported, `The scheme "{{.protocol}}" is not supported by this operation`),
	CodeStringTooLong:           newError(CodeStringTooLong, `The value in "{{.name}}" is too long for string format validation. ({{.length}})`),
	CodeUndefinedValue:          newError(CodeUndefinedValue, `Undefined value for "{{.name}}" "{{.type}}"`),
	CodeUniqueItems:             newError(CodeUniqueItems, `All of the items in "{{.name}}" should be unique`),
	CodeUnknownCollectionFormat: newError(CodeUnknownCollectionFormat, `Unknown collection format: "{{.collectionFormat}}" for "{{.name}}"`),
	CodeUnknownFormat:           newError(CodeUnknownFormat, `Unknown string format "{{.format}}" for "{{.name}}"`),
	CodeUnknownType:             newError(CodeUnknownType, `Unknown type: "{{.type}}" in "{{.name}}"`),
	CodeUnspecifiedDataType:     newError(CodeUnspecifiedDataType, `Unspecified data type options`),
	CodeUnspecifiedSchema:       newError(CodeUnspecifiedSchema, `Unspecified schema`),
}

// ValidationError is a single violation found while validating a request or a response.
type ValidationError struct {
	Code    Code
	Message string
	Info    map[string]any
	Value   any
}

// NewValidationError builds a ValidationError and renders its message from the code's template.
// An unknown code still produces an error, with a message naming the code.
func NewValidationError(code Code, info map[string]any, value any) *ValidationError {
	e := &ValidationError{
		Code:  code,
		Info:  info,
		Value: value,
	}
	tmpl, ok := messages[code]
	if !ok {
		e.Message = fmt.Sprintf("Unknown error code: %q", string(code))
		return e
	}
	e.Message = tmpl.SetParams(params(info, value)).Error()
	return e
}

// Error returns the rendered message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Name returns the parameter or property name the error refers to, if any.
func (e *ValidationError) Name() string {
	if n, ok := e.Info["name"].(string); ok {
		return n
	}
	return ""
}

// params adds the value and the params derived from it to the info, so that a
// template never sees an empty param map. Keys already in info are kept.
func params(info map[string]any, value any) map[string]any {
	p := make(map[string]any, len(info)+5)
	p["value"] = value
	p["typeOf"] = typeOf(value)
	p["length"] = 0
	if s, ok := value.(string); ok {
		p["length"] = utf8.RuneCountInString(s)
	}
	if enum, ok := info["enum"].([]any); ok {
		list := make([]string, len(enum))
		for i := range enum {
			list[i] = fmt.Sprint(enum[i])
		}
		p["enumList"] = strings.Join(list, ", ")
	}
	if m, ok := info["multipleOf"].(float64); ok {
		if f, ok := toFloat(value); ok {
			p["remainder"] = math.Mod(f, m)
		}
	}
	for k, val := range info {
		p[k] = val
	}
	return p
}

// typeOf names the dynamic type of a decoded JSON value.
func typeOf(value any) string {
	switch value.(type) {
	case nil:
		return "undefined"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	default:
		return "object"
	}
}
