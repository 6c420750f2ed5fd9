package exceptions

import "fmt"

const (
	CodeBadRequest           string = "BAD_REQUEST"
	CodeInvalidField         string = "INVALID_FIELD"
	CodeInvalidInclude       string = "INVALID_INCLUDE"
	CodeInvalidSort          string = "INVALID_SORT"
	CodeInvalidType          string = "INVALID_TYPE"
	CodeInvalidSchema        string = "INVALID_SCHEMA"
	CodeUnknownField         string = "UNKNOWN_FIELD"
	CodeUnknownType          string = "UNKNOWN_TYPE"
	CodeUnknownSchema        string = "UNKNOWN_SCHEMA"
	CodeNotFound             string = "NOT_FOUND"
	CodeRelationNotFound     string = "RELATION_NOT_FOUND"
	CodeSerialization        string = "SERIALIZATION"
	CodeValidation           string = "VALIDATION"
	CodeUnsupportedMediaType string = "UNSUPPORTED_MEDIA_TYPE"
	CodeNotAcceptable        string = "NOT_ACCEPTABLE"
	CodeServerError          string = "SERVER_ERROR"
)

const (
	TitleBadRequest           string = "Bad request"
	TitleInvalidField         string = "Invalid fields querystring parameter"
	TitleInvalidInclude       string = "Invalid include querystring parameter"
	TitleInvalidSort          string = "Invalid sort querystring parameter"
	TitleInvalidType          string = "Invalid type"
	TitleInvalidSchema        string = "Invalid schema definition"
	TitleUnknownField         string = "Unknown field"
	TitleUnknownType          string = "Unknown resource type"
	TitleUnknownSchema        string = "Unknown schema"
	TitleNotFound             string = "Object not found"
	TitleRelationNotFound     string = "Relation not found"
	TitleSerialization        string = "Serialization error"
	TitleValidation           string = "Invalid request"
	TitleUnsupportedMediaType string = "Invalid Content-Type header"
	TitleNotAcceptable        string = "Invalid Accept header"
	TitleServerError          string = "Unknown error"
)

const MessageUnknown string = "Something went wrong"

// Source points at the offending part of the request, either a query
// parameter or a JSON pointer into the document.
type Source struct {
	Parameter string `json:"parameter,omitempty"`
	Pointer   string `json:"pointer,omitempty"`
}

// Error is a single JSON API error object. Status is kept as a string since
// that is how the wire format carries it.
type Error struct {
	Code   string  `json:"code"`
	Status string  `json:"status"`
	Title  string  `json:"title"`
	Detail string  `json:"detail,omitempty"`
	Source *Source `json:"source,omitempty"`
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Title
	}
	return e.Detail
}

func NewError(code, status, title, detail string, source *Source) *Error {
	return &Error{
		Code:   code,
		Status: status,
		Title:  title,
		Detail: detail,
		Source: source,
	}
}

func NewBadRequest(detail string) *Error {
	return NewError(CodeBadRequest, "400", TitleBadRequest, detail, nil)
}

func NewInvalidField(detail string) *Error {
	return NewError(CodeInvalidField, "400", TitleInvalidField, detail, &Source{Parameter: "fields"})
}

func NewInvalidInclude(detail string) *Error {
	return NewError(CodeInvalidInclude, "400", TitleInvalidInclude, detail, &Source{Parameter: "include"})
}

func NewInvalidSort(detail string) *Error {
	return NewError(CodeInvalidSort, "400", TitleInvalidSort, detail, &Source{Parameter: "sort"})
}

func NewInvalidType(detail string) *Error {
	return NewError(CodeInvalidType, "409", TitleInvalidType, detail, nil)
}

func NewInvalidSchema(detail string) *Error {
	return NewError(CodeInvalidSchema, "500", TitleInvalidSchema, detail, nil)
}

func NewUnknownField(schemaName, field string) *Error {
	return NewError(
		CodeUnknownField,
		"500",
		TitleUnknownField,
		fmt.Sprintf("%s has no attribute %s", schemaName, field),
		nil,
	)
}

func NewUnknownSchemaField(modelField string) *Error {
	return NewError(
		CodeUnknownField,
		"500",
		TitleUnknownField,
		fmt.Sprintf("Couldn't find schema field from %s", modelField),
		nil,
	)
}

func NewUnknownType(resourceType string) *Error {
	return NewError(
		CodeUnknownType,
		"500",
		TitleUnknownType,
		fmt.Sprintf("Couldn't find schema for type: %s", resourceType),
		nil,
	)
}

func NewUnknownSchema(name string) *Error {
	return NewError(
		CodeUnknownSchema,
		"500",
		TitleUnknownSchema,
		fmt.Sprintf("Schema %s is not registered", name),
		nil,
	)
}

func NewObjectNotFound(detail string) *Error {
	return NewError(CodeNotFound, "404", TitleNotFound, detail, nil)
}

func NewRelationNotFound(detail string) *Error {
	return NewError(CodeRelationNotFound, "500", TitleRelationNotFound, detail, nil)
}

func NewSerializationError(detail string) *Error {
	return NewError(CodeSerialization, "500", TitleSerialization, detail, nil)
}

func NewUnsupportedMediaType(detail string) *Error {
	return NewError(CodeUnsupportedMediaType, "415", TitleUnsupportedMediaType, detail, nil)
}

func NewNotAcceptable(detail string) *Error {
	return NewError(CodeNotAcceptable, "406", TitleNotAcceptable, detail, nil)
}

func NewServerError() *Error {
	return NewError(CodeServerError, "500", TitleServerError, MessageUnknown, nil)
}
