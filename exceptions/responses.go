package exceptions

import (
	"github.com/go-playground/validator/v10"

	"github.com/multimeric/flapison/internal/utils"
)

// ErrorResponse is the JSON API error document.
type ErrorResponse struct {
	Errors  []*Error       `json:"errors"`
	JSONAPI map[string]any `json:"jsonapi,omitempty"`
}

func NewErrorResponse(errs ...*Error) ErrorResponse {
	return ErrorResponse{
		Errors:  errs,
		JSONAPI: map[string]any{"version": "1.0"},
	}
}

func NewRequestErrorStatus(code string) int {
	switch code {
	case CodeBadRequest, CodeInvalidField, CodeInvalidInclude, CodeInvalidSort, CodeValidation:
		return 400
	case CodeNotFound:
		return 404
	case CodeInvalidType:
		return 409
	case CodeUnsupportedMediaType:
		return 415
	case CodeNotAcceptable:
		return 406
	case CodeUnknownField, CodeUnknownType, CodeUnknownSchema, CodeRelationNotFound,
		CodeSerialization, CodeInvalidSchema, CodeServerError:
		return 500
	default:
		return 500
	}
}

const (
	fieldErrTagRequired string = "required"
	fieldErrTagOneOf    string = "oneof"

	strFieldErrTagMin string = "min"
	strFieldErrTagMax string = "max"

	intFieldErrTagGte string = "gte"
	intFieldErrTagLte string = "lte"

	fieldErrMessageInvalid  string = "must be valid"
	fieldErrMessageRequired string = "must be provided"
	fieldErrMessageOneOf    string = "must be one of the allowed values"

	strFieldErrMessageMin string = "must be longer"
	strFieldErrMessageMax string = "must be shorter"

	intFieldErrMessageLte string = "must be less"
	intFieldErrMessageGte string = "must be greater"
)

func selectStrErrMessage(tag string) string {
	switch tag {
	case fieldErrTagRequired:
		return fieldErrMessageRequired
	case strFieldErrTagMin:
		return strFieldErrMessageMin
	case strFieldErrTagMax:
		return strFieldErrMessageMax
	case fieldErrTagOneOf:
		return fieldErrMessageOneOf
	default:
		return fieldErrMessageInvalid
	}
}

func selectIntErrMessage(tag string) string {
	switch tag {
	case fieldErrTagRequired:
		return fieldErrMessageRequired
	case intFieldErrTagLte:
		return intFieldErrMessageLte
	case intFieldErrTagGte:
		return intFieldErrMessageGte
	case fieldErrTagOneOf:
		return fieldErrMessageOneOf
	default:
		return fieldErrMessageInvalid
	}
}

func buildFieldErrorMessage(tag string, val interface{}) string {
	switch val.(type) {
	case string:
		return selectStrErrMessage(tag)
	case int, int16, int32, int64:
		return selectIntErrMessage(tag)
	default:
		return fieldErrMessageInvalid
	}
}

// ValidationErrorsToErrors converts validator failures into JSON API error
// objects pointing at the offending query parameter.
func ValidationErrorsToErrors(errs *validator.ValidationErrors) []*Error {
	result := make([]*Error, len(*errs))

	for i, field := range *errs {
		param := utils.Underscore(field.Field())
		result[i] = &Error{
			Code:   CodeValidation,
			Status: "400",
			Title:  TitleValidation,
			Detail: param + " " + buildFieldErrorMessage(field.Tag(), field.Value()),
			Source: &Source{Parameter: param},
		}
	}

	return result
}
