package validations

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/multimeric/flapison/schemas"
)

func NewValidator(logger *slog.Logger) *validator.Validate {
	validate := validator.New()
	if err := validate.RegisterValidation(slugValidatorTag, slugValidator); err != nil {
		logger.Error("Failed to register slug validator", "error", err)
		panic(err)
	}
	if err := schemas.RegisterValidations(validate); err != nil {
		logger.Error("Failed to register schema validations", "error", err)
		panic(err)
	}
	return validate
}
