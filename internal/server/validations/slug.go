package validations

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const slugValidatorTag string = "slug"

var slugRegex = regexp.MustCompile(`^[a-z\d]+(?:(-)[a-z\d]+)*$`)

func slugValidator(fl validator.FieldLevel) bool {
	input, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return slugRegex.MatchString(input)
}
