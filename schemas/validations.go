// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemas

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const memberNameValidatorTag string = "member_name"

var memberNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

func memberNameValidator(fl validator.FieldLevel) bool {
	input, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return memberNameRegex.MatchString(input)
}

const resourceTypeValidatorTag string = "resource_type"

var resourceTypeRegex = regexp.MustCompile(`^[a-z][a-z0-9]*([_-][a-z0-9]+)*$`)

func resourceTypeValidator(fl validator.FieldLevel) bool {
	input, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return resourceTypeRegex.MatchString(input)
}

// RegisterValidations adds the member_name and resource_type tags to a
// validator instance, so services with a central validator can share them.
func RegisterValidations(validate *validator.Validate) error {
	if err := validate.RegisterValidation(memberNameValidatorTag, memberNameValidator); err != nil {
		return err
	}
	return validate.RegisterValidation(resourceTypeValidatorTag, resourceTypeValidator)
}

func newDefinitionValidator() *validator.Validate {
	validate := validator.New()
	if err := RegisterValidations(validate); err != nil {
		panic(err)
	}
	return validate
}
