package service

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validate checks req against its binding tags. A missing field reports required;
// other failed tags are looked up in byTag, falling back to required.
func validate(req any, required string, byTag map[string]string) error {
	err := binding.Validator.ValidateStruct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return invalid(required)
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return invalid(required)
		}
	}
	if msg, ok := byTag[fieldErrs[0].Tag()]; ok {
		return invalid(msg)
	}
	return invalid(required)
}
