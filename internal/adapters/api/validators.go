package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/pkg/validation"
)

// RegisterValidators adds the "city" tag to gin's binding validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("city", validateCity)
}

func validateCity(fl validator.FieldLevel) bool {
	return validation.IsValidCityQuery(fl.Field().String())
}
