package util

import (
	"github.com/go-playground/validator/v10"

	"github.com/mkamau2/jiseti/util/values"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("reportstatus", validateReportStatus)
	validate.RegisterValidation("userrole", validateUserRole)
}

func validateReportStatus(fl validator.FieldLevel) bool {
	return values.IsValidReportStatus(fl.Field().String())
}

func validateUserRole(fl validator.FieldLevel) bool {
	return values.IsValidRole(fl.Field().String())
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
