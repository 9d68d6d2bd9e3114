package utils

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance with the scheduling-domain
// custom tags registered.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("clock_time", validateClockTime)
	_ = v.RegisterValidation("iso_date", validateISODate)
	return v
}

func validateClockTime(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := ParseClockTime(s)
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := ParseISODate(s)
	return err == nil
}
