package store

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern       = regexp.MustCompile(`^\d{10}$`)
	vehicleNumPattern  = regexp.MustCompile(`^[A-Z0-9]{10}$`)
	serviceDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("vehiclenum", func(fl validator.FieldLevel) bool {
		return vehicleNumPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("dateiso", func(fl validator.FieldLevel) bool {
		return serviceDatePattern.MatchString(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// fieldFailures runs the struct rules and returns the failed tag per field
// name, or nil when the input is valid.
func fieldFailures(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	failures := map[string]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		failures[fe.Field()] = fe.Tag()
	}
	return failures
}
