package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("mode", validateMode)
	_ = v.RegisterValidation("direction", validateDirection)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "mode":
			errs[field] = "Must be one of plant, water, harvest"
		case "direction":
			errs[field] = "Must be one of left, right, up, down"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateMode(fl validator.FieldLevel) bool {
	return domain.Mode(strings.ToLower(fl.Field().String())).Valid()
}

func validateDirection(fl validator.FieldLevel) bool {
	switch domain.Direction(strings.ToLower(fl.Field().String())) {
	case domain.DirectionLeft, domain.DirectionRight, domain.DirectionUp, domain.DirectionDown:
		return true
	}
	return false
}
