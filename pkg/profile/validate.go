package profile

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("codepoint", validateCodepoint); err != nil {
			panic(fmt.Errorf("register codepoint validator: %w", err))
		}
	})
	return validate
}

func validateCodepoint(fl validator.FieldLevel) bool {
	_, err := ParseCodepoint(fl.Field().String())
	return err == nil
}

// Validate checks the profile structure.
func Validate(p *Profile) error {
	if p == nil {
		return fmt.Errorf("%w: nil profile", ErrInvalidProfile)
	}
	if len(p.Presets) == 0 && len(p.Rules) == 0 {
		return fmt.Errorf("%w: no presets or rules", ErrInvalidProfile)
	}

	if err := getValidator().Struct(p); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "codepoint":
			message = fmt.Sprintf("%q is not a codepoint (use U+XXXX, 0xXXXX or a single character)", err.Value())
		}

		out = append(out, FieldError{
			Field:   err.Namespace(),
			Message: message,
		})
	}
	return out
}
