package brandgen

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("rrggbb", func(fl validator.FieldLevel) bool {
			return IsHexColor(fl.Field().String())
		})

		// Report fields by their file names, not Go names
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// ValidationError captures one invalid BrandConfig field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FieldErrors returns one ValidationError per invalid field of cfg, or nil.
func FieldErrors(cfg BrandConfig) []*ValidationError {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []*ValidationError{{Field: "brandConfig", Message: err.Error(), Err: err}}
	}

	out := make([]*ValidationError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, &ValidationError{
			Field:   fe.Field(),
			Message: describeFieldError(fe),
			Err:     fe,
		})
	}
	return out
}

// Validate checks that cfg has every required field, enum values from the
// documented sets and #RRGGBB colors.
func Validate(cfg BrandConfig) error {
	fieldErrs := FieldErrors(cfg)
	if len(fieldErrs) == 0 {
		return nil
	}
	errs := make([]error, len(fieldErrs))
	for i, fe := range fieldErrs {
		errs[i] = fe
	}
	return errors.Join(errs...)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "rrggbb":
		return fmt.Sprintf("must be a #RRGGBB color, got %q", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
