// Package validator owns the process-wide go-playground validator instance
// and the custom rules shared by configuration and payload validation.
//
// Custom rules:
//
//   - cors_origin: a CORS origin accepted by validation.ValidateCORSOrigin
//   - mention: an observability.Mention value or its wire code
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/observability-api/internal/pkg/errors"
	"github.com/darkkaiser/observability-api/internal/service/api/model/observability"
	"github.com/darkkaiser/observability-api/pkg/validation"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Get returns the shared validator. Field names in errors are json names.
func Get() *validator.Validate {
	once.Do(func() {
		instance = newValidator()
	})
	return instance
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", validateCORSOrigin)
	mustRegister(v, "mention", validateMention)

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation rule %q: %v", tag, err))
	}
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateMention(fl validator.FieldLevel) bool {
	field := fl.Field()

	if m, ok := field.Interface().(observability.Mention); ok {
		return m.IsValid()
	}
	if field.Kind() == reflect.String {
		_, err := observability.ParseMention(field.String())
		return err == nil
	}
	return false
}

// Struct validates s and converts the first failure into an InvalidInput
// AppError naming the field path and the failed rule.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if apperrors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return apperrors.New(apperrors.InvalidInput, FormatFieldError(validationErrors[0], rootName(s)))
	}

	return apperrors.Wrap(err, apperrors.InvalidInput, "validation failed")
}

// FormatFieldError renders one failure as "<path> failed '<rule>' (value=<v>)".
// root, the name of the validated struct type, is stripped from the path.
func FormatFieldError(fe validator.FieldError, root string) string {
	path := fe.Namespace()
	if root != "" {
		path = strings.TrimPrefix(path, root+".")
	}

	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return fmt.Sprintf("%s failed '%s' (value=%v)", path, rule, fe.Value())
}

// rootName mirrors the name validator uses for the top-level struct, which
// for generic instances contains the full import path of the type argument.
func rootName(s any) string {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
