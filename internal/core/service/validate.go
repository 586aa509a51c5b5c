package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/movieflix/movieflix-api/internal/core/domain"
)

// simpleEmailRE is the deliberately loose format check used by the forms:
// non-whitespace, @, non-whitespace, dot, non-whitespace. Unanchored, so
// any substring of that shape passes.
var simpleEmailRE = regexp.MustCompile(`\S+@\S+\.\S+`)

var validate = newValidator()

// newValidator builds the shared validator: field names come from json tags
// so error maps use form field names, plus two custom tags:
//
//	notblank     – non-empty after trimming whitespace
//	simple_email – matches simpleEmailRE
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return simpleEmailRE.MatchString(fl.Field().String())
	})

	return v
}

// checkForm validates a form struct and translates validator output into a
// domain.FieldErrors map: at most one message per field, first failing rule
// wins, message text matching the forms exactly.
func checkForm(form any) domain.FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.FieldErrors{"form": err.Error()}
	}

	fieldErrs := make(domain.FieldErrors, len(ve))
	for _, fe := range ve {
		if _, seen := fieldErrs[fe.Field()]; seen {
			continue
		}
		fieldErrs[fe.Field()] = fieldMessage(fe)
	}
	return fieldErrs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "username":
		return "Username is required"
	case "email":
		if fe.Tag() == "simple_email" {
			return "Email is invalid"
		}
		return "Email is required"
	case "password":
		if fe.Tag() == "min" {
			return "Password must be at least 6 characters"
		}
		return "Password is required"
	case "confirmPassword":
		return "Passwords doesn't match"
	}
	return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
}
