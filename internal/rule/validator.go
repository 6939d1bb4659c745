// Package rule wraps go-playground/validator and collects the field checks
// shared by every entity form: blank detection, numeric floors and
// date-relative rules.
package rule

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	inst *validator.Validate
	once sync.Once
)

func initValidator() {
	inst = validator.New()
	inst.SetTagName("rule")

	// Error keys must match the json field names the console sends
	inst.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	inst.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return RequiredNonBlank(fl.Field().String())
	})
	inst.RegisterValidation("optblank", func(fl validator.FieldLevel) bool {
		return OptionalNonBlank(fl.Field().String())
	})
}

func lazyInit() {
	once.Do(initValidator)
}

// Engine returns the global *validator.Validate, initializing it on first use.
func Engine() *validator.Validate {
	lazyInit()
	return inst
}

// ValidationErrors maps a field name (json name) to a readable message.
type ValidationErrors map[string]string

// ValidateStruct runs tag validation and returns the per-field error map,
// nil when everything passes.
func ValidateStruct(s any) ValidationErrors {
	lazyInit()

	err := inst.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{"_": err.Error()}
	}

	out := make(ValidationErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "optblank":
		return "must not be only whitespace"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
