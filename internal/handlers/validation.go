package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags on gin's validator:
//
//	tracked_currency  the field is one of the tracked currency codes
//	date_order=Field  the field, a YYYY-MM-DD date, is not before the named sibling date
//
// Field names in validation errors follow the form or json tag of the field.
func RegisterValidators(tracked domain.TrackedCurrencies) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	v.RegisterTagNameFunc(requestFieldName)

	if err := v.RegisterValidation("tracked_currency", trackedCurrencyValidator(tracked)); err != nil {
		return fmt.Errorf("failed to register tracked_currency: %w", err)
	}
	if err := v.RegisterValidation("date_order", dateOrderValidator); err != nil {
		return fmt.Errorf("failed to register date_order: %w", err)
	}
	return nil
}

func requestFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

func trackedCurrencyValidator(tracked domain.TrackedCurrencies) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return tracked.Contains(fl.Field().String())
	}
}

// dateOrderValidator leaves malformed dates to the datetime tag.
func dateOrderValidator(fl validator.FieldLevel) bool {
	other := fl.Parent().FieldByName(fl.Param())
	if !other.IsValid() || other.Kind() != reflect.String {
		return false
	}
	to, err := domain.ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	from, err := domain.ParseDate(other.String())
	if err != nil {
		return true
	}
	return !to.Before(from)
}

// validationMessage renders one field error for API clients.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "tracked_currency":
		return fmt.Sprintf("%v is not a tracked currency.", fe.Value())
	case "datetime":
		return "Date must use the YYYY-MM-DD format."
	case "date_order":
		return fmt.Sprintf("Must not be before %s.", fe.Param())
	case "numeric":
		return "Must be a decimal number."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", fe.Param())
	case "min", "max", "len":
		return fmt.Sprintf("Failed the %s=%s constraint.", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
}
