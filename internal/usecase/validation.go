package usecase

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type inputValidator struct {
	errs ValidationErrors
}

func (iv *inputValidator) add(field, constraint, message string) {
	iv.errs = append(iv.errs, ValidationError{Field: field, Constraint: constraint, Message: message})
}

func (iv *inputValidator) structFields(obj any) {
	err := validate.Struct(obj)
	if err == nil {
		return
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		iv.add("", "invalid", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		iv.add(fe.Field(), fe.Tag(), getErrorMsg(fe))
	}
}

// amount checks a non-negative money value.
func (iv *inputValidator) amount(field string, v decimal.Decimal, intDigits int32) {
	if v.IsNegative() {
		iv.add(field, "gte", "Value must be greater than or equal to 0")
		return
	}
	iv.decimal(field, v, intDigits)
}

// decimal checks v against a numeric(intDigits+2, 2) column.
func (iv *inputValidator) decimal(field string, v decimal.Decimal, intDigits int32) {
	switch {
	case !v.Equal(v.Truncate(2)):
		iv.add(field, "precision", "At most 2 fractional digits are allowed")
	case v.Abs().GreaterThanOrEqual(decimal.New(1, intDigits)):
		iv.add(field, "max", fmt.Sprintf("At most %d integer digits are allowed", intDigits))
	}
}

func (iv *inputValidator) err() error {
	if len(iv.errs) == 0 {
		return nil
	}
	return iv.errs
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "Value is too long"
	case "gt":
		return "Value must be greater than " + err.Param()
	case "gte":
		return "Value must be greater than or equal to " + err.Param()
	case "oneof":
		return "Value must be one of: " + err.Param()
	default:
		return "Invalid value"
	}
}
