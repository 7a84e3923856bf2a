package validator

import (
	"reflect"
	"strings"

	"mos3ef-api/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their json name, which is also the query parameter name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Money fields are range-checked as numbers.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	return &CustomValidator{
		validator: v,
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Check validates i and collects every failing field into one
// apperror.KindValidation error.
func (cv *CustomValidator) Check(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	fields := cv.FormatValidationErrors(err)
	if len(fields) == 0 {
		return apperror.BadRequest("invalid request")
	}
	return apperror.Validation(fields)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "required_with":
				errors[field] = field + " is required when " + toJSONNames(e.Param()) + " is set"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "url":
				errors[field] = field + " must be a valid URL"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "nefield":
				errors[field] = field + " must differ from " + toJSONNames(e.Param())
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// toJSONNames turns Go field names in a tag parameter into snake_case names.
func toJSONNames(param string) string {
	names := strings.Fields(param)
	for i, n := range names {
		names[i] = snakeCase(n)
	}
	return strings.Join(names, " or ")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
