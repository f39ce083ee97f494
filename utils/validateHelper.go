package utils

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// decimal.Decimal is an opaque struct to the validator; expose its
	// value so tags like gte=0 work on money fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ValidateStruct runs tag-based validation on request payloads that gin's
// binding cannot reach (nested decimals, optional sub-structs).
func ValidateStruct(s any) error {
	return validate.Struct(s)
}
