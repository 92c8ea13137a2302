package dto

import (
	"reflect"

	"github.com/SscSPs/cheque_management_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators teaches v about decimal amounts and the status enums used in binding tags.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("cheque_status", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseChequeStatus(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("receivable_status", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseReceivableStatus(fl.Field().String())
		return err == nil
	})
}
