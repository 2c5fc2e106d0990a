package handlers

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/workshop_billing_app/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// RegisterValidators teaches gin's validator to compare money types, so numeric
// tags such as gte=0 work on decimal.Decimal and domain.Amount fields.
// An unparsable Amount validates as zero.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, domain.Amount{})
	})
}

func decimalValue(field reflect.Value) interface{} {
	switch val := field.Interface().(type) {
	case decimal.Decimal:
		f, _ := val.Float64()
		return f
	case domain.Amount:
		if !val.Valid {
			return float64(0)
		}
		f, _ := val.Value.Float64()
		return f
	}
	return nil
}
