package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

// Categories accepted on product forms.
var productCategories = map[string]bool{
	"Fresh Produce":        true,
	"Dairy":                true,
	"Packaged Goods":       true,
	"Household Essentials": true,
	"Beverages":            true,
	"Frozen Foods":         true,
}

func init() {
	// Register custom validation for product category enum (values contain
	// spaces, which oneof cannot express cleanly)
	validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return productCategories[fl.Field().String()]
	})

	// Register custom validation for non-negative decimal amounts
	validate.RegisterValidation("decimal_gte0", func(fl validator.FieldLevel) bool {
		if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
			return !d.IsNegative()
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
