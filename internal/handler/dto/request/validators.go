package request

import (
	"storefront-orders/internal/domain/order"
	"storefront-orders/internal/domain/promotion"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom tags used by request DTOs on gin's
// validator engine. Registering twice replaces the earlier functions.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("promocode", validatePromoCode); err != nil {
		return err
	}
	return v.RegisterValidation("orderstatus", validateOrderStatus)
}

func validatePromoCode(fl validator.FieldLevel) bool {
	_, err := promotion.NewCode(fl.Field().String())
	return err == nil
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	_, err := order.NewStatus(fl.Field().String())
	return err == nil
}
