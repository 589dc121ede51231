package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale число знаков после запятой у денежных сумм в хранилище
const MoneyScale = 2

// HasMoneyScale сообщает, что сумма записывается в хранилище без округления.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}

// Validate проверяет корзину до любого сетевого взаимодействия.
func (c Cart) Validate() error {
	if c.UserID <= 0 {
		return ErrInvalidUserID
	}
	if len(c.Items) == 0 {
		return ErrEmptyItems
	}
	for i, it := range c.Items {
		switch {
		case it.SKU == "":
			return &InvalidItemError{Index: i, Reason: "sku required"}
		case it.Name == "":
			return &InvalidItemError{Index: i, Reason: "name required"}
		case it.Quantity < 1:
			return &InvalidItemError{Index: i, Reason: fmt.Sprintf("quantity %d must be at least 1", it.Quantity)}
		case it.UnitPrice.IsNegative():
			return &InvalidItemError{Index: i, Reason: "unit price must be non-negative"}
		case !HasMoneyScale(it.UnitPrice):
			return &InvalidItemError{Index: i, Reason: fmt.Sprintf("unit price %s has more than %d decimal places", it.UnitPrice, MoneyScale)}
		}
	}
	if c.Total.IsNegative() {
		return ErrNegativeTotal
	}
	if !HasMoneyScale(c.Total) {
		return ErrTotalPrecision
	}
	return nil
}
