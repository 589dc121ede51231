package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPlaced OrderStatus = "PLACED"
	// CANCELLED зарезервирован под будущий жизненный цикл заказа
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type CartItem struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type OrderRequest struct {
	UserID int64
	Items  []CartItem
	// Total заявлен клиентом и используется только как вход для движка наград
	Total decimal.Decimal
}

// Cart возвращает представление запроса для оценки наград.
func (r OrderRequest) Cart() Cart {
	return Cart{
		UserID: r.UserID,
		Items:  r.Items,
		Total:  r.Total,
	}
}

type Order struct {
	ID        int64
	UserID    int64
	Items     []CartItem
	Total     decimal.Decimal
	Discount  decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}
