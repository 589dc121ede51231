package repo

import (
	"time"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

type User struct {
	ID            int64           `db:"id"`
	Email         string          `db:"email"`
	Name          string          `db:"name"`
	TotalOrders   int             `db:"total_orders"`
	TotalSpent    decimal.Decimal `db:"total_spent"`
	LoyaltyPoints int             `db:"loyalty_points"`
	Version       int64           `db:"version"`
}

type Order struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	Total     decimal.Decimal `db:"total"`
	Discount  decimal.Decimal `db:"discount"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}

type Item struct {
	OrderID   int64           `db:"order_id"`
	SKU       string          `db:"sku"`
	Name      string          `db:"name"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

var (
	userColumns  = []string{"id", "email", "name", "total_orders", "total_spent", "loyalty_points", "version"}
	orderColumns = []string{"id", "user_id", "total", "discount", "status", "created_at"}
	itemColumns  = []string{"order_id", "sku", "name", "quantity", "unit_price"}
)

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		TotalOrders:   u.TotalOrders,
		TotalSpent:    u.TotalSpent,
		LoyaltyPoints: u.LoyaltyPoints,
		Version:       u.Version,
	}
}

func ItemToEntity(i Item) entities.CartItem {
	return entities.CartItem{
		SKU:       i.SKU,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		Discount:  o.Discount,
		Status:    entities.OrderStatus(o.Status),
		CreatedAt: o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.CartItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}
