package handler

import (
	"time"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

// CartItem позиция корзины
type CartItem struct {
	SKU      string   `json:"sku" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Quantity int      `json:"quantity" validate:"required,gte=1"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
}

// CartRequest корзина пользователя. Используется и для размещения заказа,
// и для предварительной оценки наград.
type CartRequest struct {
	UserID int64      `json:"userId" validate:"required,gt=0"`
	Items  []CartItem `json:"items" validate:"required,min=1,dive"`
	Total  *float64   `json:"total" validate:"required,gte=0"`
}

// UpdateStatsRequest новые значения статистики пользователя
type UpdateStatsRequest struct {
	TotalOrders *int     `json:"totalOrders" validate:"required,gte=0"`
	TotalSpent  *float64 `json:"totalSpent" validate:"required,gte=0"`
}

// Order размещённый заказ
type Order struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Discount  float64    `json:"discount"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Discount скидка, применённая движком наград
type Discount struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Rewards результат оценки корзины
type Rewards struct {
	TotalDiscount          float64    `json:"totalDiscount"`
	Discounts              []Discount `json:"discounts"`
	LoyaltyUsed            bool       `json:"loyaltyUsed"`
	LoyaltyPointsUsed      int        `json:"loyaltyPointsUsed"`
	LoyaltyPointsRemaining int        `json:"loyaltyPointsRemaining"`
}

// Warning шаг, не выполненный после сохранения заказа
type Warning struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// PlaceOrderResponse ответ на размещение заказа
type PlaceOrderResponse struct {
	Order    Order     `json:"order"`
	Rewards  Rewards   `json:"rewards"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// User пользователь и его накопленная статистика
type User struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	TotalOrders   int     `json:"totalOrders"`
	TotalSpent    float64 `json:"totalSpent"`
	LoyaltyPoints int     `json:"loyaltyPoints"`
}

func CartItemsToEntity(items []CartItem) []entities.CartItem {
	res := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		res = append(res, entities.CartItem{
			SKU:       it.SKU,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: decimalFromPtr(it.Price),
		})
	}
	return res
}

func (r CartRequest) ToOrderRequest() entities.OrderRequest {
	return entities.OrderRequest{
		UserID: r.UserID,
		Items:  CartItemsToEntity(r.Items),
		Total:  decimalFromPtr(r.Total),
	}
}

func (r CartRequest) ToCart() entities.Cart {
	return r.ToOrderRequest().Cart()
}

func CartItemsFromEntity(items []entities.CartItem) []CartItem {
	res := make([]CartItem, 0, len(items))
	for _, it := range items {
		price := it.UnitPrice.InexactFloat64()
		res = append(res, CartItem{
			SKU:      it.SKU,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    &price,
		})
	}
	return res
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     CartItemsFromEntity(o.Items),
		Total:     o.Total.InexactFloat64(),
		Discount:  o.Discount.InexactFloat64(),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func RewardsEntityToJSON(r entities.RewardsOutcome) Rewards {
	discounts := make([]Discount, 0, len(r.Discounts))
	for _, d := range r.Discounts {
		discounts = append(discounts, Discount{
			Code:        d.Code,
			Description: d.Description,
			Amount:      d.Amount.InexactFloat64(),
		})
	}
	return Rewards{
		TotalDiscount:          r.TotalDiscount.InexactFloat64(),
		Discounts:              discounts,
		LoyaltyUsed:            r.LoyaltyUsed,
		LoyaltyPointsUsed:      r.LoyaltyPointsUsed,
		LoyaltyPointsRemaining: r.LoyaltyPointsRemaining,
	}
}

// Клиенту уходит только описание шага, подробности ошибки остаются в логах
// и событиях сверки.
var warningMessages = map[entities.Stage]string{
	entities.StageProfileSync:    "rewards profile sync is pending",
	entities.StageStatsUpdate:    "user statistics update is pending",
	entities.StageLoyaltyConfirm: "loyalty points confirmation is pending",
}

func warningMessage(stage entities.Stage) string {
	if msg, ok := warningMessages[stage]; ok {
		return msg
	}
	return "post-order step failed"
}

func WarningsToJSON(ws []entities.Warning) []Warning {
	if len(ws) == 0 {
		return nil
	}
	res := make([]Warning, 0, len(ws))
	for _, w := range ws {
		res = append(res, Warning{Stage: string(w.Stage), Message: warningMessage(w.Stage)})
	}
	return res
}

func PlacementToJSON(p entities.Placement) PlaceOrderResponse {
	return PlaceOrderResponse{
		Order:    OrderEntityToJSON(p.Order),
		Rewards:  RewardsEntityToJSON(p.Rewards),
		Warnings: WarningsToJSON(p.Warnings),
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		TotalOrders:   u.TotalOrders,
		TotalSpent:    u.TotalSpent.InexactFloat64(),
		LoyaltyPoints: u.LoyaltyPoints,
	}
}

func decimalFromPtr(f *float64) decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*f)
}
