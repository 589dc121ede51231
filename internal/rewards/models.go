package rewards

import (
	"encoding/json"
	"strconv"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

type profileRequest struct {
	IntegrationID string `json:"integrationId"`
	Email         string `json:"email,omitempty"`
	Name          string `json:"name,omitempty"`
}

type sessionItem struct {
	SKU      string      `json:"sku"`
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
}

type sessionRequest struct {
	IntegrationID string        `json:"integrationId"`
	CartItems     []sessionItem `json:"cartItems"`
	CartTotal     json.Number   `json:"cartTotal"`
}

type discount struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type sessionResponse struct {
	TotalDiscount          decimal.Decimal `json:"totalDiscount"`
	Discounts              []discount      `json:"discounts"`
	LoyaltyUsed            bool            `json:"loyaltyUsed"`
	LoyaltyPointsUsed      int             `json:"loyaltyPointsUsed"`
	LoyaltyPointsRemaining int             `json:"loyaltyPointsRemaining"`
}

type loyaltyConfirmRequest struct {
	TotalAmount json.Number `json:"totalAmount"`
}

func integrationID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// number передаёт сумму числом JSON без потери точности.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func profileFromCart(c entities.Cart) profileRequest {
	return profileRequest{
		IntegrationID: integrationID(c.UserID),
		Email:         c.Email,
		Name:          c.Name,
	}
}

func sessionFromCart(c entities.Cart) sessionRequest {
	items := make([]sessionItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, sessionItem{
			SKU:      it.SKU,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    number(it.UnitPrice),
		})
	}
	return sessionRequest{
		IntegrationID: integrationID(c.UserID),
		CartItems:     items,
		CartTotal:     number(c.Total),
	}
}

func (r sessionResponse) toEntity() entities.RewardsOutcome {
	outcome := entities.RewardsOutcome{
		TotalDiscount:          r.TotalDiscount,
		LoyaltyUsed:            r.LoyaltyUsed,
		LoyaltyPointsUsed:      r.LoyaltyPointsUsed,
		LoyaltyPointsRemaining: r.LoyaltyPointsRemaining,
		Discounts:              make([]entities.Discount, 0, len(r.Discounts)),
	}
	for _, d := range r.Discounts {
		outcome.Discounts = append(outcome.Discounts, entities.Discount{
			Code:        d.Code,
			Description: d.Description,
			Amount:      d.Amount,
		})
	}
	return outcome
}
