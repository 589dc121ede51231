package entities

import "github.com/shopspring/decimal"

type User struct {
	ID            int64
	Email         string
	Name          string
	TotalOrders   int
	TotalSpent    decimal.Decimal
	LoyaltyPoints int

	// Version увеличивается хранилищем при каждом сохранении
	Version int64
}

// ApplyOrder учитывает размещённый заказ в агрегатах пользователя.
func (u *User) ApplyOrder(total decimal.Decimal, rewards RewardsOutcome) {
	u.TotalOrders++
	u.TotalSpent = u.TotalSpent.Add(total)
	if rewards.LoyaltyUsed {
		u.LoyaltyPoints = rewards.LoyaltyPointsRemaining
	}
}
