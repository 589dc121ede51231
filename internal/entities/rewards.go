package entities

import "github.com/shopspring/decimal"

type Cart struct {
	UserID int64
	Items  []CartItem
	Total  decimal.Decimal

	// Необязательные поля профиля для синхронизации с движком
	Email string
	Name  string
}

type Discount struct {
	Code        string
	Description string
	Amount      decimal.Decimal
}

type RewardsOutcome struct {
	TotalDiscount          decimal.Decimal
	Discounts              []Discount
	LoyaltyUsed            bool
	LoyaltyPointsUsed      int
	LoyaltyPointsRemaining int
}

// Evaluation результат оценки корзины вместе с некритичными предупреждениями.
type Evaluation struct {
	Outcome  RewardsOutcome
	Warnings []Warning
}
