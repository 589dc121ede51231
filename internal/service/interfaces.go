package service

import (
	"context"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"

	"github.com/shopspring/decimal"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int64) (entities.User, error)
	// Save проверяет версию и возвращает entities.ErrUserVersionConflict,
	// если запись изменилась после чтения
	Save(ctx context.Context, u entities.User) (entities.User, error)
}

type OrderRepo interface {
	// Save сохраняет заказ и позиции атомарно, присваивает ID
	Save(ctx context.Context, o entities.Order) (entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type RewardsGateway interface {
	UpdateProfile(ctx context.Context, cart entities.Cart) error
	EvaluateSession(ctx context.Context, cart entities.Cart) (entities.RewardsOutcome, error)
}

type LoyaltyConfirmer interface {
	ConfirmLoyalty(ctx context.Context, userID int64, total decimal.Decimal) error
}

type Evaluator interface {
	Evaluate(ctx context.Context, cart entities.Cart) (entities.Evaluation, error)
}

type Cache interface {
	Get(id int64) (entities.Order, bool)
	Set(id int64, order entities.Order)
}
