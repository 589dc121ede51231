package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"
	"github.com/SergeyBogomolovv/rewards-order-service/pkg/utils"

	"github.com/shopspring/decimal"
)

// Повторы при конфликте версий пользователя
var userUpdateRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 10 * time.Millisecond,
	MaxDelay:     100 * time.Millisecond,
	Multiplier:   2,
}

type userService struct {
	logger *slog.Logger
	users  UserRepo
}

func NewUserService(logger *slog.Logger, users UserRepo) *userService {
	return &userService{
		logger: logger.With(slog.String("service", "user")),
		users:  users,
	}
}

func (s *userService) GetUser(ctx context.Context, id int64) (entities.User, error) {
	if id <= 0 {
		return entities.User{}, entities.ErrInvalidUserID
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return entities.User{}, storeError(err)
	}
	return user, nil
}

// UpdateStats перезаписывает счётчики заказов и сумму покупок пользователя.
func (s *userService) UpdateStats(ctx context.Context, id int64, totalOrders int, totalSpent decimal.Decimal) error {
	if id <= 0 {
		return entities.ErrInvalidUserID
	}
	if totalOrders < 0 || totalSpent.IsNegative() || !entities.HasMoneyScale(totalSpent) {
		return entities.ErrInvalidStats
	}

	_, err := updateUser(ctx, s.users, id, func(u *entities.User) {
		u.TotalOrders = totalOrders
		u.TotalSpent = totalSpent
	})
	if err != nil {
		return storeError(err)
	}

	s.logger.Info("user stats overwritten",
		slog.Int64("user_id", id),
		slog.Int("total_orders", totalOrders),
		slog.String("total_spent", totalSpent.String()),
	)
	return nil
}

// updateUser каждый раз перечитывает пользователя, применяет mutate и
// сохраняет с проверкой версии. Конфликт версий приводит к повтору.
func updateUser(ctx context.Context, users UserRepo, id int64, mutate func(u *entities.User)) (entities.User, error) {
	var saved entities.User
	err := utils.Retry(ctx, userUpdateRetry, func(ctx context.Context) error {
		user, err := users.FindByID(ctx, id)
		if err != nil {
			return err
		}
		mutate(&user)
		saved, err = users.Save(ctx, user)
		return err
	}, entities.ErrNotFound)
	return saved, err
}

// storeError относит ошибку хранилища к классу ErrPersistence, если она
// ещё не классифицирована.
func storeError(err error) error {
	if entities.Classified(err) {
		return err
	}
	return fmt.Errorf("%w: %w", entities.ErrPersistence, err)
}
