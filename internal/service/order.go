package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"
	"github.com/SergeyBogomolovv/rewards-order-service/pkg/utils"
)

// Срок каждого шага после сохранения заказа
const postOrderTimeout = 10 * time.Second

var readRetry = utils.RetryConfig{
	MaxAttempts:  5,
	InitialDelay: 100 * time.Millisecond,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	users     UserRepo
	orders    OrderRepo
	evaluator Evaluator
	loyalty   LoyaltyConfirmer
	sink      WarningSink
	cache     Cache
	now       func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	users UserRepo,
	orders OrderRepo,
	evaluator Evaluator,
	loyalty LoyaltyConfirmer,
	sink WarningSink,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		users:     users,
		orders:    orders,
		evaluator: evaluator,
		loyalty:   loyalty,
		sink:      sink,
		cache:     cache,
		now:       time.Now,
	}
}

// PlaceOrder проводит заказ через оценку наград, сохранение и обновление
// статистики пользователя. После сохранения заказа вызов всегда успешен,
// сбои последующих шагов возвращаются в Placement.Warnings.
func (s *orderService) PlaceOrder(ctx context.Context, req entities.OrderRequest) (entities.Placement, error) {
	start := time.Now()
	defer func() {
		placementDuration.Observe(time.Since(start).Seconds())
	}()

	cart := req.Cart()
	if err := cart.Validate(); err != nil {
		return s.fail(ctx, entities.StageValidation, req.UserID, err)
	}

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return s.fail(ctx, entities.StageUserLookup, req.UserID, storeError(err))
	}
	s.trace(ctx, entities.StateUserResolved, req.UserID)

	cart.Email = user.Email
	cart.Name = user.Name

	eval, err := s.evaluator.Evaluate(ctx, cart)
	if err != nil {
		return s.fail(ctx, entities.StageRewardsEvaluation, req.UserID, err)
	}
	s.trace(ctx, entities.StateRewardsEvaluated, req.UserID)

	rewards := eval.Outcome
	finalTotal := req.Total.Sub(rewards.TotalDiscount)
	if finalTotal.IsNegative() {
		return s.fail(ctx, entities.StageValidation, req.UserID, entities.ErrNegativeTotal)
	}

	order, err := s.orders.Save(ctx, entities.Order{
		UserID:    req.UserID,
		Items:     req.Items,
		Total:     finalTotal,
		Discount:  rewards.TotalDiscount,
		Status:    entities.OrderStatusPlaced,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return s.fail(ctx, entities.StagePersistence, req.UserID, storeError(err))
	}
	s.cache.Set(order.ID, order)
	s.trace(ctx, entities.StateOrderPersisted, req.UserID, slog.Int64("order_id", order.ID))

	placement := entities.Placement{
		Order:    order,
		Rewards:  rewards,
		Warnings: eval.Warnings,
	}
	state := entities.StateOrderPersisted

	// Пользователь перечитывается заново, запись из первого шага могла устареть
	err = s.postOrderStep(ctx, func(ctx context.Context) error {
		_, err := updateUser(ctx, s.users, order.UserID, func(u *entities.User) {
			u.ApplyOrder(order.Total, rewards)
		})
		return err
	})
	if err != nil {
		s.warn(ctx, &placement, entities.StageStatsUpdate, err)
	} else {
		state = entities.StateUserUpdated
		s.trace(ctx, state, req.UserID, slog.Int64("order_id", order.ID))
	}

	if rewards.LoyaltyUsed {
		err := s.postOrderStep(ctx, func(ctx context.Context) error {
			return s.loyalty.ConfirmLoyalty(ctx, order.UserID, order.Total)
		})
		if err != nil {
			s.warn(ctx, &placement, entities.StageLoyaltyConfirm, err)
		} else {
			state = entities.StateLoyaltyConfirmed
		}
	}

	placementsTotal.WithLabelValues(string(state)).Inc()
	s.logger.InfoContext(ctx, "order placed",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", order.UserID),
		slog.String("total", order.Total.String()),
		slog.String("discount", order.Discount.String()),
		slog.String("state", string(state)),
		slog.Int("warnings", len(placement.Warnings)),
	)
	return placement, nil
}

func (s *orderService) fail(ctx context.Context, stage entities.Stage, userID int64, err error) (entities.Placement, error) {
	placementsTotal.WithLabelValues(string(entities.StateFailed)).Inc()
	placementFailures.WithLabelValues(string(stage)).Inc()

	level := slog.LevelError
	if errors.Is(err, entities.ErrValidation) || errors.Is(err, entities.ErrNotFound) {
		level = slog.LevelInfo
	}
	s.logger.Log(ctx, level, "order placement failed",
		slog.String("stage", string(stage)),
		slog.Int64("user_id", userID),
		slog.Any("error", err),
	)
	return entities.Placement{}, &entities.PlacementError{Stage: stage, Err: err}
}

// postOrderStep выполняет шаг после сохранения заказа со своим сроком,
// отвязанным от отмены запроса.
func (s *orderService) postOrderStep(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), postOrderTimeout)
	defer cancel()
	return fn(ctx)
}

func (s *orderService) warn(ctx context.Context, p *entities.Placement, stage entities.Stage, err error) {
	w := entities.Warning{
		Stage:   stage,
		UserID:  p.Order.UserID,
		OrderID: p.Order.ID,
		Err:     err,
	}
	p.Warnings = append(p.Warnings, w)
	report(ctx, s.sink, w)
}

func (s *orderService) trace(ctx context.Context, state entities.PlacementState, userID int64, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("state", string(state)), slog.Int64("user_id", userID))
	s.logger.LogAttrs(ctx, slog.LevelDebug, "placement state changed", attrs...)
}

// GetOrderByID возвращает заказ из кэша или из хранилища.
// Размещённые заказы не меняются, поэтому кэш не инвалидируется.
func (s *orderService) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	if order, ok := s.cache.Get(id); ok {
		orderCacheLookups.WithLabelValues("hit").Inc()
		return order, nil
	}
	orderCacheLookups.WithLabelValues("miss").Inc()

	var order entities.Order
	fn := func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, readRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, storeError(err)
	}

	s.cache.Set(id, order)
	return order, nil
}

// ListOrdersByUser возвращает заказы пользователя, новые первыми.
func (s *orderService) ListOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	if userID <= 0 {
		return nil, entities.ErrInvalidUserID
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, storeError(err)
	}

	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return orders, nil
}

// WarmUpCache загружает в кэш count последних заказов.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.orders.LatestOrders(ctx, count)
	if err != nil {
		return storeError(err)
	}
	for _, order := range orders {
		s.cache.Set(order.ID, order)
	}
	s.logger.Info("order cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
