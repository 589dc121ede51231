package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"
)

type rewardsService struct {
	logger  *slog.Logger
	gateway RewardsGateway
	sink    WarningSink
}

func NewRewardsService(logger *slog.Logger, gateway RewardsGateway, sink WarningSink) *rewardsService {
	return &rewardsService{
		logger:  logger.With(slog.String("service", "rewards")),
		gateway: gateway,
		sink:    sink,
	}
}

// Evaluate синхронизирует профиль и оценивает корзину в движке наград.
// Сбой синхронизации профиля не блокирует оценку и возвращается как предупреждение.
func (s *rewardsService) Evaluate(ctx context.Context, cart entities.Cart) (entities.Evaluation, error) {
	if err := cart.Validate(); err != nil {
		return entities.Evaluation{}, err
	}

	var eval entities.Evaluation

	if err := s.gateway.UpdateProfile(ctx, cart); err != nil {
		w := entities.Warning{Stage: entities.StageProfileSync, UserID: cart.UserID, Err: err}
		report(ctx, s.sink, w)
		eval.Warnings = append(eval.Warnings, w)
	}

	outcome, err := s.gateway.EvaluateSession(ctx, cart)
	if err != nil {
		return entities.Evaluation{}, err
	}

	if err := checkOutcome(outcome, cart); err != nil {
		s.logger.Error("rewards engine returned inconsistent outcome",
			slog.Int64("user_id", cart.UserID),
			slog.String("cart_total", cart.Total.String()),
			slog.String("total_discount", outcome.TotalDiscount.String()),
			slog.Any("error", err),
		)
		return entities.Evaluation{}, err
	}

	if outcome.Discounts == nil {
		outcome.Discounts = []entities.Discount{}
	}
	eval.Outcome = outcome

	s.logger.Debug("cart evaluated",
		slog.Int64("user_id", cart.UserID),
		slog.String("total_discount", outcome.TotalDiscount.String()),
		slog.Bool("loyalty_used", outcome.LoyaltyUsed),
	)
	return eval, nil
}

func checkOutcome(o entities.RewardsOutcome, cart entities.Cart) error {
	if o.TotalDiscount.IsNegative() {
		return fmt.Errorf("%w: negative total discount %s", entities.ErrInvalidOutcome, o.TotalDiscount)
	}
	// Скидка хранится с точностью MoneyScale без округления
	if !entities.HasMoneyScale(o.TotalDiscount) {
		return fmt.Errorf("%w: total discount %s has more than %d decimal places", entities.ErrInvalidOutcome, o.TotalDiscount, entities.MoneyScale)
	}
	for _, d := range o.Discounts {
		if d.Amount.IsNegative() {
			return fmt.Errorf("%w: discount %q has negative amount", entities.ErrInvalidOutcome, d.Code)
		}
		if !entities.HasMoneyScale(d.Amount) {
			return fmt.Errorf("%w: discount %q amount %s has more than %d decimal places", entities.ErrInvalidOutcome, d.Code, d.Amount, entities.MoneyScale)
		}
	}
	if o.LoyaltyPointsUsed < 0 || o.LoyaltyPointsRemaining < 0 {
		return fmt.Errorf("%w: negative loyalty points", entities.ErrInvalidOutcome)
	}
	if o.TotalDiscount.GreaterThan(cart.Total) {
		return fmt.Errorf("%w: %s > %s", entities.ErrDiscountExceedsTotal, o.TotalDiscount, cart.Total)
	}
	return nil
}
