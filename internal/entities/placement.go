package entities

import "fmt"

type Stage string

const (
	StageValidation        Stage = "validation"
	StageUserLookup        Stage = "user-lookup"
	StageRewardsEvaluation Stage = "rewards-evaluation"
	StagePersistence       Stage = "persistence"
	StageProfileSync       Stage = "profile-sync"
	StageStatsUpdate       Stage = "stats-update"
	StageLoyaltyConfirm    Stage = "loyalty-confirm"
)

type PlacementState string

const (
	StateStart            PlacementState = "START"
	StateUserResolved     PlacementState = "USER_RESOLVED"
	StateRewardsEvaluated PlacementState = "REWARDS_EVALUATED"
	StateOrderPersisted   PlacementState = "ORDER_PERSISTED"
	StateUserUpdated      PlacementState = "USER_UPDATED"
	StateLoyaltyConfirmed PlacementState = "LOYALTY_CONFIRMED"
	StateFailed           PlacementState = "FAILED"
)

// PlacementError терминальная ошибка размещения заказа на конкретном этапе.
type PlacementError struct {
	Stage Stage
	Err   error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}

// Warning некритичный сбой, не откатывающий уже сохранённый заказ.
type Warning struct {
	Stage   Stage
	UserID  int64
	OrderID int64
	Err     error
}

type Placement struct {
	Order    Order
	Rewards  RewardsOutcome
	Warnings []Warning
}
