package entities

import (
	"errors"
	"fmt"
)

// Классы ошибок, проверяются через errors.Is
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrUpstream    = errors.New("rewards gateway failure")
	ErrPersistence = errors.New("persistence failure")
)

var (
	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrOrderNotFound = fmt.Errorf("order %w", ErrNotFound)

	ErrInvalidUserID  = fmt.Errorf("%w: user id must be positive", ErrValidation)
	ErrEmptyItems     = fmt.Errorf("%w: items required", ErrValidation)
	ErrNegativeTotal  = fmt.Errorf("%w: total must be non-negative", ErrValidation)
	ErrTotalPrecision = fmt.Errorf("%w: total must have at most 2 decimal places", ErrValidation)
	ErrInvalidStats   = fmt.Errorf("%w: stats must be non-negative with at most 2 decimal places", ErrValidation)

	ErrDiscountExceedsTotal = fmt.Errorf("%w: discount exceeds cart total", ErrUpstream)
	ErrInvalidOutcome       = fmt.Errorf("%w: malformed rewards outcome", ErrUpstream)

	ErrUserVersionConflict = errors.New("user version conflict")
)

// InvalidItemError описывает некорректную позицию корзины.
type InvalidItemError struct {
	Index  int
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("item %d: %s", e.Index, e.Reason)
}

func (e *InvalidItemError) Unwrap() error {
	return ErrValidation
}

// Classified сообщает, относится ли ошибка к одному из классов выше.
func Classified(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUpstream) ||
		errors.Is(err, ErrPersistence)
}
