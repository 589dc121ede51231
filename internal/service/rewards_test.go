package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"
	"github.com/SergeyBogomolovv/rewards-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/rewards-order-service/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testItems() []entities.CartItem {
	return []entities.CartItem{
		{SKU: "sku-1", Name: "Mug", Quantity: 2, UnitPrice: dec("25")},
		{SKU: "sku-2", Name: "Tee", Quantity: 1, UnitPrice: dec("50")},
	}
}

func TestRewardsService_Evaluate(t *testing.T) {
	type MockBehavior func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink)

	cart := entities.Cart{UserID: 1, Items: testItems(), Total: dec("100")}
	upstreamErr := errors.Join(entities.ErrUpstream, errors.New("503"))

	testCases := []struct {
		name         string
		cart         entities.Cart
		mockBehavior MockBehavior
		wantErr      error
		wantDiscount decimal.Decimal
		wantWarnings int
	}{
		{
			name: "OK",
			cart: cart,
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {
				gateway.EXPECT().UpdateProfile(mock.Anything, cart).Return(nil).Once()
				gateway.EXPECT().EvaluateSession(mock.Anything, cart).
					Return(entities.RewardsOutcome{TotalDiscount: dec("20")}, nil).Once()
			},
			wantDiscount: dec("20"),
		},
		{
			name: "profile sync failure is a warning",
			cart: cart,
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {
				gateway.EXPECT().UpdateProfile(mock.Anything, cart).Return(upstreamErr).Once()
				sink.EXPECT().Report(mock.Anything, mock.MatchedBy(func(w entities.Warning) bool {
					return w.Stage == entities.StageProfileSync && w.UserID == 1
				})).Once()
				gateway.EXPECT().EvaluateSession(mock.Anything, cart).
					Return(entities.RewardsOutcome{TotalDiscount: dec("5")}, nil).Once()
			},
			wantDiscount: dec("5"),
			wantWarnings: 1,
		},
		{
			name: "session failure is fatal",
			cart: cart,
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {
				gateway.EXPECT().UpdateProfile(mock.Anything, cart).Return(nil).Once()
				gateway.EXPECT().EvaluateSession(mock.Anything, cart).
					Return(entities.RewardsOutcome{}, upstreamErr).Once()
			},
			wantErr: entities.ErrUpstream,
		},
		{
			name: "discount exceeds total",
			cart: cart,
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {
				gateway.EXPECT().UpdateProfile(mock.Anything, cart).Return(nil).Once()
				gateway.EXPECT().EvaluateSession(mock.Anything, cart).
					Return(entities.RewardsOutcome{TotalDiscount: dec("150")}, nil).Once()
			},
			wantErr: entities.ErrDiscountExceedsTotal,
		},
		{
			name: "negative discount amount",
			cart: cart,
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {
				gateway.EXPECT().UpdateProfile(mock.Anything, cart).Return(nil).Once()
				gateway.EXPECT().EvaluateSession(mock.Anything, cart).
					Return(entities.RewardsOutcome{
						TotalDiscount: dec("10"),
						Discounts:     []entities.Discount{{Code: "X", Amount: dec("-10")}},
					}, nil).Once()
			},
			wantErr: entities.ErrInvalidOutcome,
		},
		{
			name: "sub-cent total discount",
			cart: cart,
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {
				gateway.EXPECT().UpdateProfile(mock.Anything, cart).Return(nil).Once()
				gateway.EXPECT().EvaluateSession(mock.Anything, cart).
					Return(entities.RewardsOutcome{TotalDiscount: dec("0.005")}, nil).Once()
			},
			wantErr: entities.ErrInvalidOutcome,
		},
		{
			name: "sub-cent discount line",
			cart: cart,
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {
				gateway.EXPECT().UpdateProfile(mock.Anything, cart).Return(nil).Once()
				gateway.EXPECT().EvaluateSession(mock.Anything, cart).
					Return(entities.RewardsOutcome{
						TotalDiscount: dec("10"),
						Discounts:     []entities.Discount{{Code: "X", Amount: dec("9.995")}},
					}, nil).Once()
			},
			wantErr: entities.ErrInvalidOutcome,
		},
		{
			name:         "sub-cent cart total makes no calls",
			cart:         entities.Cart{UserID: 1, Items: testItems(), Total: dec("0.005")},
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {},
			wantErr:      entities.ErrTotalPrecision,
		},
		{
			name: "negative loyalty balance",
			cart: cart,
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {
				gateway.EXPECT().UpdateProfile(mock.Anything, cart).Return(nil).Once()
				gateway.EXPECT().EvaluateSession(mock.Anything, cart).
					Return(entities.RewardsOutcome{LoyaltyUsed: true, LoyaltyPointsRemaining: -1}, nil).Once()
			},
			wantErr: entities.ErrInvalidOutcome,
		},
		{
			name:         "invalid cart makes no calls",
			cart:         entities.Cart{UserID: 1, Total: dec("10")},
			mockBehavior: func(gateway *mocks.MockRewardsGateway, sink *mocks.MockWarningSink) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := mocks.NewMockRewardsGateway(t)
			sink := mocks.NewMockWarningSink(t)
			tc.mockBehavior(gateway, sink)

			svc := service.NewRewardsService(discardLogger(), gateway, sink)

			eval, err := svc.Evaluate(context.Background(), tc.cart)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.wantDiscount.Equal(eval.Outcome.TotalDiscount))
			assert.NotNil(t, eval.Outcome.Discounts)
			assert.Len(t, eval.Warnings, tc.wantWarnings)
		})
	}
}

func TestRewardsService_Evaluate_SlowSinkDoesNotStallSession(t *testing.T) {
	service.SetReportTimeout(t, 20*time.Millisecond)

	cart := entities.Cart{UserID: 1, Items: testItems(), Total: dec("100")}
	gateway := mocks.NewMockRewardsGateway(t)
	sink := mocks.NewMockWarningSink(t)

	gateway.EXPECT().UpdateProfile(mock.Anything, cart).Return(errors.New("503")).Once()
	sink.EXPECT().Report(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ entities.Warning) {
			<-ctx.Done()
		}).Once()
	gateway.EXPECT().EvaluateSession(mock.Anything, cart).
		RunAndReturn(func(ctx context.Context, _ entities.Cart) (entities.RewardsOutcome, error) {
			assert.NoError(t, ctx.Err())
			return entities.RewardsOutcome{TotalDiscount: dec("20")}, nil
		}).Once()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	eval, err := service.NewRewardsService(discardLogger(), gateway, sink).Evaluate(ctx, cart)

	require.NoError(t, err)
	assert.Len(t, eval.Warnings, 1)
}
