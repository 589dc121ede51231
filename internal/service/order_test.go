package service_test

import (
	"context"
	"errors"
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

type orderDeps struct {
	users     *mocks.MockUserRepo
	orders    *mocks.MockOrderRepo
	evaluator *mocks.MockEvaluator
	loyalty   *mocks.MockLoyaltyConfirmer
	sink      *mocks.MockWarningSink
	cache     *mocks.MockCache
}

func newOrderDeps(t *testing.T) orderDeps {
	return orderDeps{
		users:     mocks.NewMockUserRepo(t),
		orders:    mocks.NewMockOrderRepo(t),
		evaluator: mocks.NewMockEvaluator(t),
		loyalty:   mocks.NewMockLoyaltyConfirmer(t),
		sink:      mocks.NewMockWarningSink(t),
		cache:     mocks.NewMockCache(t),
	}
}

type orderService interface {
	PlaceOrder(ctx context.Context, req entities.OrderRequest) (entities.Placement, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
	WarmUpCache(ctx context.Context, count int) error
}

func (d orderDeps) newService() orderService {
	return service.NewOrderService(discardLogger(), d.users, d.orders, d.evaluator, d.loyalty, d.sink, d.cache)
}

// expectSave возвращает сохранённый заказ с присвоенным ID.
func (d orderDeps) expectSave(id int64) {
	d.orders.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			o.ID = id
			return o, nil
		}).Once()
	d.cache.EXPECT().Set(id, mock.Anything).Once()
}

func testUser() entities.User {
	return entities.User{
		ID:            1,
		Email:         "ann@example.com",
		Name:          "Ann",
		TotalOrders:   3,
		TotalSpent:    dec("120"),
		LoyaltyPoints: 100,
		Version:       5,
	}
}

func testRequest(total string) entities.OrderRequest {
	return entities.OrderRequest{UserID: 1, Items: testItems(), Total: dec(total)}
}

func TestOrderService_PlaceOrder_Applies80Over20(t *testing.T) {
	d := newOrderDeps(t)
	user := testUser()

	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(user, nil).Twice()
	d.evaluator.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(c entities.Cart) bool {
		return c.UserID == 1 && c.Email == user.Email && c.Total.Equal(dec("100"))
	})).Return(entities.Evaluation{Outcome: entities.RewardsOutcome{TotalDiscount: dec("20")}}, nil).Once()
	d.expectSave(10)
	d.users.EXPECT().Save(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.TotalOrders == 4 && u.TotalSpent.Equal(dec("200")) && u.LoyaltyPoints == 100
	})).Return(user, nil).Once()

	placement, err := d.newService().PlaceOrder(context.Background(), testRequest("100"))

	require.NoError(t, err)
	assert.Equal(t, int64(10), placement.Order.ID)
	assert.True(t, dec("80").Equal(placement.Order.Total))
	assert.True(t, dec("20").Equal(placement.Order.Discount))
	assert.Equal(t, entities.OrderStatusPlaced, placement.Order.Status)
	assert.Len(t, placement.Order.Items, 2)
	assert.Empty(t, placement.Warnings)
}

func TestOrderService_PlaceOrder_FinalTotalIsExact(t *testing.T) {
	testCases := []struct {
		declared string
		discount string
	}{
		{declared: "100", discount: "0"},
		{declared: "99.99", discount: "10.01"},
		{declared: "0.30", discount: "0.10"},
		{declared: "42", discount: "42"},
	}

	for _, tc := range testCases {
		t.Run(tc.declared+"-"+tc.discount, func(t *testing.T) {
			d := newOrderDeps(t)
			d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil)
			d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
				Return(entities.Evaluation{Outcome: entities.RewardsOutcome{TotalDiscount: dec(tc.discount)}}, nil).Once()
			d.expectSave(1)
			d.users.EXPECT().Save(mock.Anything, mock.Anything).Return(testUser(), nil).Once()

			placement, err := d.newService().PlaceOrder(context.Background(), testRequest(tc.declared))

			require.NoError(t, err)
			sum := placement.Order.Total.Add(placement.Order.Discount)
			assert.True(t, dec(tc.declared).Equal(sum), "total %s + discount %s", placement.Order.Total, placement.Order.Discount)
			assert.False(t, placement.Order.Total.IsNegative())
		})
	}
}

func TestOrderService_PlaceOrder_UnknownUser(t *testing.T) {
	d := newOrderDeps(t)
	d.users.EXPECT().FindByID(mock.Anything, int64(999)).Return(entities.User{}, entities.ErrUserNotFound).Once()

	req := testRequest("100")
	req.UserID = 999
	_, err := d.newService().PlaceOrder(context.Background(), req)

	assert.ErrorIs(t, err, entities.ErrUserNotFound)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	var perr *entities.PlacementError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, entities.StageUserLookup, perr.Stage)
}

func TestOrderService_PlaceOrder_RejectsDiscountAboveTotal(t *testing.T) {
	d := newOrderDeps(t)
	gateway := mocks.NewMockRewardsGateway(t)
	evaluator := service.NewRewardsService(discardLogger(), gateway, d.sink)

	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil).Once()
	gateway.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(nil).Once()
	gateway.EXPECT().EvaluateSession(mock.Anything, mock.Anything).
		Return(entities.RewardsOutcome{TotalDiscount: dec("150")}, nil).Once()

	svc := service.NewOrderService(discardLogger(), d.users, d.orders, evaluator, d.loyalty, d.sink, d.cache)
	_, err := svc.PlaceOrder(context.Background(), testRequest("100"))

	assert.ErrorIs(t, err, entities.ErrDiscountExceedsTotal)
	assert.ErrorIs(t, err, entities.ErrUpstream)

	var perr *entities.PlacementError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, entities.StageRewardsEvaluation, perr.Stage)
}

func TestOrderService_PlaceOrder_RejectsSubCentAmounts(t *testing.T) {
	t.Run("declared total", func(t *testing.T) {
		d := newOrderDeps(t)

		_, err := d.newService().PlaceOrder(context.Background(), testRequest("0.005"))

		assert.ErrorIs(t, err, entities.ErrTotalPrecision)
		var perr *entities.PlacementError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, entities.StageValidation, perr.Stage)
	})

	t.Run("engine discount", func(t *testing.T) {
		d := newOrderDeps(t)
		gateway := mocks.NewMockRewardsGateway(t)
		evaluator := service.NewRewardsService(discardLogger(), gateway, d.sink)

		d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil).Once()
		gateway.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(nil).Once()
		gateway.EXPECT().EvaluateSession(mock.Anything, mock.Anything).
			Return(entities.RewardsOutcome{TotalDiscount: dec("0.005")}, nil).Once()

		svc := service.NewOrderService(discardLogger(), d.users, d.orders, evaluator, d.loyalty, d.sink, d.cache)
		_, err := svc.PlaceOrder(context.Background(), testRequest("100"))

		assert.ErrorIs(t, err, entities.ErrInvalidOutcome)
		var perr *entities.PlacementError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, entities.StageRewardsEvaluation, perr.Stage)
	})
}

func TestOrderService_PlaceOrder_Failures(t *testing.T) {
	type MockBehavior func(d orderDeps)

	testCases := []struct {
		name         string
		req          entities.OrderRequest
		mockBehavior MockBehavior
		wantErr      error
		wantStage    entities.Stage
	}{
		{
			name:         "empty items",
			req:          entities.OrderRequest{UserID: 1, Total: dec("10")},
			mockBehavior: func(d orderDeps) {},
			wantErr:      entities.ErrValidation,
			wantStage:    entities.StageValidation,
		},
		{
			name:         "negative declared total",
			req:          testRequest("-1"),
			mockBehavior: func(d orderDeps) {},
			wantErr:      entities.ErrValidation,
			wantStage:    entities.StageValidation,
		},
		{
			name: "user store failure",
			req:  testRequest("100"),
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(entities.User{}, errors.New("conn refused")).Once()
			},
			wantErr:   entities.ErrPersistence,
			wantStage: entities.StageUserLookup,
		},
		{
			name: "session failure persists nothing",
			req:  testRequest("100"),
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil).Once()
				d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
					Return(entities.Evaluation{}, errors.Join(entities.ErrUpstream, errors.New("timeout"))).Once()
			},
			wantErr:   entities.ErrUpstream,
			wantStage: entities.StageRewardsEvaluation,
		},
		{
			name: "negative final total",
			req:  testRequest("10"),
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil).Once()
				d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
					Return(entities.Evaluation{Outcome: entities.RewardsOutcome{TotalDiscount: dec("11")}}, nil).Once()
			},
			wantErr:   entities.ErrNegativeTotal,
			wantStage: entities.StageValidation,
		},
		{
			name: "persistence failure skips post-order steps",
			req:  testRequest("100"),
			mockBehavior: func(d orderDeps) {
				d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil).Once()
				d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
					Return(entities.Evaluation{Outcome: entities.RewardsOutcome{TotalDiscount: dec("20"), LoyaltyUsed: true}}, nil).Once()
				d.orders.EXPECT().Save(mock.Anything, mock.Anything).Return(entities.Order{}, errors.New("deadlock")).Once()
			},
			wantErr:   entities.ErrPersistence,
			wantStage: entities.StagePersistence,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d)

			placement, err := d.newService().PlaceOrder(context.Background(), tc.req)

			assert.ErrorIs(t, err, tc.wantErr)
			var perr *entities.PlacementError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.wantStage, perr.Stage)
			assert.Zero(t, placement.Order.ID)
		})
	}
}

func TestOrderService_PlaceOrder_LoyaltyConfirmed(t *testing.T) {
	d := newOrderDeps(t)
	user := testUser()
	rewards := entities.RewardsOutcome{
		TotalDiscount:          dec("20"),
		LoyaltyUsed:            true,
		LoyaltyPointsUsed:      30,
		LoyaltyPointsRemaining: 70,
	}

	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(user, nil).Twice()
	d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).Return(entities.Evaluation{Outcome: rewards}, nil).Once()
	d.expectSave(10)
	d.users.EXPECT().Save(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.TotalOrders == 4 && u.LoyaltyPoints == 70
	})).Return(user, nil).Once()
	d.loyalty.EXPECT().ConfirmLoyalty(mock.Anything, int64(1), mock.MatchedBy(func(total decimal.Decimal) bool {
		return total.Equal(dec("80"))
	})).Return(nil).Once()

	placement, err := d.newService().PlaceOrder(context.Background(), testRequest("100"))

	require.NoError(t, err)
	assert.Empty(t, placement.Warnings)
	assert.Equal(t, 70, placement.Rewards.LoyaltyPointsRemaining)
}

func TestOrderService_PlaceOrder_LoyaltyConfirmFailureKeepsOrder(t *testing.T) {
	d := newOrderDeps(t)
	user := testUser()
	confirmErr := errors.Join(entities.ErrUpstream, errors.New("502"))

	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(user, nil).Twice()
	d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(entities.Evaluation{Outcome: entities.RewardsOutcome{TotalDiscount: dec("20"), LoyaltyUsed: true}}, nil).Once()
	d.expectSave(10)
	d.users.EXPECT().Save(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.TotalOrders == user.TotalOrders+1 && u.TotalSpent.Equal(user.TotalSpent.Add(dec("80")))
	})).Return(user, nil).Once()
	d.loyalty.EXPECT().ConfirmLoyalty(mock.Anything, int64(1), mock.Anything).Return(confirmErr).Once()
	d.sink.EXPECT().Report(mock.Anything, mock.MatchedBy(func(w entities.Warning) bool {
		return w.Stage == entities.StageLoyaltyConfirm && w.OrderID == 10 && w.UserID == 1
	})).Once()

	placement, err := d.newService().PlaceOrder(context.Background(), testRequest("100"))

	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPlaced, placement.Order.Status)
	require.Len(t, placement.Warnings, 1)
	assert.Equal(t, entities.StageLoyaltyConfirm, placement.Warnings[0].Stage)
	assert.ErrorIs(t, placement.Warnings[0].Err, entities.ErrUpstream)
}

func TestOrderService_PlaceOrder_StatsFailureIsWarning(t *testing.T) {
	d := newOrderDeps(t)
	dbErr := errors.New("db is down")

	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil)
	d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(entities.Evaluation{Outcome: entities.RewardsOutcome{TotalDiscount: dec("20")}}, nil).Once()
	d.expectSave(10)
	d.users.EXPECT().Save(mock.Anything, mock.Anything).Return(entities.User{}, dbErr).Times(3)
	d.sink.EXPECT().Report(mock.Anything, mock.MatchedBy(func(w entities.Warning) bool {
		return w.Stage == entities.StageStatsUpdate && w.OrderID == 10
	})).Once()

	placement, err := d.newService().PlaceOrder(context.Background(), testRequest("100"))

	require.NoError(t, err)
	assert.Equal(t, int64(10), placement.Order.ID)
	require.Len(t, placement.Warnings, 1)
	assert.ErrorIs(t, placement.Warnings[0].Err, dbErr)
}

func TestOrderService_PlaceOrder_RetriesVersionConflict(t *testing.T) {
	d := newOrderDeps(t)
	stale := testUser()
	fresh := testUser()
	fresh.TotalOrders = 9
	fresh.Version = 6

	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(stale, nil).Twice()
	d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(entities.Evaluation{Outcome: entities.RewardsOutcome{TotalDiscount: dec("20")}}, nil).Once()
	d.expectSave(10)
	d.users.EXPECT().Save(mock.Anything, mock.MatchedBy(func(u entities.User) bool { return u.Version == 5 })).
		Return(entities.User{}, entities.ErrUserVersionConflict).Once()
	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(fresh, nil).Once()
	d.users.EXPECT().Save(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Version == 6 && u.TotalOrders == 10
	})).Return(fresh, nil).Once()

	placement, err := d.newService().PlaceOrder(context.Background(), testRequest("100"))

	require.NoError(t, err)
	assert.Empty(t, placement.Warnings)
}

func TestOrderService_PlaceOrder_ForwardsProfileWarning(t *testing.T) {
	d := newOrderDeps(t)
	profileWarning := entities.Warning{Stage: entities.StageProfileSync, UserID: 1, Err: entities.ErrUpstream}

	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil).Twice()
	d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(entities.Evaluation{
			Outcome:  entities.RewardsOutcome{TotalDiscount: dec("0")},
			Warnings: []entities.Warning{profileWarning},
		}, nil).Once()
	d.expectSave(10)
	d.users.EXPECT().Save(mock.Anything, mock.Anything).Return(testUser(), nil).Once()

	placement, err := d.newService().PlaceOrder(context.Background(), testRequest("100"))

	require.NoError(t, err)
	assert.Equal(t, []entities.Warning{profileWarning}, placement.Warnings)
}

func TestOrderService_PlaceOrder_SurvivesClientCancel(t *testing.T) {
	d := newOrderDeps(t)
	ctx, cancel := context.WithCancel(context.Background())

	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil).Once()
	d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(entities.Evaluation{Outcome: entities.RewardsOutcome{TotalDiscount: dec("20")}}, nil).Once()
	d.orders.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			cancel()
			o.ID = 10
			return o, nil
		}).Once()
	d.cache.EXPECT().Set(int64(10), mock.Anything).Once()
	d.users.EXPECT().FindByID(mock.Anything, int64(1)).
		RunAndReturn(func(ctx context.Context, _ int64) (entities.User, error) {
			assert.NoError(t, ctx.Err())
			return testUser(), nil
		}).Once()
	d.users.EXPECT().Save(mock.Anything, mock.Anything).Return(testUser(), nil).Once()

	_, err := d.newService().PlaceOrder(ctx, testRequest("100"))

	require.NoError(t, err)
}

func TestOrderService_PlaceOrder_SlowSinkDoesNotStarveLoyalty(t *testing.T) {
	service.SetReportTimeout(t, 20*time.Millisecond)
	d := newOrderDeps(t)

	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil).Once()
	d.evaluator.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(entities.Evaluation{Outcome: entities.RewardsOutcome{
			TotalDiscount:          dec("20"),
			LoyaltyUsed:            true,
			LoyaltyPointsUsed:      20,
			LoyaltyPointsRemaining: 80,
		}}, nil).Once()
	d.expectSave(10)
	d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(entities.User{}, entities.ErrUserNotFound).Once()

	// Приёмник висит, пока не истечёт срок его контекста
	d.sink.EXPECT().Report(mock.Anything, mock.MatchedBy(func(w entities.Warning) bool {
		return w.Stage == entities.StageStatsUpdate
	})).Run(func(ctx context.Context, _ entities.Warning) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		<-ctx.Done()
	}).Once()
	d.loyalty.EXPECT().ConfirmLoyalty(mock.Anything, int64(1), mock.Anything).
		RunAndReturn(func(ctx context.Context, _ int64, _ decimal.Decimal) error {
			assert.NoError(t, ctx.Err())
			return nil
		}).Once()

	start := time.Now()
	placement, err := d.newService().PlaceOrder(context.Background(), testRequest("100"))

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	require.Len(t, placement.Warnings, 1)
	assert.Equal(t, entities.StageStatsUpdate, placement.Warnings[0].Stage)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(d orderDeps)

	order := entities.Order{ID: 10, UserID: 1, Total: dec("80"), Status: entities.OrderStatusPlaced, CreatedAt: time.Now()}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "cache hit",
			mockBehavior: func(d orderDeps) {
				d.cache.EXPECT().Get(int64(10)).Return(order, true).Once()
			},
		},
		{
			name: "cache miss",
			mockBehavior: func(d orderDeps) {
				d.cache.EXPECT().Get(int64(10)).Return(entities.Order{}, false).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(order, nil).Once()
				d.cache.EXPECT().Set(int64(10), order).Once()
			},
		},
		{
			name: "not found is not retried",
			mockBehavior: func(d orderDeps) {
				d.cache.EXPECT().Get(int64(10)).Return(entities.Order{}, false).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name: "transient failure is retried",
			mockBehavior: func(d orderDeps) {
				d.cache.EXPECT().Get(int64(10)).Return(entities.Order{}, false).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(entities.Order{}, errors.New("temporary error")).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(10)).Return(order, nil).Once()
				d.cache.EXPECT().Set(int64(10), order).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			tc.mockBehavior(d)

			got, err := d.newService().GetOrderByID(context.Background(), 10)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}
}

func TestOrderService_ListOrdersByUser(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		d := newOrderDeps(t)
		d.users.EXPECT().FindByID(mock.Anything, int64(999)).Return(entities.User{}, entities.ErrUserNotFound).Once()

		_, err := d.newService().ListOrdersByUser(context.Background(), 999)

		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		d := newOrderDeps(t)

		_, err := d.newService().ListOrdersByUser(context.Background(), 0)

		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("OK", func(t *testing.T) {
		d := newOrderDeps(t)
		orders := []entities.Order{{ID: 2, UserID: 1}, {ID: 1, UserID: 1}}
		d.users.EXPECT().FindByID(mock.Anything, int64(1)).Return(testUser(), nil).Once()
		d.orders.EXPECT().ListByUser(mock.Anything, int64(1)).Return(orders, nil).Once()

		got, err := d.newService().ListOrdersByUser(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})
}

func TestOrderService_WarmUpCache(t *testing.T) {
	d := newOrderDeps(t)
	orders := []entities.Order{{ID: 3}, {ID: 2}}
	d.orders.EXPECT().LatestOrders(mock.Anything, 100).Return(orders, nil).Once()
	d.cache.EXPECT().Set(int64(3), orders[0]).Once()
	d.cache.EXPECT().Set(int64(2), orders[1]).Once()

	err := d.newService().WarmUpCache(context.Background(), 100)

	require.NoError(t, err)
}
