package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"
	"github.com/SergeyBogomolovv/rewards-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req entities.OrderRequest) (entities.Placement, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]entities.Order, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (entities.User, error)
	UpdateStats(ctx context.Context, id int64, totalOrders int, totalSpent decimal.Decimal) error
}

type RewardsEvaluator interface {
	Evaluate(ctx context.Context, cart entities.Cart) (entities.Evaluation, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	users    UserService
	rewards  RewardsEvaluator
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, users UserService, rewards RewardsEvaluator) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		users:    users,
		rewards:  rewards,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.PlaceOrder)
		r.Get("/{id}", h.GetOrderByID)
	})
	r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/", h.GetUser)
		r.Put("/", h.UpdateUserStats)
		r.Get("/orders", h.ListUserOrders)
	})
	r.Post("/rewards/evaluate", h.EvaluateRewards)
}

// PlaceOrder размещает заказ.
// @Summary      Разместить заказ
// @Description  Оценивает скидки в движке наград, сохраняет заказ и обновляет статистику пользователя
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CartRequest  true  "Корзина"
// @Success      201  {object}  PlaceOrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CartRequest
	if !h.decodeAndValidate(w, r, &body) {
		return
	}

	placement, err := h.orders.PlaceOrder(ctx, body.ToOrderRequest())
	if err != nil {
		h.writeServiceError(ctx, w, err, slog.Int64("user_id", body.UserID))
		return
	}

	utils.WriteJSON(w, PlacementToJSON(placement), http.StatusCreated)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrderByID(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, err, slog.Int64("order_id", id))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetUser возвращает пользователя по ID.
// @Summary      Получить пользователя
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "Идентификатор пользователя"
// @Success      200  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{id} [get]
func (h *HTTPHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetUser(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, err, slog.Int64("user_id", id))
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// UpdateUserStats перезаписывает статистику пользователя.
// @Summary      Обновить статистику пользователя
// @Tags         users
// @Accept       json
// @Param        id       path  int                 true  "Идентификатор пользователя"
// @Param        request  body  UpdateStatsRequest  true  "Новая статистика"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{id} [put]
func (h *HTTPHandler) UpdateUserStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var body UpdateStatsRequest
	if !h.decodeAndValidate(w, r, &body) {
		return
	}

	err := h.users.UpdateStats(ctx, id, *body.TotalOrders, decimal.NewFromFloat(*body.TotalSpent))
	if err != nil {
		h.writeServiceError(ctx, w, err, slog.Int64("user_id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListUserOrders возвращает заказы пользователя.
// @Summary      Заказы пользователя
// @Description  Возвращает заказы пользователя, новые первыми
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "Идентификатор пользователя"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/{id}/orders [get]
func (h *HTTPHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	orders, err := h.orders.ListOrdersByUser(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, err, slog.Int64("user_id", id))
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// EvaluateRewards оценивает корзину без размещения заказа.
// @Summary      Оценить корзину
// @Description  Возвращает скидки и состояние лояльности для корзины
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Param        request  body      CartRequest  true  "Корзина"
// @Success      200  {object}  Rewards
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /rewards/evaluate [post]
func (h *HTTPHandler) EvaluateRewards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CartRequest
	if !h.decodeAndValidate(w, r, &body) {
		return
	}

	eval, err := h.rewards.Evaluate(ctx, body.ToCart())
	if err != nil {
		h.writeServiceError(ctx, w, err, slog.Int64("user_id", body.UserID))
		return
	}

	utils.WriteJSON(w, RewardsEntityToJSON(eval.Outcome), http.StatusOK)
}

func (h *HTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(w, r, v); err != nil {
		utils.WriteValidationError(w, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.WriteValidationError(w, fmt.Errorf("invalid id %q", raw))
		return 0, false
	}
	if err := h.validate.Var(id, "gt=0"); err != nil {
		utils.WriteValidationError(w, err)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, attrs ...any) {
	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, "user not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrUpstream):
		h.logger.ErrorContext(ctx, "rewards engine failure", append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, "rewards evaluation failed", http.StatusInternalServerError)
	default:
		h.logger.ErrorContext(ctx, "request failed", append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
