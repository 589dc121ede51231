package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/rewards-order-service/internal/entities"
	"github.com/SergeyBogomolovv/rewards-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	db  *sqlx.DB
	txm trm.Manager
	qb  sq.StatementBuilderType
}

func NewOrderRepo(db *sqlx.DB, txm trm.Manager) *orderRepo {
	return &orderRepo{
		db:  db,
		txm: txm,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Save сохраняет заказ вместе с позициями в одной транзакции.
// Возвращает заказ с присвоенным ID, остальные поля не меняются.
func (r *orderRepo) Save(ctx context.Context, o entities.Order) (entities.Order, error) {
	err := r.txm.Do(ctx, func(ctx context.Context) error {
		ex := trm.ExecutorFrom(ctx, r.db)

		query, args := r.qb.Insert("orders").
			Columns("user_id", "total", "discount", "status", "created_at").
			Values(o.UserID, o.Total, o.Discount, string(o.Status), o.CreatedAt).
			Suffix("RETURNING id").
			MustSql()

		if err := ex.GetContext(ctx, &o.ID, query, args...); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		if len(o.Items) == 0 {
			return nil
		}

		q := r.qb.Insert("order_items").Columns(itemColumns...)
		for _, it := range o.Items {
			q = q.Values(o.ID, it.SKU, it.Name, it.Quantity, it.UnitPrice)
		}

		query, args = q.MustSql()
		if _, err := ex.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := trm.ExecutorFrom(ctx, r.db).GetContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	orders, err := r.withItems(ctx, []Order{order})
	if err != nil {
		return entities.Order{}, err
	}
	return orders[0], nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		MustSql()

	var orders []Order
	if err := trm.ExecutorFrom(ctx, r.db).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select user orders: %w", err)
	}
	return r.withItems(ctx, orders)
}

func (r *orderRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	// Получаем последние count заказов
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := trm.ExecutorFrom(ctx, r.db).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return r.withItems(ctx, orders)
}

// withItems подгружает позиции одним запросом и собирает сущности
// в исходном порядке заказов.
func (r *orderRepo) withItems(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := trm.ExecutorFrom(ctx, r.db).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[int64][]Item, len(orders))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}
