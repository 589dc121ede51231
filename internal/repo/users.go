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

type userRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		MustSql()

	var user User
	err := trm.ExecutorFrom(ctx, r.db).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

// Save перезаписывает все поля пользователя одним UPDATE, если версия
// в базе совпадает с u.Version. Иначе возвращает ErrUserVersionConflict.
func (r *userRepo) Save(ctx context.Context, u entities.User) (entities.User, error) {
	query, args := r.qb.Update("users").
		Set("email", u.Email).
		Set("name", u.Name).
		Set("total_orders", u.TotalOrders).
		Set("total_spent", u.TotalSpent).
		Set("loyalty_points", u.LoyaltyPoints).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": u.ID, "version": u.Version}).
		Suffix("RETURNING version").
		MustSql()

	var version int64
	err := trm.ExecutorFrom(ctx, r.db).GetContext(ctx, &version, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserVersionConflict
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	u.Version = version
	return u, nil
}
