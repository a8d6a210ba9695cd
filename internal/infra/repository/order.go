package repository

import (
	"context"

	"bookstore-api/internal/domain/order"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	const insertOrder = `
		INSERT INTO orders (id, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, insertOrder, o.ID(), o.UserID(), o.CreatedAt()); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	const insertLine = `
		INSERT INTO order_lines (order_id, book_id, quantity)
		VALUES ($1, $2, $3)
	`
	for _, line := range o.Lines() {
		if _, err := tx.Exec(ctx, insertLine, o.ID(), line.BookID, line.Quantity); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order line", err)
		}
	}

	return o.ID(), nil
}
