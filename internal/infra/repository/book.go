package repository

import (
	"context"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookRepository struct{}

func NewBookRepository() *BookRepository {
	return &BookRepository{}
}

func (r *BookRepository) Create(ctx context.Context, tx db.DBTX, b *book.Book) (uuid.UUID, error) {
	const query = `
		INSERT INTO books (id, title, author, price, stock, genre_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := tx.Exec(ctx, query, b.ID(), b.Title(), b.Author(), b.Price(), b.Stock(), b.GenreID())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create book", err)
	}

	return b.ID(), nil
}

func (r *BookRepository) Update(ctx context.Context, tx db.DBTX, b *book.Book) error {
	const query = `
		UPDATE books
		SET title = $2, author = $3, price = $4, stock = $5, genre_id = $6, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := tx.Exec(ctx, query, b.ID(), b.Title(), b.Author(), b.Price(), b.Stock(), b.GenreID())
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return nil
}

func (r *BookRepository) SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE books
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return nil
}

// DecrementStock is the only write path that reduces stock. The predicate is
// re-evaluated under the row lock, so when a concurrent transaction has taken
// the stock first, zero rows match and the caller must abort the whole unit.
func (r *BookRepository) DecrementStock(ctx context.Context, tx db.DBTX, bookID uuid.UUID, quantity int32) error {
	const query = `
		UPDATE books
		SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL AND stock >= $2
	`
	tag, err := tx.Exec(ctx, query, bookID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock changed concurrently", pgx.ErrNoRows, infra.KindConflict)
	}

	return nil
}
