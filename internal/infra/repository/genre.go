package repository

import (
	"context"

	"bookstore-api/internal/domain/genre"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GenreRepository struct{}

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{}
}

func (r *GenreRepository) Create(ctx context.Context, tx db.DBTX, g *genre.Genre) (uuid.UUID, error) {
	const query = `
		INSERT INTO genres (id, name)
		VALUES ($1, $2)
	`
	if _, err := tx.Exec(ctx, query, g.ID(), g.Name()); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create genre", err)
	}

	return g.ID(), nil
}

func (r *GenreRepository) Update(ctx context.Context, tx db.DBTX, g *genre.Genre) error {
	const query = `
		UPDATE genres
		SET name = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := tx.Exec(ctx, query, g.ID(), g.Name())
	if err != nil {
		return infra.WrapRepoErr("failed to update genre", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("genre not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return nil
}

func (r *GenreRepository) SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE genres
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`
	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete genre", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("genre not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return nil
}
