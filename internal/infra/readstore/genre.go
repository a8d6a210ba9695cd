package readstore

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GenreReadStore struct {
	db db.DBTX
}

func NewGenreReadStore(db db.DBTX) *GenreReadStore {
	return &GenreReadStore{
		db: db,
	}
}

func (r *GenreReadStore) FindAll(ctx context.Context) ([]*queries.GenreView, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list genres", err)
	}
	defer rows.Close()

	views := make([]*queries.GenreView, 0)
	for rows.Next() {
		var view queries.GenreView
		if err := rows.Scan(&view.ID, &view.Name, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan genre row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read genre rows", err)
	}

	return views, nil
}

func (r *GenreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GenreView, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE id = $1 AND deleted_at IS NULL
	`

	var view queries.GenreView
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("genre not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find genre by ID", err)
	}

	return &view, nil
}
