package readstore

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookColumns = `
	b.id, b.title, b.author, b.price, b.stock, b.genre_id, g.name,
	b.created_at, b.updated_at
`

type BookReadStore struct {
	db db.DBTX
}

func NewBookReadStore(db db.DBTX) *BookReadStore {
	return &BookReadStore{
		db: db,
	}
}

func (r *BookReadStore) FindAll(ctx context.Context) ([]*queries.BookView, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books b
		LEFT JOIN genres g ON g.id = b.genre_id
		WHERE b.deleted_at IS NULL
		ORDER BY b.title, b.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	views := make([]*queries.BookView, 0)
	for rows.Next() {
		view, err := scanBookView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read book rows", err)
	}

	return views, nil
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books b
		LEFT JOIN genres g ON g.id = b.genre_id
		WHERE b.id = $1 AND b.deleted_at IS NULL
	`

	view, err := scanBookView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}

	return view, nil
}

// FindManyByIDs returns only books that exist and are not soft-deleted; the
// caller compares the result against the requested ids.
func (r *BookReadStore) FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.BookView, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books b
		LEFT JOIN genres g ON g.id = b.genre_id
		WHERE b.id = ANY($1) AND b.deleted_at IS NULL
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find books by IDs", err)
	}
	defer rows.Close()

	views := make([]*queries.BookView, 0, len(ids))
	for rows.Next() {
		view, err := scanBookView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read book rows", err)
	}

	return views, nil
}

func scanBookView(row pgx.Row) (*queries.BookView, error) {
	var (
		view      queries.BookView
		price     pgtype.Numeric
		genreID   pgtype.UUID
		genreName pgtype.Text
	)
	err := row.Scan(
		&view.ID, &view.Title, &view.Author, &price, &view.Stock, &genreID, &genreName,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	priceValue, err := pgconv.Float64FromNumeric(price)
	if err != nil {
		return nil, err
	}
	view.Price = priceValue
	view.GenreID = pgconv.UUIDPtrFromPgtype(genreID)
	view.GenreName = pgconv.StringPtrFromPgtype(genreName)

	return &view, nil
}
