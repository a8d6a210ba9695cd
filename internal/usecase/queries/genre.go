package queries

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGenreNotFound = errs.New("genre not found")
	ErrGenreQuery    = errs.New("genre query failed")
)

type GenreQueries interface {
	List(ctx context.Context) ([]*GenreView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GenreView, error)
}

type GenreReadStore interface {
	FindAll(ctx context.Context) ([]*GenreView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GenreView, error)
}

type genreQueriesImpl struct {
	readStore GenreReadStore
}

func NewGenreQueries(readStore GenreReadStore) GenreQueries {
	return &genreQueriesImpl{
		readStore: readStore,
	}
}

func (q *genreQueriesImpl) List(ctx context.Context) ([]*GenreView, error) {
	genres, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrGenreQuery)
	}
	return genres, nil
}

func (q *genreQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GenreView, error) {
	genre, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, errs.Mark(err, ErrGenreQuery)
	}
	return genre, nil
}
