package queries

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound = errs.New("book not found")
	ErrBookQuery    = errs.New("book query failed")
)

type BookQueries interface {
	List(ctx context.Context) ([]*BookView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookView, error)
}

type BookReadStore interface {
	FindAll(ctx context.Context) ([]*BookView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
}

type bookQueriesImpl struct {
	readStore BookReadStore
}

func NewBookQueries(readStore BookReadStore) BookQueries {
	return &bookQueriesImpl{
		readStore: readStore,
	}
}

func (q *bookQueriesImpl) List(ctx context.Context) ([]*BookView, error) {
	books, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrBookQuery)
	}
	return books, nil
}

func (q *bookQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookView, error) {
	book, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Mark(err, ErrBookQuery)
	}
	return book, nil
}
