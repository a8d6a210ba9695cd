package commands

import (
	"context"

	"bookstore-api/internal/domain/book"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/patch"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrGenreNotFound  = errs.New("genre not found")
	ErrBookValidation = errs.New("book validation error")
)

type BookCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookCommands(uow shared.UnitOfWork) BookCommands {
	return &bookCommandsImpl{
		uow: uow,
	}
}

func (b *bookCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookRequest) (uuid.UUID, error) {
	var bookID uuid.UUID
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := b.ensureGenreExists(ctx, tx, req.GenreID); err != nil {
			return err
		}

		bookEntity, err := book.NewBook(req.Title, req.Author, req.Price, req.Stock, req.GenreID)
		if err != nil {
			return errs.Mark(err, ErrBookValidation)
		}

		bookID, err = tx.Books().Create(ctx, tx.DB(), bookEntity)
		if err != nil {
			return errs.Mark(err, ErrTransactionFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return bookID, nil
}

// Update applies a partial update: absent fields keep their stored value.
// Stock set here is an administrative correction; purchases never go through
// this path.
func (b *bookCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookRequest) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().BookByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookNotFound
			}
			return errs.Mark(err, ErrTransactionFailed)
		}

		genreID := current.GenreID
		if req.GenreID != nil {
			if err := b.ensureGenreExists(ctx, tx, req.GenreID); err != nil {
				return err
			}
			genreID = req.GenreID
		}

		bookEntity, err := book.Reconstruct(
			current.ID,
			patch.Coalesce(req.Title, current.Title),
			patch.Coalesce(req.Author, current.Author),
			patch.Coalesce(req.Price, current.Price),
			patch.Coalesce(req.Stock, current.Stock),
			genreID,
		)
		if err != nil {
			return errs.Mark(err, ErrBookValidation)
		}

		if err := tx.Books().Update(ctx, tx.DB(), bookEntity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookNotFound
			}
			return errs.Mark(err, ErrTransactionFailed)
		}
		return nil
	})
}

func (b *bookCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Books().SoftDelete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookNotFound
			}
			return errs.Mark(err, ErrTransactionFailed)
		}
		return nil
	})
}

func (b *bookCommandsImpl) ensureGenreExists(ctx context.Context, tx shared.Tx, genreID *uuid.UUID) error {
	if genreID == nil {
		return nil
	}
	if _, err := tx.Reads().GenreByID(ctx, *genreID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrGenreNotFound
		}
		return errs.Mark(err, ErrTransactionFailed)
	}
	return nil
}
