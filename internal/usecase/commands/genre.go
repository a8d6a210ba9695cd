package commands

import (
	"context"

	"bookstore-api/internal/domain/genre"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrGenreAlreadyExists = errs.New("genre already exists")
	ErrGenreValidation    = errs.New("genre validation error")
)

type GenreCommands interface {
	Create(ctx context.Context, req reqdto.CreateGenreRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGenreRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type genreCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewGenreCommands(uow shared.UnitOfWork) GenreCommands {
	return &genreCommandsImpl{
		uow: uow,
	}
}

func (g *genreCommandsImpl) Create(ctx context.Context, req reqdto.CreateGenreRequest) (uuid.UUID, error) {
	genreEntity, err := genre.NewGenre(req.Name)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrGenreValidation)
	}

	var genreID uuid.UUID
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		genreID, err = tx.Genres().Create(ctx, tx.DB(), genreEntity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrGenreAlreadyExists
			}
			return errs.Mark(err, ErrTransactionFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return genreID, nil
}

func (g *genreCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGenreRequest) error {
	genreEntity, err := genre.Reconstruct(id, req.Name)
	if err != nil {
		return errs.Mark(err, ErrGenreValidation)
	}

	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Genres().Update(ctx, tx.DB(), genreEntity); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrGenreNotFound
			case infra.IsKind(err, infra.KindDuplicateKey):
				return ErrGenreAlreadyExists
			default:
				return errs.Mark(err, ErrTransactionFailed)
			}
		}
		return nil
	})
}

func (g *genreCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Genres().SoftDelete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGenreNotFound
			}
			return errs.Mark(err, ErrTransactionFailed)
		}
		return nil
	})
}
