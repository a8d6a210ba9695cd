package commands

import (
	"context"
	"errors"

	"bookstore-api/internal/domain/order"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidItems      = errs.New("invalid purchase items")
	ErrBookNotFound      = errs.New("book not found")
	ErrInsufficientStock = errs.New("insufficient stock")
	ErrStockConflict     = errs.New("stock conflict")
	ErrTransactionFailed = errs.New("transaction failed")
)

type CreateTransactionResult struct {
	TransactionID uuid.UUID
	TotalQuantity int32
	TotalPrice    float64
}

type TransactionCommands interface {
	Create(ctx context.Context, req reqdto.CreateTransactionRequest, userID uuid.UUID) (*CreateTransactionResult, error)
}

type transactionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTransactionCommands(uow shared.UnitOfWork, clock clock.Clock) TransactionCommands {
	return &transactionCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// Create places an order for the requested items and decrements each book's
// stock in the same database transaction. Either the order row, all of its
// lines and all decrements become visible together, or none of them do.
func (t *transactionCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateTransactionRequest,
	userID uuid.UUID,
) (*CreateTransactionResult, error) {
	// Malformed input must be rejected before any storage access.
	lines, err := req.Lines()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidItems)
	}

	var result *CreateTransactionResult
	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		validated, err := t.validateAgainstStock(ctx, tx, lines)
		if err != nil {
			return err
		}

		orderEntity := order.NewOrder(userID, validated, t.clock.Now())
		orderID, err := tx.Orders().Create(ctx, tx.DB(), orderEntity)
		if err != nil {
			return errs.Mark(err, ErrTransactionFailed)
		}

		// Conditional decrement: zero rows means another transaction consumed
		// the stock after our snapshot, so the whole unit aborts.
		for _, line := range validated.Lines {
			if err := tx.Books().DecrementStock(ctx, tx.DB(), line.BookID, line.Quantity); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return errs.Mark(err, ErrStockConflict)
				}
				return errs.Mark(err, ErrTransactionFailed)
			}
		}

		result = &CreateTransactionResult{
			TransactionID: orderID,
			TotalQuantity: validated.TotalQuantity,
			TotalPrice:    validated.TotalPrice,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (t *transactionCommandsImpl) validateAgainstStock(
	ctx context.Context,
	tx shared.Tx,
	lines order.Lines,
) (*order.ValidatedOrder, error) {
	snapshots, err := tx.Reads().BooksForPurchase(ctx, lines.BookIDs())
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionFailed)
	}

	books := make([]order.BookStock, 0, len(snapshots))
	for _, s := range snapshots {
		books = append(books, order.BookStock{
			ID:    s.ID,
			Title: s.Title,
			Price: s.Price,
			Stock: s.Stock,
		})
	}

	validated, err := order.Validate(lines, books)
	if err != nil {
		var unknownBook order.UnknownBookError
		if errors.As(err, &unknownBook) {
			return nil, errs.Mark(err, ErrBookNotFound)
		}
		var insufficientStock order.InsufficientStockError
		if errors.As(err, &insufficientStock) {
			return nil, errs.Mark(err, ErrInsufficientStock)
		}
		return nil, errs.Mark(err, ErrInvalidItems)
	}

	return validated, nil
}
