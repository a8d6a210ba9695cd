package order

import (
	"fmt"

	"github.com/google/uuid"
)

// UnknownBookError reports a requested book id with no active catalog entry.
type UnknownBookError struct {
	BookID uuid.UUID
}

func (e UnknownBookError) Error() string {
	return fmt.Sprintf("book %s not found", e.BookID)
}

// InsufficientStockError reports the first line whose requested quantity
// exceeds the available stock.
type InsufficientStockError struct {
	BookID    uuid.UUID
	Title     string
	Available int32
	Requested int32
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: %d available, %d requested", e.Title, e.Available, e.Requested)
}

// BookStock is the catalog state a purchase is validated against.
type BookStock struct {
	ID    uuid.UUID
	Title string
	Price float64
	Stock int32
}

type ValidatedLine struct {
	BookID     uuid.UUID
	Title      string
	UnitPrice  float64
	Quantity   int32
	StockAfter int32
}

type ValidatedOrder struct {
	Lines         []ValidatedLine
	TotalQuantity int32
	TotalPrice    float64
}

// Validate checks a purchase against a stock snapshot without mutating anything.
// Snapshot freshness is the caller's concern: run it against reads taken inside
// the same transaction that applies the decrements.
func Validate(lines Lines, books []BookStock) (*ValidatedOrder, error) {
	byID := make(map[uuid.UUID]BookStock, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	validated := &ValidatedOrder{Lines: make([]ValidatedLine, 0, len(lines))}
	for _, line := range lines {
		book, ok := byID[line.BookID]
		if !ok {
			return nil, UnknownBookError{BookID: line.BookID}
		}
		if book.Stock < line.Quantity {
			return nil, InsufficientStockError{
				BookID:    book.ID,
				Title:     book.Title,
				Available: book.Stock,
				Requested: line.Quantity,
			}
		}
		validated.Lines = append(validated.Lines, ValidatedLine{
			BookID:     book.ID,
			Title:      book.Title,
			UnitPrice:  book.Price,
			Quantity:   line.Quantity,
			StockAfter: book.Stock - line.Quantity,
		})
		validated.TotalQuantity += line.Quantity
		validated.TotalPrice += book.Price * float64(line.Quantity)
	}
	return validated, nil
}
