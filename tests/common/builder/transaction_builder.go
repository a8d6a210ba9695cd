//go:build unit || e2e

package builder

import (
	"time"

	"bookstore-api/internal/domain/order"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// TransactionItemSpec is one purchase line with the catalog data needed to
// derive views and totals from it.
type TransactionItemSpec struct {
	BookID    uuid.UUID
	BookTitle string
	UnitPrice float64
	Quantity  int32
}

type TransactionBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []TransactionItemSpec
	CreatedAt time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Items: []TransactionItemSpec{
			{BookID: uuid.New(), BookTitle: "Test Book", UnitPrice: 10.0, Quantity: 2},
		},
		CreatedAt: time.Now(),
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

func (b *TransactionBuilder) totalQuantity() int32 {
	var total int32
	for _, item := range b.Items {
		total += item.Quantity
	}
	return total
}

func (b *TransactionBuilder) totalPrice() float64 {
	var total float64
	for _, item := range b.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Build methods
func (b *TransactionBuilder) BuildCreateRequestDTO() reqdto.CreateTransactionRequest {
	items := make([]reqdto.TransactionItem, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, reqdto.TransactionItem{
			BookID:   item.BookID,
			Quantity: reqdto.NewQuantity(item.Quantity),
		})
	}
	return reqdto.CreateTransactionRequest{Items: items}
}

func (b *TransactionBuilder) BuildLines() (order.Lines, error) {
	items := make([]order.Line, 0, len(b.Items))
	for _, item := range b.Items {
		line, err := order.NewLine(item.BookID, item.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, line)
	}
	return order.NewLines(items)
}

func (b *TransactionBuilder) BuildResult() *commands.CreateTransactionResult {
	return &commands.CreateTransactionResult{
		TransactionID: b.ID,
		TotalQuantity: b.totalQuantity(),
		TotalPrice:    b.totalPrice(),
	}
}

func (b *TransactionBuilder) BuildView() *queries.TransactionView {
	lines := make([]queries.TransactionLineView, 0, len(b.Items))
	for _, item := range b.Items {
		lines = append(lines, queries.TransactionLineView{
			BookID:    item.BookID,
			BookTitle: item.BookTitle,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.UnitPrice * float64(item.Quantity),
		})
	}
	return &queries.TransactionView{
		ID:            b.ID,
		UserID:        b.UserID,
		TotalQuantity: b.totalQuantity(),
		TotalPrice:    b.totalPrice(),
		CreatedAt:     b.CreatedAt,
		Items:         lines,
	}
}

// Fluent builder methods
func (b *TransactionBuilder) WithID(id uuid.UUID) *TransactionBuilder {
	b.ID = id
	return b
}

func (b *TransactionBuilder) WithUserID(userID uuid.UUID) *TransactionBuilder {
	b.UserID = userID
	return b
}

func (b *TransactionBuilder) WithItems(items ...TransactionItemSpec) *TransactionBuilder {
	b.Items = items
	return b
}

func (b *TransactionBuilder) WithItem(bookID uuid.UUID, quantity int32) *TransactionBuilder {
	b.Items = append(b.Items, TransactionItemSpec{
		BookID:    bookID,
		BookTitle: "Test Book",
		UnitPrice: 10.0,
		Quantity:  quantity,
	})
	return b
}

func (b *TransactionBuilder) WithCreatedAt(createdAt time.Time) *TransactionBuilder {
	b.CreatedAt = createdAt
	return b
}
