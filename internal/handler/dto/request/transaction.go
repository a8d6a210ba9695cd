package request

import (
	"bytes"
	"strconv"

	"bookstore-api/internal/domain/order"

	"github.com/google/uuid"
)

// Quantity accepts a JSON number or a numeric string but only an integral
// value makes it valid. Decoding never fails here: a bad quantity must be
// reported with the book id it belongs to, which only Lines knows.
type Quantity struct {
	value int32
	valid bool
}

// NewQuantity builds an already-decoded quantity. Valid here only means the
// value was an integer; positivity is checked when lines are built.
func NewQuantity(value int32) Quantity {
	return Quantity{value: value, valid: true}
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	q.valid = false

	raw := bytes.TrimSpace(data)
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}

	value, err := strconv.ParseInt(string(raw), 10, 32)
	if err != nil {
		return nil
	}

	q.value = int32(value)
	q.valid = true
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(int64(q.value), 10)), nil
}

type TransactionItem struct {
	BookID   uuid.UUID `json:"book_id" binding:"required"`
	Quantity Quantity  `json:"quantity"`
}

type CreateTransactionRequest struct {
	Items []TransactionItem `json:"items" binding:"required,min=1"`
}

// Lines normalizes the request into domain purchase lines. Quantities that
// did not decode to an integer, or decoded to zero or less, reject the whole
// request before any storage access.
func (r CreateTransactionRequest) Lines() (order.Lines, error) {
	items := make([]order.Line, 0, len(r.Items))
	for _, item := range r.Items {
		if !item.Quantity.valid {
			return nil, order.InvalidQuantityError{BookID: item.BookID}
		}
		line, err := order.NewLine(item.BookID, item.Quantity.value)
		if err != nil {
			return nil, err
		}
		items = append(items, line)
	}
	return order.NewLines(items)
}
