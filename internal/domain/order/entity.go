package order

import (
	"time"

	"github.com/google/uuid"
)

// Order is the committed purchase aggregate: header plus its lines.
type Order struct {
	id        uuid.UUID
	userID    uuid.UUID
	lines     []Line
	createdAt time.Time
}

func NewOrder(userID uuid.UUID, validated *ValidatedOrder, now time.Time) *Order {
	lines := make([]Line, len(validated.Lines))
	for i, l := range validated.Lines {
		lines[i] = Line{BookID: l.BookID, Quantity: l.Quantity}
	}
	return &Order{
		id:        uuid.New(),
		userID:    userID,
		lines:     lines,
		createdAt: now,
	}
}

func Reconstruct(id, userID uuid.UUID, lines []Line, createdAt time.Time) *Order {
	return &Order{id: id, userID: userID, lines: lines, createdAt: createdAt}
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) UserID() uuid.UUID    { return o.userID }
func (o *Order) Lines() []Line        { return o.lines }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
