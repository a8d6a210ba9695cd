package order

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNoItems = errors.New("at least one item is required")

// InvalidQuantityError names the line whose quantity is not a positive integer.
type InvalidQuantityError struct {
	BookID uuid.UUID
}

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity for book %s", e.BookID)
}

// Line is a single requested purchase line.
type Line struct {
	BookID   uuid.UUID
	Quantity int32
}

func NewLine(bookID uuid.UUID, quantity int32) (Line, error) {
	if quantity <= 0 {
		return Line{}, InvalidQuantityError{BookID: bookID}
	}
	return Line{BookID: bookID, Quantity: quantity}, nil
}

// Lines is a normalized purchase request: non-empty, all quantities positive,
// duplicate book ids merged by summing, first-appearance order preserved.
type Lines []Line

func NewLines(items []Line) (Lines, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	merged := make([]Line, 0, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, InvalidQuantityError{BookID: item.BookID}
		}
		if i, ok := index[item.BookID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.BookID] = len(merged)
		merged = append(merged, item)
	}
	return Lines(merged), nil
}

func (ls Lines) BookIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(ls))
	for i, l := range ls {
		ids[i] = l.BookID
	}
	return ids
}
