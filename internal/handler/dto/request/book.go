package request

import (
	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Title   string     `json:"title" binding:"required,max=255"`
	Author  string     `json:"author" binding:"required,max=255"`
	Price   float64    `json:"price" binding:"min=0"`
	Stock   int32      `json:"stock" binding:"min=0"`
	GenreID *uuid.UUID `json:"genre_id,omitempty"`
}

// UpdateBookRequest applies partially: nil fields keep their stored value.
type UpdateBookRequest struct {
	Title   *string    `json:"title,omitempty" binding:"omitempty,max=255"`
	Author  *string    `json:"author,omitempty" binding:"omitempty,max=255"`
	Price   *float64   `json:"price,omitempty" binding:"omitempty,min=0"`
	Stock   *int32     `json:"stock,omitempty" binding:"omitempty,min=0"`
	GenreID *uuid.UUID `json:"genre_id,omitempty"`
}
