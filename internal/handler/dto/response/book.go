package response

import (
	"time"

	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateBookResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Price     float64    `json:"price"`
	Stock     int32      `json:"stock"`
	GenreID   *uuid.UUID `json:"genre_id,omitempty"`
	GenreName *string    `json:"genre_name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromBookView(view *queries.BookView) (*BookResponse, error) {
	var resp BookResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookViews(views []*queries.BookView) ([]*BookResponse, error) {
	resps := make([]*BookResponse, 0, len(views))
	for _, view := range views {
		resp, err := FromBookView(view)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}
