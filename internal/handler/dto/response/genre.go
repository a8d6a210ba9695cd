package response

import (
	"time"

	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateGenreResponse struct {
	ID uuid.UUID `json:"id"`
}

type GenreResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromGenreView(view *queries.GenreView) *GenreResponse {
	return &GenreResponse{
		ID:        view.ID,
		Name:      view.Name,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func FromGenreViews(views []*queries.GenreView) []*GenreResponse {
	resps := make([]*GenreResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromGenreView(view))
	}
	return resps
}
