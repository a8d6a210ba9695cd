//go:build unit || e2e

package builder

import (
	"time"

	"bookstore-api/internal/domain/genre"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GenreBuilder struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewGenreBuilder() *GenreBuilder {
	now := time.Now()
	return &GenreBuilder{
		ID:        uuid.New(),
		Name:      "Fiction",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (g *GenreBuilder) With(mutate func(*GenreBuilder)) *GenreBuilder {
	mutate(g)
	return g
}

// Build methods
func (g *GenreBuilder) BuildDomain() (*genre.Genre, error) {
	return genre.NewGenre(g.Name)
}

func (g *GenreBuilder) BuildCreateRequestDTO() reqdto.CreateGenreRequest {
	return reqdto.CreateGenreRequest{Name: g.Name}
}

func (g *GenreBuilder) BuildUpdateRequestDTO() reqdto.UpdateGenreRequest {
	return reqdto.UpdateGenreRequest{Name: g.Name}
}

func (g *GenreBuilder) BuildView() *queries.GenreView {
	return &queries.GenreView{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// Fluent builder methods
func (g *GenreBuilder) WithID(id uuid.UUID) *GenreBuilder {
	g.ID = id
	return g
}

func (g *GenreBuilder) WithName(name string) *GenreBuilder {
	g.Name = name
	return g
}
