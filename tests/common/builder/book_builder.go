//go:build unit || e2e

package builder

import (
	"time"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/order"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	ID        uuid.UUID
	Title     string
	Author    string
	Price     float64
	Stock     int32
	GenreID   *uuid.UUID
	GenreName *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookBuilder() *BookBuilder {
	now := time.Now()
	genreID := uuid.New()
	genreName := "Fiction"
	return &BookBuilder{
		ID:        uuid.New(),
		Title:     "Test Book",
		Author:    "Test Author",
		Price:     10.0,
		Stock:     5,
		GenreID:   &genreID,
		GenreName: &genreName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	return book.NewBook(b.Title, b.Author, b.Price, b.Stock, b.GenreID)
}

func (b *BookBuilder) BuildCreateRequestDTO() reqdto.CreateBookRequest {
	return reqdto.CreateBookRequest{
		Title:   b.Title,
		Author:  b.Author,
		Price:   b.Price,
		Stock:   b.Stock,
		GenreID: b.GenreID,
	}
}

func (b *BookBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookRequest {
	title := b.Title
	author := b.Author
	price := b.Price
	stock := b.Stock
	return reqdto.UpdateBookRequest{
		Title:   &title,
		Author:  &author,
		Price:   &price,
		Stock:   &stock,
		GenreID: b.GenreID,
	}
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Price:     b.Price,
		Stock:     b.Stock,
		GenreID:   b.GenreID,
		GenreName: b.GenreName,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BuildStock is the catalog snapshot shape purchase validation runs against.
func (b *BookBuilder) BuildStock() order.BookStock {
	return order.BookStock{
		ID:    b.ID,
		Title: b.Title,
		Price: b.Price,
		Stock: b.Stock,
	}
}

// Fluent builder methods
func (b *BookBuilder) WithID(id uuid.UUID) *BookBuilder {
	b.ID = id
	return b
}

func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.Title = title
	return b
}

func (b *BookBuilder) WithAuthor(author string) *BookBuilder {
	b.Author = author
	return b
}

func (b *BookBuilder) WithPrice(price float64) *BookBuilder {
	b.Price = price
	return b
}

func (b *BookBuilder) WithStock(stock int32) *BookBuilder {
	b.Stock = stock
	return b
}

func (b *BookBuilder) WithGenreID(genreID *uuid.UUID) *BookBuilder {
	b.GenreID = genreID
	return b
}

func (b *BookBuilder) WithGenreName(name string) *BookBuilder {
	b.GenreName = &name
	return b
}

func (b *BookBuilder) WithoutGenre() *BookBuilder {
	b.GenreID = nil
	b.GenreName = nil
	return b
}

func (b *BookBuilder) OutOfStock() *BookBuilder {
	b.Stock = 0
	return b
}
