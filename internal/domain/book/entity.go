package book

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("book title cannot be empty")
	ErrTitleTooLong  = errors.New("book title is too long (max 255 characters)")
	ErrEmptyAuthor   = errors.New("book author cannot be empty")
	ErrAuthorTooLong = errors.New("book author is too long (max 255 characters)")
	ErrNegativePrice = errors.New("book price cannot be negative")
	ErrNegativeStock = errors.New("book stock cannot be negative")
)

const (
	MaxTitleLength  = 255
	MaxAuthorLength = 255
)

type Book struct {
	id        uuid.UUID
	title     string
	author    string
	price     float64
	stock     int32
	genreID   *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewBook(title, author string, price float64, stock int32, genreID *uuid.UUID) (*Book, error) {
	if err := validateAttributes(title, author, price, stock); err != nil {
		return nil, err
	}

	return &Book{
		id:      uuid.New(),
		title:   strings.TrimSpace(title),
		author:  strings.TrimSpace(author),
		price:   price,
		stock:   stock,
		genreID: genreID,
	}, nil
}

// Reconstruct rebuilds an already-persisted book, revalidating its attributes.
func Reconstruct(id uuid.UUID, title, author string, price float64, stock int32, genreID *uuid.UUID) (*Book, error) {
	if err := validateAttributes(title, author, price, stock); err != nil {
		return nil, err
	}

	return &Book{
		id:      id,
		title:   strings.TrimSpace(title),
		author:  strings.TrimSpace(author),
		price:   price,
		stock:   stock,
		genreID: genreID,
	}, nil
}

func validateAttributes(title, author string, price float64, stock int32) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}

	author = strings.TrimSpace(author)
	if author == "" {
		return ErrEmptyAuthor
	}
	if len(author) > MaxAuthorLength {
		return ErrAuthorTooLong
	}

	if price < 0 {
		return ErrNegativePrice
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

func (b *Book) ID() uuid.UUID        { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) Price() float64       { return b.price }
func (b *Book) Stock() int32         { return b.stock }
func (b *Book) GenreID() *uuid.UUID  { return b.genreID }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }
