//go:build unit

package book_test

import (
	"strings"
	"testing"

	"bookstore-api/internal/domain/book"
	"bookstore-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookBuilder)
	errIs  error
}

func TestBook(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test Book", actual.Title())
		assert.Equal(t, "Test Author", actual.Author())
		assert.Equal(t, 10.0, actual.Price())
		assert.Equal(t, int32(5), actual.Stock())
		assert.NotNil(t, actual.GenreID())
	})

	t.Run("title validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "maximum length title",
				mutate: func(b *builder.BookBuilder) { b.WithTitle(strings.Repeat("a", book.MaxTitleLength)) },
			},
			{
				name:   "empty title",
				mutate: func(b *builder.BookBuilder) { b.WithTitle("") },
				errIs:  book.ErrEmptyTitle,
			},
			{
				name:   "whitespace only title",
				mutate: func(b *builder.BookBuilder) { b.WithTitle("   ") },
				errIs:  book.ErrEmptyTitle,
			},
			{
				name:   "title exceeds maximum length",
				mutate: func(b *builder.BookBuilder) { b.WithTitle(strings.Repeat("a", book.MaxTitleLength+1)) },
				errIs:  book.ErrTitleTooLong,
			},
		})
	})

	t.Run("author validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "maximum length author",
				mutate: func(b *builder.BookBuilder) { b.WithAuthor(strings.Repeat("a", book.MaxAuthorLength)) },
			},
			{
				name:   "empty author",
				mutate: func(b *builder.BookBuilder) { b.WithAuthor("") },
				errIs:  book.ErrEmptyAuthor,
			},
			{
				name:   "author exceeds maximum length",
				mutate: func(b *builder.BookBuilder) { b.WithAuthor(strings.Repeat("a", book.MaxAuthorLength+1)) },
				errIs:  book.ErrAuthorTooLong,
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.BookBuilder) { b.WithPrice(0) },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.BookBuilder) { b.WithPrice(-0.01) },
				errIs:  book.ErrNegativePrice,
			},
		})
	})

	t.Run("stock validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero stock",
				mutate: func(b *builder.BookBuilder) { b.OutOfStock() },
			},
			{
				name:   "negative stock",
				mutate: func(b *builder.BookBuilder) { b.WithStock(-1) },
				errIs:  book.ErrNegativeStock,
			},
		})
	})

	t.Run("genre is optional", func(t *testing.T) {
		actual, err := builder.NewBookBuilder().WithoutGenre().BuildDomain()
		require.NoError(t, err)

		assert.Nil(t, actual.GenreID())
	})

	t.Run("title and author trimming", func(t *testing.T) {
		actual, err := book.NewBook("  Dune  ", "  Frank Herbert  ", 12.0, 3, nil)
		require.NoError(t, err)

		assert.Equal(t, "Dune", actual.Title())
		assert.Equal(t, "Frank Herbert", actual.Author())
	})

	t.Run("reconstruct keeps the given id", func(t *testing.T) {
		id := uuid.New()
		actual, err := book.Reconstruct(id, "Dune", "Frank Herbert", 12.0, 3, nil)
		require.NoError(t, err)

		assert.Equal(t, id, actual.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
