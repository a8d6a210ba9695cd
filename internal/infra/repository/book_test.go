//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/repository"
	"bookstore-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Create Book Tests
// =============================================================================

func TestBookRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: book created successfully",
		},
		{
			name:       "error: database error occurs",
			execErr:    errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: genre foreign key violated",
			execErr:    &pgconn.PgError{Code: "23503", Message: "insert or update on table \"books\" violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dbtx := &stubDBTX{tag: pgconn.NewCommandTag("INSERT 0 1"), err: tc.execErr}
			repo := repository.NewBookRepository()

			domainBook, err := builder.NewBookBuilder().WithoutGenre().BuildDomain()
			require.NoError(t, err)

			bookID, actualErr := repo.Create(ctx, dbtx, domainBook)

			if tc.expectKind != "" {
				require.Error(t, actualErr)
				assert.True(t, infra.IsKind(actualErr, tc.expectKind), "expected kind [%v] but got [%v]", tc.expectKind, actualErr)
				assert.Equal(t, uuid.Nil, bookID, "bookID should be nil when error occurs")
			} else {
				require.NoError(t, actualErr)
				assert.Equal(t, domainBook.ID(), bookID)
			}
		})
	}
}

// =============================================================================
// Update Book Tests
// =============================================================================

func TestBookRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		tag        string
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: book updated successfully",
			tag:  "UPDATE 1",
		},
		{
			name:       "error: database error occurs",
			execErr:    errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: book not found or already deleted",
			tag:        "UPDATE 0",
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dbtx := &stubDBTX{tag: pgconn.NewCommandTag(tc.tag), err: tc.execErr}
			repo := repository.NewBookRepository()

			domainBook, err := builder.NewBookBuilder().WithoutGenre().BuildDomain()
			require.NoError(t, err)

			actualErr := repo.Update(ctx, dbtx, domainBook)

			if tc.expectKind != "" {
				require.Error(t, actualErr)
				assert.True(t, infra.IsKind(actualErr, tc.expectKind), "expected kind [%v] but got [%v]", tc.expectKind, actualErr)
			} else {
				require.NoError(t, actualErr)
			}
		})
	}
}

// =============================================================================
// Soft Delete Book Tests
// =============================================================================

func TestBookRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	testCases := []struct {
		name       string
		tag        string
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: book deleted successfully",
			tag:  "UPDATE 1",
		},
		{
			name:       "error: database error occurs",
			execErr:    errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: book not found or already deleted",
			tag:        "UPDATE 0",
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dbtx := &stubDBTX{tag: pgconn.NewCommandTag(tc.tag), err: tc.execErr}
			repo := repository.NewBookRepository()

			actualErr := repo.SoftDelete(ctx, dbtx, bookID)

			if tc.expectKind != "" {
				require.Error(t, actualErr)
				assert.True(t, infra.IsKind(actualErr, tc.expectKind), "expected kind [%v] but got [%v]", tc.expectKind, actualErr)
			} else {
				require.NoError(t, actualErr)
			}
		})
	}
}

// =============================================================================
// Decrement Stock Tests
// =============================================================================

func TestBookRepository_DecrementStock(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	testCases := []struct {
		name       string
		tag        string
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: stock decremented",
			tag:  "UPDATE 1",
		},
		{
			name:       "error: database error occurs",
			execErr:    errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "error: guarded update matched no row",
			tag:        "UPDATE 0",
			expectKind: infra.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dbtx := &stubDBTX{tag: pgconn.NewCommandTag(tc.tag), err: tc.execErr}
			repo := repository.NewBookRepository()

			actualErr := repo.DecrementStock(ctx, dbtx, bookID, 2)

			if tc.expectKind != "" {
				require.Error(t, actualErr)
				assert.True(t, infra.IsKind(actualErr, tc.expectKind), "expected kind [%v] but got [%v]", tc.expectKind, actualErr)
			} else {
				require.NoError(t, actualErr)
			}
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// stubDBTX scripts Exec outcomes so error translation can be exercised without
// a live connection. failAt makes only the Nth call fail (1-based); zero fails
// every call once err is set.
type stubDBTX struct {
	tag    pgconn.CommandTag
	err    error
	failAt int
	calls  int
}

func (s *stubDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.calls++
	if s.err != nil && (s.failAt == 0 || s.calls == s.failAt) {
		return pgconn.CommandTag{}, s.err
	}
	return s.tag, nil
}

func (s *stubDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("stubDBTX.Query was called unexpectedly")
}

func (s *stubDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("stubDBTX.QueryRow was called unexpectedly")
}
