package shared

import (
	"context"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/genre"
	"bookstore-api/internal/domain/order"
	"bookstore-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Books() BookRepository
	Genres() GenreRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BooksForPurchase(ctx context.Context, ids []uuid.UUID) ([]BookSnapshot, error)
	BookByID(ctx context.Context, id uuid.UUID) (*BookSnapshot, error)
	GenreByID(ctx context.Context, id uuid.UUID) (*GenreSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
}

type BookRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *book.Book) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, b *book.Book) error
	SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// DecrementStock applies stock = stock - quantity only while the book stays
	// active and the remaining stock is sufficient; a lost race surfaces as
	// KindConflict.
	DecrementStock(ctx context.Context, tx db.DBTX, bookID uuid.UUID, quantity int32) error
}

type GenreRepository interface {
	Create(ctx context.Context, tx db.DBTX, g *genre.Genre) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, g *genre.Genre) error
	SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Role         string
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx db.DBTX, params CreateUserParams) (uuid.UUID, error)
}
