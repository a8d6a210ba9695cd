package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookView represents read-optimized book data
type BookView struct {
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

// GenreView represents read-optimized genre data
type GenreView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// TransactionView represents read-optimized purchase data with its lines expanded
type TransactionView struct {
	ID            uuid.UUID             `json:"id"`
	UserID        uuid.UUID             `json:"user_id"`
	TotalQuantity int32                 `json:"total_quantity"`
	TotalPrice    float64               `json:"total_price"`
	CreatedAt     time.Time             `json:"created_at"`
	Items         []TransactionLineView `json:"items"`
}

type TransactionLineView struct {
	BookID    uuid.UUID `json:"book_id"`
	BookTitle string    `json:"book_title"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int32     `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
}

// StatisticsView represents aggregate sales figures across all transactions
type StatisticsView struct {
	TotalTransactions        int64   `json:"total_transactions"`
	AverageTransactionAmount float64 `json:"average_transaction_amount"`
	MostBookSalesGenre       string  `json:"most_book_sales_genre"`
	FewestBookSalesGenre     string  `json:"fewest_book_sales_genre"`
}
