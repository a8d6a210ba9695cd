package readstore

import (
	"context"
	"time"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/pgconv"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Order lines join books without the deleted_at filter: a purchased book must
// keep rendering in order history after it leaves the catalog.
const transactionColumns = `
	o.id, o.user_id, o.created_at, l.book_id, b.title, b.price, l.quantity
`

type TransactionReadStore struct {
	db db.DBTX
}

func NewTransactionReadStore(db db.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		db: db,
	}
}

func (r *TransactionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TransactionView, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		JOIN books b ON b.id = l.book_id
		WHERE o.id = $1
		ORDER BY l.book_id
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find transaction by ID", err)
	}
	defer rows.Close()

	views, err := collectTransactionViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan transaction rows", err)
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("transaction not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return views[0], nil
}

func (r *TransactionReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.TransactionView, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		JOIN books b ON b.id = l.book_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, o.id DESC, l.book_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	views, err := collectTransactionViews(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan transaction rows", err)
	}

	return views, nil
}

func (r *TransactionReadStore) CountAndRevenue(ctx context.Context, dbtx db.DBTX) (int64, float64, error) {
	const query = `
		SELECT COUNT(DISTINCT o.id), COALESCE(SUM(l.quantity * b.price), 0)
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		JOIN books b ON b.id = l.book_id
	`

	var (
		count   int64
		revenue pgtype.Numeric
	)
	if err := dbtx.QueryRow(ctx, query).Scan(&count, &revenue); err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count transactions", err)
	}

	revenueValue, err := pgconv.Float64FromNumeric(revenue)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to convert revenue", err)
	}

	return count, revenueValue, nil
}

// GenreSales returns one row per order line in order insertion order, so the
// caller's aggregation encounters genres in the order their sales happened.
func (r *TransactionReadStore) GenreSales(ctx context.Context, dbtx db.DBTX) ([]queries.GenreSalesRow, error) {
	const query = `
		SELECT g.name, l.quantity
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		JOIN books b ON b.id = l.book_id
		LEFT JOIN genres g ON g.id = b.genre_id
		ORDER BY o.created_at, o.id, l.book_id
	`

	rows, err := dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read genre sales", err)
	}
	defer rows.Close()

	results := make([]queries.GenreSalesRow, 0)
	for rows.Next() {
		var (
			name     pgtype.Text
			quantity int32
		)
		if err := rows.Scan(&name, &quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan genre sales row", err)
		}
		results = append(results, queries.GenreSalesRow{
			GenreName: pgconv.StringPtrFromPgtype(name),
			Quantity:  quantity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read genre sales rows", err)
	}

	return results, nil
}

func collectTransactionViews(rows pgx.Rows) ([]*queries.TransactionView, error) {
	views := make([]*queries.TransactionView, 0)

	var current *queries.TransactionView
	for rows.Next() {
		var (
			orderID   uuid.UUID
			userID    uuid.UUID
			createdAt time.Time
			bookID    uuid.UUID
			bookTitle string
			price     pgtype.Numeric
			quantity  int32
		)
		err := rows.Scan(&orderID, &userID, &createdAt, &bookID, &bookTitle, &price, &quantity)
		if err != nil {
			return nil, err
		}

		unitPrice, err := pgconv.Float64FromNumeric(price)
		if err != nil {
			return nil, err
		}

		// Rows are sorted by order first, so lines of one order are contiguous.
		if current == nil || current.ID != orderID {
			current = &queries.TransactionView{
				ID:        orderID,
				UserID:    userID,
				CreatedAt: createdAt,
				Items:     make([]queries.TransactionLineView, 0, 1),
			}
			views = append(views, current)
		}

		subtotal := unitPrice * float64(quantity)
		current.Items = append(current.Items, queries.TransactionLineView{
			BookID:    bookID,
			BookTitle: bookTitle,
			UnitPrice: unitPrice,
			Quantity:  quantity,
			Subtotal:  subtotal,
		})
		current.TotalQuantity += quantity
		current.TotalPrice += subtotal
	}

	return views, rows.Err()
}
