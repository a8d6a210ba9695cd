package queries

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errs.New("transaction not found")
	ErrTransactionQuery    = errs.New("transaction query failed")
)

// UnknownGenreName buckets sales of books that have no genre.
const UnknownGenreName = "unknown genre"

// GenreSalesRow is one order line with its book's genre. Row order follows
// order creation so aggregation sees genres in insertion order.
type GenreSalesRow struct {
	GenreName *string
	Quantity  int32
}

type TransactionQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TransactionView, error)
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*TransactionView, error)
	Statistics(ctx context.Context) (*StatisticsView, error)
}

type TransactionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*TransactionView, error)
	CountAndRevenue(ctx context.Context, dbtx db.DBTX) (int64, float64, error)
	GenreSales(ctx context.Context, dbtx db.DBTX) ([]GenreSalesRow, error)
}

type transactionQueriesImpl struct {
	readStore TransactionReadStore
	uow       shared.UnitOfWork
}

func NewTransactionQueries(readStore TransactionReadStore, uow shared.UnitOfWork) TransactionQueries {
	return &transactionQueriesImpl{readStore: readStore, uow: uow}
}

func (q *transactionQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*TransactionView, error) {
	views, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionQuery)
	}
	return views, nil
}

// GetByID hides other users' transactions behind the same not-found error as a
// missing id, so ids cannot be probed.
func (q *transactionQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*TransactionView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, errs.Mark(err, ErrTransactionQuery)
	}
	if view.UserID != actorID {
		return nil, ErrTransactionNotFound
	}
	return view, nil
}

// Statistics reads its inputs in one read-only transaction so the totals and
// the per-genre rows describe the same set of orders.
func (q *transactionQueriesImpl) Statistics(ctx context.Context) (*StatisticsView, error) {
	var (
		total   int64
		revenue float64
		rows    []GenreSalesRow
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		total, revenue, err = q.readStore.CountAndRevenue(ctx, dbtx)
		if err != nil {
			return err
		}
		rows, err = q.readStore.GenreSales(ctx, dbtx)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionQuery)
	}

	stats := &StatisticsView{TotalTransactions: total}
	if total > 0 {
		stats.AverageTransactionAmount = revenue / float64(total)
	}
	stats.MostBookSalesGenre, stats.FewestBookSalesGenre = rankGenreSales(rows)
	return stats, nil
}

// rankGenreSales sums quantities per genre and picks both extremes. Ties
// resolve to the genre seen first in row order; genres with no sales never
// appear, so the fewest-sold genre is the weakest seller, not a zero seller.
func rankGenreSales(rows []GenreSalesRow) (most, fewest string) {
	totals := make(map[string]int64)
	names := make([]string, 0)
	for _, row := range rows {
		name := UnknownGenreName
		if row.GenreName != nil {
			name = *row.GenreName
		}
		if _, seen := totals[name]; !seen {
			names = append(names, name)
		}
		totals[name] += int64(row.Quantity)
	}
	if len(names) == 0 {
		return "", ""
	}

	most, fewest = names[0], names[0]
	for _, name := range names[1:] {
		if totals[name] > totals[most] {
			most = name
		}
		if totals[name] < totals[fewest] {
			fewest = name
		}
	}
	return most, fewest
}
