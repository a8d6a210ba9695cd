package response

import (
	"time"

	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateTransactionResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	TotalQuantity int32     `json:"total_quantity"`
	TotalPrice    float64   `json:"total_price"`
}

type TransactionResponse struct {
	ID            uuid.UUID                 `json:"id"`
	UserID        uuid.UUID                 `json:"user_id"`
	TotalQuantity int32                     `json:"total_quantity"`
	TotalPrice    float64                   `json:"total_price"`
	CreatedAt     time.Time                 `json:"created_at"`
	Items         []TransactionItemResponse `json:"items"`
}

type TransactionItemResponse struct {
	BookID    uuid.UUID `json:"book_id"`
	BookTitle string    `json:"book_title"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int32     `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
}

type StatisticsResponse struct {
	TotalTransactions        int64   `json:"total_transactions"`
	AverageTransactionAmount float64 `json:"average_transaction_amount"`
	MostBookSalesGenre       string  `json:"most_book_sales_genre"`
	FewestBookSalesGenre     string  `json:"fewest_book_sales_genre"`
}

func FromCreateTransactionResult(result *commands.CreateTransactionResult) *CreateTransactionResponse {
	return &CreateTransactionResponse{
		TransactionID: result.TransactionID,
		TotalQuantity: result.TotalQuantity,
		TotalPrice:    result.TotalPrice,
	}
}

func FromTransactionView(view *queries.TransactionView) (*TransactionResponse, error) {
	var resp TransactionResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromTransactionViews(views []*queries.TransactionView) ([]*TransactionResponse, error) {
	resps := make([]*TransactionResponse, 0, len(views))
	for _, view := range views {
		resp, err := FromTransactionView(view)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}

func FromStatisticsView(view *queries.StatisticsView) *StatisticsResponse {
	return &StatisticsResponse{
		TotalTransactions:        view.TotalTransactions,
		AverageTransactionAmount: view.AverageTransactionAmount,
		MostBookSalesGenre:       view.MostBookSalesGenre,
		FewestBookSalesGenre:     view.FewestBookSalesGenre,
	}
}
