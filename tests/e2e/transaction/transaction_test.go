//go:build e2e

package transaction_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	gohttptest "net/http/httptest"
	"sync"
	"testing"

	"bookstore-api/internal/domain/user"
	"bookstore-api/internal/handler/dto/response"
	"bookstore-api/tests/common/authtest"
	"bookstore-api/tests/common/builder"
	"bookstore-api/tests/common/dbtest"
	"bookstore-api/tests/common/httptest"
	"bookstore-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	transactionsURL = "/api/transactions"
	statisticsURL   = "/api/transactions/statistics"
)

type createEnvelope struct {
	Success bool                               `json:"success"`
	Message string                             `json:"message"`
	Data    response.CreateTransactionResponse `json:"data"`
}

type detailEnvelope struct {
	Data response.TransactionResponse `json:"data"`
}

type listEnvelope struct {
	Data []response.TransactionResponse `json:"data"`
}

type statsEnvelope struct {
	Data response.StatisticsResponse `json:"data"`
}

type transactionSuite struct {
	e2e.SharedSuite
}

func TestTransactionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(transactionSuite))
}

func (s *transactionSuite) bookStock(bookID uuid.UUID) int32 {
	var stock int32
	err := s.DB.QueryRow(s.T().Context(), "SELECT stock FROM books WHERE id = $1", bookID).Scan(&stock)
	require.NoError(s.T(), err)
	return stock
}

func (s *transactionSuite) orderCount() int64 {
	var count int64
	err := s.DB.QueryRow(s.T().Context(), "SELECT COUNT(*) FROM orders").Scan(&count)
	require.NoError(s.T(), err)
	return count
}

func (s *transactionSuite) TestCreateTransaction() {
	s.Run("Normal case: multi-item purchase commits order and decrements stock", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "buyer@example.com", string(user.RoleCustomer))
		genreID := dbtest.CreateTestGenre(t, s.DB, "Programming")
		book1 := dbtest.CreateTestBook(t, s.DB, "The Go Programming Language", "Donovan", 12.5, 10, &genreID)
		book2 := dbtest.CreateTestBook(t, s.DB, "Designing Data-Intensive Applications", "Kleppmann", 20.0, 5, &genreID)

		token := authtest.LoginUser(t, s.Router, "buyer@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: book1, Quantity: 2},
			builder.TransactionItemSpec{BookID: book2, Quantity: 3},
		).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created createEnvelope
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.True(t, created.Success)
		require.NotEqual(t, uuid.Nil, created.Data.TransactionID)
		require.Equal(t, int32(5), created.Data.TotalQuantity)
		require.InDelta(t, 85.0, created.Data.TotalPrice, 1e-9)

		// Both decrements committed together with the order
		require.Equal(t, int32(8), s.bookStock(book1))
		require.Equal(t, int32(2), s.bookStock(book2))

		// Read back the detail and compare the whole view
		detailURL := transactionsURL + "/" + created.Data.TransactionID.String()
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail detailEnvelope
		err = httptest.DecodeResponseBody(t, dw.Body, &detail)
		require.NoError(t, err)

		expected := response.TransactionResponse{
			ID:            created.Data.TransactionID,
			TotalQuantity: 5,
			TotalPrice:    85.0,
			Items: []response.TransactionItemResponse{
				{BookID: book1, BookTitle: "The Go Programming Language", UnitPrice: 12.5, Quantity: 2, Subtotal: 25.0},
				{BookID: book2, BookTitle: "Designing Data-Intensive Applications", UnitPrice: 20.0, Quantity: 3, Subtotal: 60.0},
			},
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.TransactionResponse{}, "UserID", "CreatedAt"),
			cmpopts.SortSlices(func(a, b response.TransactionItemResponse) bool {
				return a.BookID.String() < b.BookID.String()
			}),
		}
		if diff := cmp.Diff(expected, detail.Data, opts...); diff != "" {
			t.Errorf("Transaction detail mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: duplicate book ids are merged into one line", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "merger@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "Clean Architecture", "Martin", 30.0, 10, nil)

		token := authtest.LoginUser(t, s.Router, "merger@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: bookID, Quantity: 1},
			builder.TransactionItemSpec{BookID: bookID, Quantity: 2},
		).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created createEnvelope
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Equal(t, int32(3), created.Data.TotalQuantity)

		var lineCount int64
		var lineQuantity int32
		err = s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*), COALESCE(SUM(quantity), 0) FROM order_lines WHERE order_id = $1",
			created.Data.TransactionID).Scan(&lineCount, &lineQuantity)
		require.NoError(t, err)
		require.Equal(t, int64(1), lineCount, "duplicate ids should collapse into a single line")
		require.Equal(t, int32(3), lineQuantity)
		require.Equal(t, int32(7), s.bookStock(bookID))
	})

	s.Run("Normal case: buying the entire stock leaves zero, the next attempt conflicts", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "lastcopy@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "Rare First Edition", "Unknown", 99.9, 5, nil)

		token := authtest.LoginUser(t, s.Router, "lastcopy@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: bookID, Quantity: 5},
		).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Equal(t, int32(0), s.bookStock(bookID))

		again := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: bookID, Quantity: 1},
		).BuildCreateRequestDTO()

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, again, token)
		httptest.AssertErrorResponse(t, w2, http.StatusConflict,
			`Insufficient stock for "Rare First Edition": 0 available, 1 requested`)
	})

	s.Run("Error case: unknown book returns 404 and nothing persists", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "ghosthunter@example.com", string(user.RoleCustomer))
		token := authtest.LoginUser(t, s.Router, "ghosthunter@example.com", "password123")

		ghostID := uuid.New()
		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: ghostID, Quantity: 1},
		).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound,
			fmt.Sprintf("Book %s not found or inactive", ghostID))
		require.Equal(t, int64(0), s.orderCount())
	})

	s.Run("Error case: soft-deleted book is treated as unknown", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "archivist@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "Withdrawn Title", "Gone", 10.0, 10, nil)
		_, err := s.DB.Exec(t.Context(), "UPDATE books SET deleted_at = now() WHERE id = $1", bookID)
		require.NoError(t, err)

		token := authtest.LoginUser(t, s.Router, "archivist@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: bookID, Quantity: 1},
		).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, int64(0), s.orderCount())
		require.Equal(t, int32(10), s.bookStock(bookID))
	})

	s.Run("Error case: insufficient stock names the book and the shortfall", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "greedy@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "Scarce Volume", "Few", 15.0, 3, nil)

		token := authtest.LoginUser(t, s.Router, "greedy@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: bookID, Quantity: 5},
		).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict,
			`Insufficient stock for "Scarce Volume": 3 available, 5 requested`)

		require.Equal(t, int64(0), s.orderCount())
		require.Equal(t, int32(3), s.bookStock(bookID))
	})

	s.Run("Error case: one failing line rolls back every line", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "mixedcart@example.com", string(user.RoleCustomer))
		plenty := dbtest.CreateTestBook(t, s.DB, "Plenty In Stock", "Author A", 10.0, 10, nil)
		scarce := dbtest.CreateTestBook(t, s.DB, "Nearly Gone", "Author B", 10.0, 1, nil)

		token := authtest.LoginUser(t, s.Router, "mixedcart@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: plenty, Quantity: 2},
			builder.TransactionItemSpec{BookID: scarce, Quantity: 5},
		).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code)

		// No order and no stock mutation survives, including the valid line
		require.Equal(t, int64(0), s.orderCount())
		require.Equal(t, int32(10), s.bookStock(plenty))
		require.Equal(t, int32(1), s.bookStock(scarce))
	})

	s.Run("Error case: invalid quantities are rejected before any storage access", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "typo@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "Fragile Inventory", "Author", 10.0, 10, nil)

		token := authtest.LoginUser(t, s.Router, "typo@example.com", "password123")

		tests := []struct {
			name           string
			quantity       any
			expectedStatus int
		}{
			{name: "zero quantity", quantity: 0, expectedStatus: http.StatusBadRequest},
			{name: "negative quantity", quantity: -1, expectedStatus: http.StatusBadRequest},
			{name: "fractional quantity", quantity: 1.5, expectedStatus: http.StatusBadRequest},
			{name: "non-numeric quantity", quantity: "abc", expectedStatus: http.StatusBadRequest},
			{name: "numeric string is coerced", quantity: "2", expectedStatus: http.StatusCreated},
		}

		for _, tt := range tests {
			body := map[string]any{
				"items": []map[string]any{
					{"book_id": bookID.String(), "quantity": tt.quantity},
				},
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, body, token)
			require.Equal(t, tt.expectedStatus, w.Code, "%s: %s", tt.name, w.Body.String())

			if tt.expectedStatus == http.StatusBadRequest {
				httptest.AssertErrorResponse(t, w, http.StatusBadRequest,
					"Invalid quantity for book "+bookID.String())
			}
		}

		// Only the coerced "2" touched the inventory
		require.Equal(t, int32(8), s.bookStock(bookID))
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		reqBody := builder.NewTransactionBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *transactionSuite) TestConcurrentTransactions() {
	s.Run("Concurrency: demand above stock admits exactly floor(stock/qty) orders", func() {
		t := s.T()

		const (
			initialStock = int32(10)
			quantity     = int32(3)
			buyers       = 8
		)
		expectedWinners := int(initialStock / quantity)

		dbtest.CreateTestUser(t, s.DB, "swarm@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "Limited Print Run", "Hot Author", 25.0, initialStock, nil)

		token := authtest.LoginUser(t, s.Router, "swarm@example.com", "password123")

		body, err := json.Marshal(map[string]any{
			"items": []map[string]any{{"book_id": bookID.String(), "quantity": quantity}},
		})
		require.NoError(t, err)

		// No testify assertions inside the goroutines; statuses are
		// collected and judged after the barrier.
		codes := make([]int, buyers)
		var wg sync.WaitGroup
		for i := range buyers {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				req := gohttptest.NewRequest(http.MethodPost, transactionsURL, bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				rec := gohttptest.NewRecorder()
				s.Router.ServeHTTP(rec, req)
				codes[idx] = rec.Code
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				succeeded++
			case http.StatusConflict, http.StatusInternalServerError:
				// Losers see the shortfall either at validation or at the
				// conditional decrement; both end with a clean abort.
			default:
				t.Errorf("unexpected status %d in concurrent purchase", code)
			}
		}

		require.Equal(t, expectedWinners, succeeded, "exactly floor(stock/qty) orders may commit")
		require.Equal(t, initialStock-int32(expectedWinners)*quantity, s.bookStock(bookID))
		require.Equal(t, int64(expectedWinners), s.orderCount())

		var soldUnits int32
		err = s.DB.QueryRow(t.Context(), "SELECT COALESCE(SUM(quantity), 0) FROM order_lines").Scan(&soldUnits)
		require.NoError(t, err)
		require.Equal(t, int32(expectedWinners)*quantity, soldUnits)
	})

	s.Run("Concurrency: two orders racing for the last copy admit exactly one", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "racer@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "The Last Copy", "Author", 18.0, 1, nil)

		token := authtest.LoginUser(t, s.Router, "racer@example.com", "password123")

		body, err := json.Marshal(map[string]any{
			"items": []map[string]any{{"book_id": bookID.String(), "quantity": 1}},
		})
		require.NoError(t, err)

		codes := make([]int, 2)
		var wg sync.WaitGroup
		for i := range 2 {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				req := gohttptest.NewRequest(http.MethodPost, transactionsURL, bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				rec := gohttptest.NewRecorder()
				s.Router.ServeHTTP(rec, req)
				codes[idx] = rec.Code
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				succeeded++
			}
		}
		require.Equal(t, 1, succeeded, "only one racer may take the last copy")
		require.Equal(t, int32(0), s.bookStock(bookID))
		require.Equal(t, int64(1), s.orderCount())
	})
}

func (s *transactionSuite) TestListTransactions() {
	s.Run("Normal case: own transactions listed newest first with matching totals", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "historian@example.com", string(user.RoleCustomer))
		book1 := dbtest.CreateTestBook(t, s.DB, "First Purchase", "Author", 10.0, 10, nil)
		book2 := dbtest.CreateTestBook(t, s.DB, "Second Purchase", "Author", 20.0, 10, nil)

		token := authtest.LoginUser(t, s.Router, "historian@example.com", "password123")

		first := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: book1, Quantity: 1},
		).BuildCreateRequestDTO()
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, first, token)
		require.Equal(t, http.StatusCreated, w1.Code)
		var created1 createEnvelope
		err := httptest.DecodeResponseBody(t, w1.Body, &created1)
		require.NoError(t, err)

		second := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: book2, Quantity: 2},
		).BuildCreateRequestDTO()
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, second, token)
		require.Equal(t, http.StatusCreated, w2.Code)
		var created2 createEnvelope
		err = httptest.DecodeResponseBody(t, w2.Body, &created2)
		require.NoError(t, err)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, transactionsURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)

		var list listEnvelope
		err = httptest.DecodeResponseBody(t, lw.Body, &list)
		require.NoError(t, err)
		require.Len(t, list.Data, 2)

		// Newest first
		require.Equal(t, created2.Data.TransactionID, list.Data[0].ID)
		require.Equal(t, created1.Data.TransactionID, list.Data[1].ID)

		// Totals in the list match what creation reported
		require.Equal(t, created2.Data.TotalQuantity, list.Data[0].TotalQuantity)
		require.InDelta(t, created2.Data.TotalPrice, list.Data[0].TotalPrice, 1e-9)
		require.Equal(t, created1.Data.TotalQuantity, list.Data[1].TotalQuantity)
		require.InDelta(t, created1.Data.TotalPrice, list.Data[1].TotalPrice, 1e-9)
	})

	s.Run("Normal case: other users' transactions never appear", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "alice@example.com", string(user.RoleCustomer))
		dbtest.CreateTestUser(t, s.DB, "bob@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "Shared Interest", "Author", 10.0, 10, nil)

		aliceToken := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")
		bobToken := authtest.LoginUser(t, s.Router, "bob@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: bookID, Quantity: 1},
		).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, transactionsURL, nil, bobToken)
		require.Equal(t, http.StatusOK, lw.Code)

		var list listEnvelope
		err := httptest.DecodeResponseBody(t, lw.Body, &list)
		require.NoError(t, err)
		require.Empty(t, list.Data, "Bob must not see Alice's purchases")
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, transactionsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *transactionSuite) TestGetTransaction() {
	s.Run("Error case: another user's transaction reads as not found", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleCustomer))
		dbtest.CreateTestUser(t, s.DB, "intruder@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "Private Order", "Author", 10.0, 10, nil)

		ownerToken := authtest.LoginUser(t, s.Router, "owner@example.com", "password123")
		intruderToken := authtest.LoginUser(t, s.Router, "intruder@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: bookID, Quantity: 1},
		).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created createEnvelope
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		detailURL := transactionsURL + "/" + created.Data.TransactionID.String()

		// Owner sees it
		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, ow.Code)

		// The intruder gets the same answer as for a nonexistent id
		iw := httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, intruderToken)
		httptest.AssertErrorResponse(t, iw, http.StatusNotFound, "Transaction not found")
	})

	s.Run("Error case: nonexistent id returns 404", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "seeker@example.com", string(user.RoleCustomer))
		token := authtest.LoginUser(t, s.Router, "seeker@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, transactionsURL+"/"+uuid.NewString(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Transaction not found")
	})

	s.Run("Error case: malformed id returns 400", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "fumble@example.com", string(user.RoleCustomer))
		token := authtest.LoginUser(t, s.Router, "fumble@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, transactionsURL+"/not-a-uuid", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid transaction id")
	})

	s.Run("Normal case: deleted book still renders in order history", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "nostalgic@example.com", string(user.RoleCustomer))
		bookID := dbtest.CreateTestBook(t, s.DB, "Soon To Vanish", "Author", 12.0, 10, nil)

		token := authtest.LoginUser(t, s.Router, "nostalgic@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: bookID, Quantity: 2},
		).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created createEnvelope
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)

		// Remove the book from the catalog afterwards
		_, err = s.DB.Exec(t.Context(), "UPDATE books SET deleted_at = now() WHERE id = $1", bookID)
		require.NoError(t, err)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			transactionsURL+"/"+created.Data.TransactionID.String(), nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var detail detailEnvelope
		err = httptest.DecodeResponseBody(t, dw.Body, &detail)
		require.NoError(t, err)
		require.Len(t, detail.Data.Items, 1)
		require.Equal(t, "Soon To Vanish", detail.Data.Items[0].BookTitle)
	})
}

func (s *transactionSuite) TestStatistics() {
	s.Run("Normal case: two purchases produce the expected aggregates", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "analyst@example.com", string(user.RoleCustomer))
		fictionID := dbtest.CreateTestGenre(t, s.DB, "Fiction")
		scienceID := dbtest.CreateTestGenre(t, s.DB, "Science")
		fictionBook := dbtest.CreateTestBook(t, s.DB, "A Novel", "Novelist", 5.0, 10, &fictionID)
		scienceBook := dbtest.CreateTestBook(t, s.DB, "A Textbook", "Professor", 7.5, 10, &scienceID)

		token := authtest.LoginUser(t, s.Router, "analyst@example.com", "password123")

		// 3 x 7.5 = 22.5
		first := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: scienceBook, Quantity: 3},
		).BuildCreateRequestDTO()
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, first, token)
		require.Equal(t, http.StatusCreated, w1.Code)

		// 1 x 5.0 + 1 x 7.5 = 12.5
		second := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: fictionBook, Quantity: 1},
			builder.TransactionItemSpec{BookID: scienceBook, Quantity: 1},
		).BuildCreateRequestDTO()
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, second, token)
		require.Equal(t, http.StatusCreated, w2.Code)

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, statisticsURL, nil, token)
		require.Equal(t, http.StatusOK, sw.Code)

		var stats statsEnvelope
		err := httptest.DecodeResponseBody(t, sw.Body, &stats)
		require.NoError(t, err)
		require.Equal(t, int64(2), stats.Data.TotalTransactions)
		require.InDelta(t, 17.5, stats.Data.AverageTransactionAmount, 1e-9)
		require.Equal(t, "Science", stats.Data.MostBookSalesGenre, "4 Science units vs 1 Fiction unit")
		require.Equal(t, "Fiction", stats.Data.FewestBookSalesGenre)
	})

	s.Run("Normal case: genreless books fall into the unknown genre bucket", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "uncategorized@example.com", string(user.RoleCustomer))
		fictionID := dbtest.CreateTestGenre(t, s.DB, "Fiction")
		fictionBook := dbtest.CreateTestBook(t, s.DB, "Tagged", "Author", 5.0, 10, &fictionID)
		orphanBook := dbtest.CreateTestBook(t, s.DB, "Untagged", "Author", 5.0, 10, nil)

		token := authtest.LoginUser(t, s.Router, "uncategorized@example.com", "password123")

		reqBody := builder.NewTransactionBuilder().WithItems(
			builder.TransactionItemSpec{BookID: orphanBook, Quantity: 5},
			builder.TransactionItemSpec{BookID: fictionBook, Quantity: 1},
		).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transactionsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code)

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, statisticsURL, nil, token)
		require.Equal(t, http.StatusOK, sw.Code)

		var stats statsEnvelope
		err := httptest.DecodeResponseBody(t, sw.Body, &stats)
		require.NoError(t, err)
		require.Equal(t, "unknown genre", stats.Data.MostBookSalesGenre)
		require.Equal(t, "Fiction", stats.Data.FewestBookSalesGenre)
	})

	s.Run("Normal case: empty history yields zeroed statistics", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "earlybird@example.com", string(user.RoleCustomer))
		token := authtest.LoginUser(t, s.Router, "earlybird@example.com", "password123")

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, statisticsURL, nil, token)
		require.Equal(t, http.StatusOK, sw.Code)

		var stats statsEnvelope
		err := httptest.DecodeResponseBody(t, sw.Body, &stats)
		require.NoError(t, err)
		require.Equal(t, int64(0), stats.Data.TotalTransactions)
		require.Zero(t, stats.Data.AverageTransactionAmount)
		require.Empty(t, stats.Data.MostBookSalesGenre)
		require.Empty(t, stats.Data.FewestBookSalesGenre)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statisticsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
