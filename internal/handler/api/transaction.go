package api

import (
	"errors"
	"fmt"
	"net/http"

	"bookstore-api/internal/domain/order"
	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	cmds commands.TransactionCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary Create transaction
// @Description Purchase books: the order and all stock decrements commit atomically
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTransactionRequest true "Create transaction request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req reqdto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.abortCreateError(c, err)
		return
	}

	c.Header("Location", "/api/transactions/"+result.TransactionID.String())
	c.JSON(http.StatusCreated, resdto.OK("Transaction completed successfully", resdto.FromCreateTransactionResult(result)))
}

// Failure wording is part of the contract: the shortfall names the book and
// both quantities, and every storage-side failure asserts that stock was left
// untouched.
func (h *TransactionHandler) abortCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidItems):
		msg := "Invalid purchase items"
		var invalidQuantity order.InvalidQuantityError
		if errors.As(err, &invalidQuantity) {
			msg = fmt.Sprintf("Invalid quantity for book %s", invalidQuantity.BookID)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg)

	case errors.Is(err, commands.ErrBookNotFound):
		msg := "Book not found"
		var unknownBook order.UnknownBookError
		if errors.As(err, &unknownBook) {
			msg = fmt.Sprintf("Book %s not found or inactive", unknownBook.BookID)
		}
		httperr.AbortWithError(c, http.StatusNotFound, err, msg)

	case errors.Is(err, commands.ErrInsufficientStock):
		msg := "Insufficient stock"
		var shortfall order.InsufficientStockError
		if errors.As(err, &shortfall) {
			msg = fmt.Sprintf("Insufficient stock for %q: %d available, %d requested",
				shortfall.Title, shortfall.Available, shortfall.Requested)
		}
		httperr.AbortWithError(c, http.StatusConflict, err, msg)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Transaction failed, stock remains unchanged")
	}
}

// @Summary List transactions
// @Description List own transactions, newest first, with line items expanded
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp, err := resdto.FromTransactionViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Transactions retrieved successfully", resp))
}

// @Summary Get transaction
// @Description Get one of your transactions by ID
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid transaction id")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, queries.ErrTransactionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Transaction not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp, err := resdto.FromTransactionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Transaction retrieved successfully", resp))
}

// @Summary Transaction statistics
// @Description Aggregate figures over every committed transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /transactions/statistics [get]
func (h *TransactionHandler) Statistics(c *gin.Context) {
	view, err := h.q.Statistics(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Statistics retrieved successfully", resdto.FromStatisticsView(view)))
}
