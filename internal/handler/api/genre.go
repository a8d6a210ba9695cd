package api

import (
	"errors"
	"net/http"

	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GenreHandler struct {
	cmds commands.GenreCommands
	q    queries.GenreQueries
}

func NewGenreHandler(cmds commands.GenreCommands, q queries.GenreQueries) *GenreHandler {
	return &GenreHandler{cmds: cmds, q: q}
}

// @Summary List genres
// @Description List active genres, alphabetically
// @Tags genres
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /genres [get]
func (h *GenreHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Genres retrieved successfully", resdto.FromGenreViews(views)))
}

// @Summary Get genre
// @Description Get a single active genre by ID
// @Tags genres
// @Produce json
// @Security BearerAuth
// @Param id path string true "Genre ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /genres/{id} [get]
func (h *GenreHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid genre id")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrGenreNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Genre not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Genre retrieved successfully", resdto.FromGenreView(view)))
}

// @Summary Create genre
// @Description Add a genre (admin only)
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGenreRequest true "Create genre request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /genres [post]
func (h *GenreHandler) Create(c *gin.Context) {
	var req reqdto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		h.abortWriteError(c, err)
		return
	}

	c.Header("Location", "/api/genres/"+id.String())
	c.JSON(http.StatusCreated, resdto.OK("Genre created successfully", resdto.CreateGenreResponse{ID: id}))
}

// @Summary Update genre
// @Description Rename a genre (admin only)
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Genre ID"
// @Param request body reqdto.UpdateGenreRequest true "Update genre request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /genres/{id} [put]
func (h *GenreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid genre id")
		return
	}

	var req reqdto.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		h.abortWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Genre updated successfully", nil))
}

// @Summary Delete genre
// @Description Remove a genre; books referencing it keep their reference (admin only)
// @Tags genres
// @Produce json
// @Security BearerAuth
// @Param id path string true "Genre ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /genres/{id} [delete]
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid genre id")
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.abortWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Genre deleted successfully", nil))
}

func (h *GenreHandler) abortWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrGenreNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Genre not found")
	case errors.Is(err, commands.ErrGenreAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Genre already exists")
	case errors.Is(err, commands.ErrGenreValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid genre data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
