package request

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateGenreRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
