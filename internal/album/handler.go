// Package album exposes placeholder endpoints for the face-clustering album
// feature, which is an unimplemented downstream of the ingest pipeline.
package album

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/photoflow/service/internal/response"
)

// Handler holds HTTP handlers for album endpoints.
type Handler struct{}

// NewHandler creates a new album Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Album is an empty cluster placeholder until clustering lands.
type Album struct {
	ID     string   `json:"id"`
	Label  *string  `json:"label"`
	Photos []string `json:"photos"`
}

type listResponse struct {
	Albums []Album `json:"albums"`
}

// List godoc
//
//	@Summary	List albums
//	@Tags		albums
//	@Produce	json
//	@Success	200	{object}	listResponse
//	@Router		/albums [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	response.OK(w, listResponse{Albums: []Album{}})
}

// Get godoc
//
//	@Summary	Get one album
//	@Tags		albums
//	@Produce	json
//	@Param		id	path		string	true	"Album id"
//	@Success	200	{object}	Album
//	@Router		/albums/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	response.OK(w, Album{
		ID:     chi.URLParam(r, "id"),
		Photos: []string{},
	})
}
