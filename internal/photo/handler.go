package photo

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/photoflow/service/internal/response"
)

const (
	defaultLimit = 24
	maxLimit     = 60
)

// lister is the slice of Repository the handler needs.
type lister interface {
	List(ctx context.Context, status string, limit int, cursor string) ([]Image, string, error)
}

// Handler holds HTTP handlers for photo endpoints.
type Handler struct {
	repo lister
}

// NewHandler creates a new photo Handler.
func NewHandler(repo lister) *Handler {
	return &Handler{repo: repo}
}

type listResponse struct {
	Items      []Image `json:"items"`
	NextCursor string  `json:"nextCursor,omitempty"`
}

// List godoc
//
//	@Summary		List photos
//	@Description	Cursor-paginated image listing in descending creation order. Pass the previous page's nextCursor to fetch the next slice; the last page has no nextCursor.
//	@Tags			photos
//	@Produce		json
//	@Param			status	query		string	false	"Image status filter"	Enums(queued, processed, failed)	default(processed)
//	@Param			limit	query		int		false	"Page size (1-60)"		default(24)
//	@Param			cursor	query		string	false	"Cursor from a prior page"
//	@Success		200		{object}	listResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/photos [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := q.Get("status")
	if status == "" {
		status = StatusProcessed
	}
	if status != StatusQueued && status != StatusProcessed && status != StatusFailed {
		response.BadRequest(w, `"status" must be one of queued, processed, failed`)
		return
	}

	limit := defaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			response.BadRequest(w, `"limit" must be an integer between 1 and 60`)
			return
		}
		limit = n
	}

	cursor := q.Get("cursor")
	if cursor != "" {
		if _, err := uuid.Parse(cursor); err != nil {
			response.BadRequest(w, `"cursor" must be a valid id`)
			return
		}
	}

	items, nextCursor, err := h.repo.List(r.Context(), status, limit, cursor)
	if err != nil {
		log.Printf("photos: failed to list images: %v", err)
		response.InternalError(w)
		return
	}

	response.OK(w, listResponse{Items: items, NextCursor: nextCursor})
}
