package upload

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/photoflow/service/internal/response"
)

// targetCreator is the slice of Service the handler needs.
type targetCreator interface {
	CreateTargets(ctx context.Context, contentTypes []string) ([]Target, error)
}

// Handler holds HTTP handlers for upload-target endpoints.
type Handler struct {
	svc      targetCreator
	validate *validator.Validate
}

// NewHandler creates a new upload Handler.
func NewHandler(svc targetCreator) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

type createTargetsRequest struct {
	Count        int      `json:"count"        validate:"required,min=1,max=200"`
	ContentTypes []string `json:"contentTypes" validate:"required"`
}

// CreateTargets godoc
//
//	@Summary		Issue presigned upload targets
//	@Description	Returns one presigned PUT/GET URL pair per requested content type, in input order.
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createTargetsRequest	true	"Number of files and their content types"
//	@Success		200		{array}		Target
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/uploads [post]
func (h *Handler) CreateTargets(w http.ResponseWriter, r *http.Request) {
	var req createTargetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.BadRequest(w, `"count" must be an integer between 1 and 200 and "contentTypes" is required`)
		return
	}
	if len(req.ContentTypes) != req.Count {
		response.BadRequest(w, `"contentTypes" length must match "count"`)
		return
	}
	for _, contentType := range req.ContentTypes {
		if !strings.HasPrefix(contentType, "image/") {
			response.BadRequest(w, "only image content types are allowed")
			return
		}
	}

	targets, err := h.svc.CreateTargets(r.Context(), req.ContentTypes)
	if err != nil {
		log.Printf("uploads: failed to create presigned targets: %v", err)
		response.InternalError(w)
		return
	}

	response.OK(w, targets)
}
