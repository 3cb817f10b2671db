package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/photoflow/service/internal/response"
)

// jobRunner is the slice of Service the handler needs.
type jobRunner interface {
	Start(ctx context.Context, photos []PhotoRef) (string, error)
	Status(ctx context.Context, id string) (StatusResult, error)
}

// Handler holds HTTP handlers for ingest and job-status endpoints.
type Handler struct {
	svc      jobRunner
	validate *validator.Validate
}

// NewHandler creates a new ingest Handler.
func NewHandler(svc jobRunner) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

type startRequest struct {
	Photos []PhotoRef `json:"photos" validate:"required,min=1,max=500,dive"`
}

type startResponse struct {
	JobID string `json:"jobId"`
}

// Start godoc
//
//	@Summary		Start an ingest job
//	@Description	Records the uploaded photos as queued images and creates a job whose progress can be polled. The operation is asynchronous in spirit; the job id is returned immediately.
//	@Tags			ingest
//	@Accept			json
//	@Produce		json
//	@Param			request	body		startRequest	true	"Uploaded photo references (1-500 items)"
//	@Success		202		{object}	startResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/ingest [post]
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, `invalid payload: "photos" is required`)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		response.BadRequest(w, `invalid payload: "photos" must contain 1 to 500 items, each with a key`)
		return
	}

	jobID, err := h.svc.Start(r.Context(), req.Photos)
	if err != nil {
		log.Printf("ingest: failed to start job: %v", err)
		response.InternalError(w)
		return
	}

	response.Accepted(w, startResponse{JobID: jobID})
}

// Status godoc
//
//	@Summary		Poll job status
//	@Description	Reports the job's progress, derived from elapsed time since creation. Returns completed with progress 100 once the simulated duration has passed.
//	@Tags			ingest
//	@Produce		json
//	@Param			id	path		string	true	"Job id"
//	@Success		200	{object}	StatusResult
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/jobs/{id}/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.svc.Status(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w, "job not found")
		return
	}
	if err != nil {
		log.Printf("ingest: failed to report status for job %q: %v", id, err)
		response.InternalError(w)
		return
	}

	response.OK(w, result)
}
