package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/intake"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/file"
	intakeService "github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/intake"
	"github.com/go-chi/chi/v5"
)

type IntakeHandler interface {
	Suggestions(w http.ResponseWriter, r *http.Request)
	Lookup(w http.ResponseWriter, r *http.Request)
	Periods(w http.ResponseWriter, r *http.Request)
	UploadEvidence(w http.ResponseWriter, r *http.Request)
}

type intakeHandlerImpl struct {
	intakeService    intakeService.IntakeService
	complaintService complaint.ComplaintService
	fileService      file.FileService
}

func NewIntakeHandler(intakeSvc intakeService.IntakeService, complaintService complaint.ComplaintService, fileService file.FileService) IntakeHandler {
	return &intakeHandlerImpl{
		intakeService:    intakeSvc,
		complaintService: complaintService,
		fileService:      fileService,
	}
}

// Suggestions implements IntakeHandler.
func (h *intakeHandlerImpl) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	workers, err := h.intakeService.Suggest(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	suggestions := make([]worker.WorkerResponse, len(workers))
	for i, wk := range workers {
		suggestions[i] = worker.NewWorkerResponse(wk)
	}

	response.Success(w, intake.SuggestionsResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}

// Lookup implements IntakeHandler.
func (h *intakeHandlerImpl) Lookup(w http.ResponseWriter, r *http.Request) {
	result, err := h.intakeService.Lookup(r.Context(), chi.URLParam(r, "opsId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Periods implements IntakeHandler.
func (h *intakeHandlerImpl) Periods(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.complaintService.PeriodOptions(r.Context()))
}

// UploadEvidence implements IntakeHandler.
func (h *intakeHandlerImpl) UploadEvidence(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, file.MaxUploadSize+(1<<20))

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.HandleError(w, intake.ErrFileTooLarge)
			return
		}
		slog.Error("UploadEvidence parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "File is required", map[string]string{"file": "file is required"})
		return
	}
	defer f.Close()

	uploaded, err := h.fileService.UploadEvidence(r.Context(), strings.TrimSpace(r.FormValue("ops_id")), f, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Evidence uploaded", uploaded)
}
