package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/service/export"
	"github.com/go-chi/chi/v5"
)

type ComplaintHandler interface {
	// Public forms
	SubmitMissingSalary(w http.ResponseWriter, r *http.Request)
	SubmitUnderpaidSalary(w http.ResponseWriter, r *http.Request)

	// Admin review
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Contact(w http.ResponseWriter, r *http.Request)

	// Exports
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
	ExportClipboard(w http.ResponseWriter, r *http.Request)
}

type complaintHandlerImpl struct {
	complaintService complaint.ComplaintService
	exportService    export.ExportService
}

func NewComplaintHandler(complaintService complaint.ComplaintService, exportService export.ExportService) ComplaintHandler {
	return &complaintHandlerImpl{
		complaintService: complaintService,
		exportService:    exportService,
	}
}

// SubmitMissingSalary implements ComplaintHandler.
func (h *complaintHandlerImpl) SubmitMissingSalary(w http.ResponseWriter, r *http.Request) {
	var req complaint.SubmitMissingSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitMissingSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.complaintService.SubmitMissingSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Komplain berhasil dikirim", created)
}

// SubmitUnderpaidSalary implements ComplaintHandler.
func (h *complaintHandlerImpl) SubmitUnderpaidSalary(w http.ResponseWriter, r *http.Request) {
	var req complaint.SubmitUnderpaidSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitUnderpaidSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.complaintService.SubmitUnderpaidSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Komplain berhasil dikirim", created)
}

// List implements ComplaintHandler.
func (h *complaintHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := complaint.ComplaintFilter{
		Type:   r.URL.Query().Get("type"),
		Search: r.URL.Query().Get("search"),
	}

	complaints, err := h.complaintService.Filter(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, complaints, len(complaints))
}

// Stats implements ComplaintHandler.
func (h *complaintHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.complaintService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Get implements ComplaintHandler.
func (h *complaintHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.complaintService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, c)
}

// History implements ComplaintHandler.
func (h *complaintHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.complaintService.HistoryFor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, history, len(history))
}

// UpdateStatus implements ComplaintHandler.
func (h *complaintHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req complaint.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.complaintService.SetStatus(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Status updated", nil)
}

// Contact implements ComplaintHandler.
func (h *complaintHandlerImpl) Contact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.complaintService.ContactLink(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, contact)
}

// decodeExportRequest accepts an empty body as "export everything".
func decodeExportRequest(r *http.Request) (complaint.ExportRequest, error) {
	var req complaint.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// ExportCSV implements ComplaintHandler.
func (h *complaintHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req, err := decodeExportRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	f, err := h.exportService.CSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, f.Name, f.ContentType, f.Content)
}

// ExportXLSX implements ComplaintHandler.
func (h *complaintHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	req, err := decodeExportRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	f, err := h.exportService.XLSX(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, f.Name, f.ContentType, f.Content)
}

// ExportClipboard implements ComplaintHandler.
func (h *complaintHandlerImpl) ExportClipboard(w http.ResponseWriter, r *http.Request) {
	req, err := decodeExportRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	text, err := h.exportService.Clipboard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, text)
}
