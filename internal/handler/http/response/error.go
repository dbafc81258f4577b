package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/intake"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Username atau password salah")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Complaint domain errors
	case errors.Is(err, complaint.ErrOpsIDNotRegistered):
		ValidationError(w, map[string]string{
			"ops_id": "OpsID tidak valid! Harap masukkan OpsID yang terdaftar.",
		})
	case errors.Is(err, complaint.ErrComplaintNotFound):
		NotFound(w, "Complaint not found")
	case errors.Is(err, complaint.ErrInvalidStatus):
		BadRequest(w, "Invalid complaint status", nil)
	case errors.Is(err, complaint.ErrInvalidType):
		BadRequest(w, "Invalid complaint type", map[string]string{
			"type": "type must be ALL, BELUM_TURUN or KURANG_GAJI",
		})

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrOpsIDExists):
		Conflict(w, "OpsID already registered")

	// Intake uploads
	case errors.Is(err, intake.ErrInvalidFileType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, intake.ErrInvalidImage):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, intake.ErrFileTooLarge):
		RequestEntityTooLarge(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
