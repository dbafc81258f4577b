package worker

import (
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	OpsID    string `json:"ops_id"`
	FullName string `json:"full_name"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("ops_id", r.OpsID)
	if !validator.IsEmpty(r.OpsID) && !validator.IsValidOpsID(CanonicalOpsID(r.OpsID)) {
		errs.Add("ops_id", "ops_id may only contain letters, numbers and dashes (max 32)")
	}

	errs.Required("full_name", r.FullName)
	if len(r.FullName) > 100 {
		errs.Add("full_name", "full_name must not exceed 100 characters")
	}

	return errs.Err()
}

// UpdateWorkerRequest changes the name of an existing worker. The ops id comes
// from the URL and cannot be edited.
type UpdateWorkerRequest struct {
	OpsID    string `json:"-"`
	FullName string `json:"full_name"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("ops_id", r.OpsID)
	errs.Required("full_name", r.FullName)
	if len(r.FullName) > 100 {
		errs.Add("full_name", "full_name must not exceed 100 characters")
	}

	return errs.Err()
}

type WorkerResponse struct {
	OpsID    string `json:"ops_id"`
	FullName string `json:"full_name"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{OpsID: w.OpsID, FullName: w.FullName}
}

type DeleteWorkerResponse struct {
	OpsID   string `json:"ops_id"`
	Removed int    `json:"removed"`
}
