package complaint

import "context"

type ComplaintRepository interface {
	// List returns every complaint in store order (newest first)
	List(ctx context.Context) ([]Complaint, error)
	GetByID(ctx context.Context, id string) (Complaint, error)
	Prepend(ctx context.Context, c Complaint) error
	UpdateStatus(ctx context.Context, id string, status Status) (bool, error)
}
