package complaint

import (
	"context"
)

type ComplaintService interface {
	// Submission
	SubmitMissingSalary(ctx context.Context, req SubmitMissingSalaryRequest) (Complaint, error)
	SubmitUnderpaidSalary(ctx context.Context, req SubmitUnderpaidSalaryRequest) (Complaint, error)
	PeriodOptions(ctx context.Context) PeriodOptionsResponse
	// Review
	Filter(ctx context.Context, filter ComplaintFilter) ([]Complaint, error)
	Get(ctx context.Context, id string) (Complaint, error)
	HistoryFor(ctx context.Context, id string) ([]Complaint, error)
	SetStatus(ctx context.Context, req UpdateStatusRequest) error
	Stats(ctx context.Context) (StatsResponse, error)
	ContactLink(ctx context.Context, id string) (ContactResponse, error)
	// Select returns the complaints with the given ids in store order, or the whole store when ids is empty
	Select(ctx context.Context, ids []string) ([]Complaint, error)
}
