package kv

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/complaint"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/kvstore"
)

type complaintRepositoryImpl struct {
	complaints *collection[complaint.Complaint]
}

// NewComplaintRepository loads the complaint blob, writing seed when the key does not exist yet.
func NewComplaintRepository(ctx context.Context, store kvstore.Store, seed []complaint.Complaint) (complaint.ComplaintRepository, error) {
	c, err := loadCollection(ctx, store, ComplaintsKey, seed)
	if err != nil {
		return nil, err
	}
	return &complaintRepositoryImpl{complaints: c}, nil
}

// List implements complaint.ComplaintRepository.
func (r *complaintRepositoryImpl) List(ctx context.Context) ([]complaint.Complaint, error) {
	return r.complaints.snapshot(), nil
}

// GetByID implements complaint.ComplaintRepository.
func (r *complaintRepositoryImpl) GetByID(ctx context.Context, id string) (complaint.Complaint, error) {
	for _, c := range r.complaints.snapshot() {
		if c.ID == id {
			return c, nil
		}
	}
	return complaint.Complaint{}, complaint.ErrComplaintNotFound
}

// Prepend implements complaint.ComplaintRepository. Newest records come first.
func (r *complaintRepositoryImpl) Prepend(ctx context.Context, c complaint.Complaint) error {
	return r.complaints.mutate(ctx, func(items []complaint.Complaint) ([]complaint.Complaint, error) {
		for _, existing := range items {
			if existing.ID == c.ID {
				return nil, fmt.Errorf("complaint id %s already stored", c.ID)
			}
		}
		return append([]complaint.Complaint{c}, items...), nil
	})
}

// UpdateStatus implements complaint.ComplaintRepository. A missing id changes nothing.
func (r *complaintRepositoryImpl) UpdateStatus(ctx context.Context, id string, status complaint.Status) (bool, error) {
	found := false
	err := r.complaints.mutate(ctx, func(items []complaint.Complaint) ([]complaint.Complaint, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				found = true
				break
			}
		}
		if !found {
			return nil, errUnchanged
		}
		return items, nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
