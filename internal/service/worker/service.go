package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
	publisher  notification.Publisher
}

func NewWorkerService(workerRepo worker.WorkerRepository, publisher notification.Publisher) worker.WorkerService {
	if publisher == nil {
		publisher = notification.NopPublisher{}
	}
	return &WorkerServiceImpl{
		workerRepo: workerRepo,
		publisher:  publisher,
	}
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, search string) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		if needle != "" &&
			!strings.Contains(strings.ToLower(w.FullName), needle) &&
			!strings.Contains(strings.ToLower(w.OpsID), needle) {
			continue
		}
		out = append(out, worker.NewWorkerResponse(w))
	}
	return out, nil
}

// AddWorker implements worker.WorkerService. Ops ids are stored upper-cased.
func (s *WorkerServiceImpl) AddWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w := worker.Worker{
		OpsID:    worker.CanonicalOpsID(req.OpsID),
		FullName: strings.TrimSpace(req.FullName),
	}
	if err := s.workerRepo.Add(ctx, w); err != nil {
		return worker.WorkerResponse{}, err
	}

	slog.Info("worker added", "ops_id", w.OpsID)
	s.rosterChanged(ctx, "added", w.OpsID)
	return worker.NewWorkerResponse(w), nil
}

// UpdateWorker implements worker.WorkerService. A missing ops id is ignored.
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	opsID := worker.CanonicalOpsID(req.OpsID)
	found, err := s.workerRepo.UpdateFullName(ctx, opsID, strings.TrimSpace(req.FullName))
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if found {
		slog.Info("worker updated", "ops_id", opsID)
		s.rosterChanged(ctx, "updated", opsID)
	}
	return nil
}

// DeleteWorker implements worker.WorkerService. Complaints filed by the worker are kept.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, opsID string) (worker.DeleteWorkerResponse, error) {
	opsID = worker.CanonicalOpsID(opsID)
	removed, err := s.workerRepo.Delete(ctx, opsID)
	if err != nil {
		return worker.DeleteWorkerResponse{}, fmt.Errorf("failed to delete worker: %w", err)
	}
	if removed > 0 {
		slog.Info("worker deleted", "ops_id", opsID, "removed", removed)
		s.rosterChanged(ctx, "deleted", opsID)
	}
	return worker.DeleteWorkerResponse{OpsID: opsID, Removed: removed}, nil
}

func (s *WorkerServiceImpl) rosterChanged(ctx context.Context, action, opsID string) {
	s.publisher.Publish(ctx, notification.Event{
		Type: notification.EventRosterChanged,
		Data: notification.RosterChangedData{Action: action, OpsID: opsID},
	})
}
