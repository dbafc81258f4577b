package kv

import (
	"context"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/kvstore"
)

type workerRepositoryImpl struct {
	workers *collection[worker.Worker]
}

// NewWorkerRepository loads the roster blob, writing seed when the key does not exist yet.
func NewWorkerRepository(ctx context.Context, store kvstore.Store, seed []worker.Worker) (worker.WorkerRepository, error) {
	c, err := loadCollection(ctx, store, WorkersKey, seed)
	if err != nil {
		return nil, err
	}
	return &workerRepositoryImpl{workers: c}, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	return r.workers.snapshot(), nil
}

// Add implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Add(ctx context.Context, w worker.Worker) error {
	return r.workers.mutate(ctx, func(items []worker.Worker) ([]worker.Worker, error) {
		for _, existing := range items {
			if existing.OpsID == w.OpsID {
				return nil, worker.ErrOpsIDExists
			}
		}
		return append(items, w), nil
	})
}

// UpdateFullName implements worker.WorkerRepository.
func (r *workerRepositoryImpl) UpdateFullName(ctx context.Context, opsID string, fullName string) (bool, error) {
	found := false
	err := r.workers.mutate(ctx, func(items []worker.Worker) ([]worker.Worker, error) {
		for i := range items {
			if items[i].OpsID == opsID {
				items[i].FullName = fullName
				found = true
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

// Delete implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Delete(ctx context.Context, opsID string) (int, error) {
	removed := 0
	err := r.workers.mutate(ctx, func(items []worker.Worker) ([]worker.Worker, error) {
		kept := make([]worker.Worker, 0, len(items))
		for _, w := range items {
			if w.OpsID == opsID {
				removed++
				continue
			}
			kept = append(kept, w)
		}
		if removed == 0 {
			return nil, errUnchanged
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
