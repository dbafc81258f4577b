package worker

import (
	"context"
)

type WorkerService interface {
	ListWorkers(ctx context.Context, search string) ([]WorkerResponse, error)
	AddWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) error
	DeleteWorker(ctx context.Context, opsID string) (DeleteWorkerResponse, error)
}
