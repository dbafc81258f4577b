package worker

import "context"

type WorkerRepository interface {
	List(ctx context.Context) ([]Worker, error)
	Add(ctx context.Context, w Worker) error
	UpdateFullName(ctx context.Context, opsID string, fullName string) (bool, error)
	Delete(ctx context.Context, opsID string) (int, error)
}
