package worker

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrOpsIDExists    = errors.New("ops id already registered")
)
