package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/worker"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/kvstore"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/repository/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (worker.WorkerService, worker.WorkerRepository) {
	t.Helper()
	repo, err := kv.NewWorkerRepository(context.Background(), kvstore.NewMemoryStore(), []worker.Worker{
		{OpsID: "SPX-78291", FullName: "Budi Santoso"},
		{OpsID: "SPX-99012", FullName: "Siti Aminah"},
	})
	require.NoError(t, err)
	return NewWorkerService(repo, nil), repo
}

func TestAddWorker(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	got, err := svc.AddWorker(ctx, worker.CreateWorkerRequest{OpsID: " spx-55555 ", FullName: " Joko Widodo "})
	require.NoError(t, err)
	assert.Equal(t, worker.WorkerResponse{OpsID: "SPX-55555", FullName: "Joko Widodo"}, got)

	workers, _ := repo.List(ctx)
	require.Len(t, workers, 3)
	assert.Equal(t, "SPX-55555", workers[2].OpsID)

	t.Run("duplicate rejected", func(t *testing.T) {
		_, err := svc.AddWorker(ctx, worker.CreateWorkerRequest{OpsID: "spx-78291", FullName: "Budi Lain"})
		assert.ErrorIs(t, err, worker.ErrOpsIDExists)
	})

	t.Run("invalid request", func(t *testing.T) {
		_, err := svc.AddWorker(ctx, worker.CreateWorkerRequest{OpsID: "SPX 1", FullName: ""})
		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "ops_id")
		assert.Contains(t, verrs.ToMap(), "full_name")
	})
}

func TestUpdateWorker(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	require.NoError(t, svc.UpdateWorker(ctx, worker.UpdateWorkerRequest{OpsID: "SPX-99012", FullName: "Siti Aminah Putri"}))
	require.NoError(t, svc.UpdateWorker(ctx, worker.UpdateWorkerRequest{OpsID: "SPX-00000", FullName: "Nobody"}))

	workers, _ := repo.List(ctx)
	assert.Equal(t, []worker.Worker{
		{OpsID: "SPX-78291", FullName: "Budi Santoso"},
		{OpsID: "SPX-99012", FullName: "Siti Aminah Putri"},
	}, workers)
}

func TestDeleteWorker(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	res, err := svc.DeleteWorker(ctx, "spx-78291")
	require.NoError(t, err)
	assert.Equal(t, worker.DeleteWorkerResponse{OpsID: "SPX-78291", Removed: 1}, res)

	res, err = svc.DeleteWorker(ctx, "SPX-78291")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Removed)
}

func TestListWorkers(t *testing.T) {
	svc, _ := newTestService(t)

	all, err := svc.ListWorkers(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := svc.ListWorkers(context.Background(), "AMINAH")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SPX-99012", got[0].OpsID)

	got, err = svc.ListWorkers(context.Background(), "spx-782")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SPX-78291", got[0].OpsID)
}
