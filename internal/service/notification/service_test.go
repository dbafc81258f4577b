package notification

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan notification.Event) notification.Event {
	t.Helper()
	select {
	case e, ok := <-ch:
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return notification.Event{}
}

func TestNotificationService_PublishReachesSubscribers(t *testing.T) {
	svc := NewNotificationService(sse.NewHub(), Config{})
	t.Cleanup(svc.Stop)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup := svc.Subscribe(ctx, "admin")
	defer cleanup()
	assert.Equal(t, 1, svc.TotalSubscribers())

	svc.Publish(context.Background(), notification.Event{
		Type: notification.EventComplaintCreated,
		Data: map[string]string{"id": "c1"},
	})
	svc.Publish(context.Background(), notification.Event{
		Type: notification.EventComplaintStatusUpdated,
		Data: notification.StatusUpdatedData{ID: "c1", Status: "SELESAI"},
	})

	first := receive(t, events)
	assert.Equal(t, notification.EventComplaintCreated, first.Type)
	assert.False(t, first.OccurredAt.IsZero())

	second := receive(t, events)
	assert.Equal(t, notification.EventComplaintStatusUpdated, second.Type)
}

func TestNotificationService_SubscriptionEndsWithContext(t *testing.T) {
	svc := NewNotificationService(sse.NewHub(), Config{})
	t.Cleanup(svc.Stop)

	ctx, cancel := context.WithCancel(context.Background())
	events, cleanup := svc.Subscribe(ctx, "admin")
	defer cleanup()

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not close")
	}
}

func TestNotificationService_StopIsIdempotent(t *testing.T) {
	svc := NewNotificationService(sse.NewHub(), Config{WorkerCount: 2, QueueSize: 1})
	svc.Publish(context.Background(), notification.Event{Type: notification.EventRosterChanged})
	svc.Stop()
	svc.Stop()
}

func TestNotificationService_StopClosesSubscriptions(t *testing.T) {
	svc := NewNotificationService(sse.NewHub(), Config{})

	// Context tetap hidup, hanya Stop yang boleh menutup channel
	events, cleanup := svc.Subscribe(context.Background(), "admin")
	defer cleanup()

	svc.Stop()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription still open after Stop")
	}
}
