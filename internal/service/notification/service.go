package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/dw-complaint-backend-go/internal/pkg/sse"
)

// Config holds notification service configuration
type Config struct {
	WorkerCount int // default: 1, keeps events in publish order
	QueueSize   int // default: 256
}

type service struct {
	hub    *sse.Hub
	config Config
	now    func() time.Time

	queue  chan notification.Event
	wg     sync.WaitGroup
	stopCh chan struct{}
	once   sync.Once
}

// NewNotificationService starts the background workers that fan events out to the SSE hub
func NewNotificationService(hub *sse.Hub, cfg Config) notification.Service {
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 1
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 256
	}

	s := &service{
		hub:    hub,
		config: cfg,
		now:    time.Now,
		queue:  make(chan notification.Event, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("notification service started", "workers", cfg.WorkerCount, "queue_size", cfg.QueueSize)

	return s
}

func (s *service) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case event := <-s.queue:
			s.broadcast(event)
		case <-s.stopCh:
			// Drain what is already queued
			for {
				select {
				case event := <-s.queue:
					s.broadcast(event)
				default:
					slog.Debug("notification worker stopped", "worker", id)
					return
				}
			}
		}
	}
}

func (s *service) broadcast(event notification.Event) {
	s.hub.Broadcast(sse.Event{
		Event: string(event.Type),
		Data:  event,
	})
}

// Publish queues an event. When the queue is full it is broadcast inline.
func (s *service) Publish(ctx context.Context, event notification.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now().UTC()
	}

	select {
	case s.queue <- event:
	case <-ctx.Done():
		slog.Warn("notification dropped, context done", "event", event.Type, "error", ctx.Err())
	default:
		s.broadcast(event)
	}
}

// Subscribe creates an SSE subscription for an admin stream. The channel is
// closed when ctx ends or the service stops.
func (s *service) Subscribe(ctx context.Context, subscriberID string) (<-chan notification.Event, func()) {
	ch, cleanup := s.hub.Subscribe(subscriberID)

	out := make(chan notification.Event, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if e, ok := event.Data.(notification.Event); ok {
					select {
					case out <- e:
					case <-ctx.Done():
						return
					}
				}
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			}
		}
	}()

	return out, cleanup
}

func (s *service) TotalSubscribers() int {
	return s.hub.TotalSubscribers()
}

// Stop gracefully stops the notification service
func (s *service) Stop() {
	s.once.Do(func() {
		close(s.stopCh)
		s.wg.Wait()
		slog.Info("notification service stopped")
	})
}
