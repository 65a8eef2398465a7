package notification

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	"github.com/muhammadheryan/sanitary-shop/utils/logger"
	"go.uber.org/zap"
)

// NotificationApp is a per-session queue of short-lived toasts.
type NotificationApp interface {
	Notify(ctx context.Context, sessionID, text string, severity constant.Severity) model.Toast
	List(ctx context.Context, sessionID string) []model.Toast
	Expire(ctx context.Context, sessionID string, toastID uint64) bool
}

// Scheduler arranges for Expire to be called once a toast is due.
type Scheduler interface {
	Schedule(ctx context.Context, exp model.ToastExpiration) error
}

type Option func(*notificationAppImpl)

func WithClock(now func() time.Time) Option {
	return func(s *notificationAppImpl) { s.now = now }
}

// WithScheduler hands expiry to an external scheduler. Toasts it fails to
// schedule fall back to an in-process timer.
func WithScheduler(scheduler Scheduler) Option {
	return func(s *notificationAppImpl) { s.scheduler = scheduler }
}

type notificationAppImpl struct {
	ttl       time.Duration
	now       func() time.Time
	scheduler Scheduler
	lastID    atomic.Uint64

	mu     sync.Mutex
	queues map[string][]model.Toast
}

func NewNotificationApp(ttl time.Duration, opts ...Option) NotificationApp {
	if ttl <= 0 {
		ttl = constant.DefaultToastTTL
	}
	s := &notificationAppImpl{
		ttl:    ttl,
		now:    time.Now,
		queues: make(map[string][]model.Toast),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *notificationAppImpl) Notify(ctx context.Context, sessionID, text string, severity constant.Severity) model.Toast {
	if !severity.Valid() {
		severity = constant.SeveritySuccess
	}
	now := s.now()
	toast := model.Toast{
		ID:        s.lastID.Add(1),
		Text:      text,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.queues[sessionID] = append(s.queues[sessionID], toast)
	s.mu.Unlock()

	s.schedule(ctx, model.ToastExpiration{SessionID: sessionID, ToastID: toast.ID, ExpiresAt: toast.ExpiresAt})
	return toast
}

func (s *notificationAppImpl) schedule(ctx context.Context, exp model.ToastExpiration) {
	if s.scheduler != nil {
		err := s.scheduler.Schedule(ctx, exp)
		if err == nil {
			return
		}
		logger.Error("[Notify] error scheduler.Schedule, using local timer", zap.Uint64("toast_id", exp.ToastID), zap.String("error", err.Error()))
	}
	time.AfterFunc(s.ttl, func() {
		s.Expire(context.Background(), exp.SessionID, exp.ToastID)
	})
}

// List returns unexpired toasts oldest first. Toasts past their expiry are
// dropped here even if the scheduler has not fired yet.
func (s *notificationAppImpl) List(_ context.Context, sessionID string) []model.Toast {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[sessionID]
	visible := make([]model.Toast, 0, len(queue))
	for _, t := range queue {
		if now.Before(t.ExpiresAt) {
			visible = append(visible, t)
		}
	}
	s.storeLocked(sessionID, visible)

	out := make([]model.Toast, len(visible))
	copy(out, visible)
	return out
}

func (s *notificationAppImpl) Expire(_ context.Context, sessionID string, toastID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[sessionID]
	for i, t := range queue {
		if t.ID != toastID {
			continue
		}
		next := make([]model.Toast, 0, len(queue)-1)
		next = append(next, queue[:i]...)
		next = append(next, queue[i+1:]...)
		s.storeLocked(sessionID, next)
		return true
	}
	return false
}

func (s *notificationAppImpl) storeLocked(sessionID string, queue []model.Toast) {
	if len(queue) == 0 {
		delete(s.queues, sessionID)
		return
	}
	s.queues[sessionID] = queue
}
