package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/workshop_billing_app/internal/middleware"
)

// EventTracker receives product analytics events. *utils.PosthogClientWrapper satisfies it.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// BaseService provides common functionality for all services
type BaseService struct {
	clock    func() time.Time
	location *time.Location
	tracker  EventTracker
}

// Option configures the shared parts of a service.
type Option func(*BaseService)

// WithClock overrides the time source used for due-date comparisons and audit stamps.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithLocation sets the timezone calendar dates from requests are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(s *BaseService) {
		s.location = loc
	}
}

// WithEventTracker enables analytics events for billing actions.
func WithEventTracker(tracker EventTracker) Option {
	return func(s *BaseService) {
		s.tracker = tracker
	}
}

func newBaseService(opts []Option) BaseService {
	base := BaseService{}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now().UTC()
	}
	return s.clock()
}

// Location returns the timezone for calendar dates, UTC by default.
func (s *BaseService) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

// Track sends an analytics event when a tracker is configured.
func (s *BaseService) Track(userID string, event string, properties map[string]any) {
	if s.tracker == nil || userID == "" {
		return
	}
	s.tracker.Enqueue(userID, event, properties)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}
