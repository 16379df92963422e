package event

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Event is what handlers receive.
type Event struct {
	Topic   string
	Payload any
	Time    time.Time
}

// Handler processes a published event.
type Handler func(e Event) error

// Subscription is a handler registered on a bus for a topic pattern.
type Subscription struct {
	id        string
	pattern   string
	handler   Handler
	cancelled *atomic.Bool
}

func newSubscription(pattern string, h Handler) *Subscription {
	return &Subscription{
		id:        uuid.NewString(),
		pattern:   pattern,
		handler:   h,
		cancelled: atomic.NewBool(false),
	}
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Pattern returns the subscribed topic pattern.
func (s *Subscription) Pattern() string {
	return s.pattern
}

// IsActive returns true until the subscription is cancelled.
func (s *Subscription) IsActive() bool {
	return !s.cancelled.Load()
}

// cancel permanently stops delivery to this subscription.
func (s *Subscription) cancel() {
	s.cancelled.Store(true)
}
