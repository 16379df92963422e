package event

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rohanthewiz/serr"
	"go.uber.org/atomic"
)

// Stats is a snapshot of bus counters.
type Stats struct {
	EventsPublished   uint64
	HandlersExecuted  uint64
	HandlerErrors     uint64
	ActiveSubscribers int
}

// Bus delivers events to subscriptions whose pattern matches the topic.
// It is safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs []*Subscription

	published *atomic.Uint64
	executed  *atomic.Uint64
	failed    *atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		published: atomic.NewUint64(0),
		executed:  atomic.NewUint64(0),
		failed:    atomic.NewUint64(0),
	}
}

// Subscribe registers handler for every topic matching pattern.
func (b *Bus) Subscribe(pattern string, handler Handler) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !validPattern(pattern) {
		return nil, serr.Wrap(ErrInvalidTopic, "pattern", pattern)
	}

	sub := newSubscription(pattern, handler)

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return sub, nil
}

// Unsubscribe cancels sub and removes it from the bus.
func (b *Bus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}
	sub.cancel()

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers payload to every matching subscription, in subscription
// order, before returning. Handler failures are joined into the result.
func (b *Bus) Publish(topic string, payload any) error {
	if !validPattern(topic) {
		return serr.Wrap(ErrInvalidTopic, "topic", topic)
	}

	b.mu.RLock()
	matched := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if Match(s.pattern, topic) {
			matched = append(matched, s)
		}
	}
	b.mu.RUnlock()

	b.published.Inc()
	if len(matched) == 0 {
		return nil
	}

	evt := Event{Topic: topic, Payload: payload, Time: time.Now()}

	var errs []error
	for _, s := range matched {
		// A handler earlier in this delivery may have cancelled s
		if !s.IsActive() {
			continue
		}
		b.executed.Inc()
		if err := deliver(s, evt); err != nil {
			b.failed.Inc()
			errs = append(errs, serr.Wrap(err, "topic", topic, "subscription", s.id))
		}
	}
	return errors.Join(errs...)
}

func deliver(s *Subscription, evt Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return s.handler(evt)
}

// Stats returns current bus statistics.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	n := len(b.subs)
	b.mu.RUnlock()

	return Stats{
		EventsPublished:   b.published.Load(),
		HandlersExecuted:  b.executed.Load(),
		HandlerErrors:     b.failed.Load(),
		ActiveSubscribers: n,
	}
}
