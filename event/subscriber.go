package event

import "sync"

// Subscriber tracks the subscriptions an owner holds, possibly on several
// buses, so they can be dropped together when the owner goes away.
type Subscriber struct {
	mu   sync.Mutex
	subs []tracked
}

type tracked struct {
	bus *Bus
	sub *Subscription
}

// NewSubscriber creates a Subscriber with no subscriptions.
func NewSubscriber() *Subscriber {
	return &Subscriber{}
}

// Listen subscribes handler to pattern on bus and tracks the subscription.
func (s *Subscriber) Listen(bus *Bus, pattern string, handler Handler) (*Subscription, error) {
	sub, err := bus.Subscribe(pattern, handler)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.subs = append(s.subs, tracked{bus: bus, sub: sub})
	s.mu.Unlock()
	return sub, nil
}

// Unsubscribe removes one tracked subscription.
func (s *Subscriber) Unsubscribe(sub *Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.subs {
		if t.sub == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return t.bus.Unsubscribe(sub)
		}
	}
	return ErrSubscriptionNotFound
}

// UnsubscribeAll removes every tracked subscription. Calling it again is a no-op.
func (s *Subscriber) UnsubscribeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.subs {
		_ = t.bus.Unsubscribe(t.sub)
	}
	s.subs = s.subs[:0]
}

// Count returns the number of tracked subscriptions.
func (s *Subscriber) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
