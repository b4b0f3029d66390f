package wmevent

import "sync"

// subscriberBuffer is the per-subscriber channel capacity. Once a
// subscriber falls behind by this many events, each newly published
// event is dropped for it rather than blocking the publisher (spec
// §4.4, §5's single-threaded wm task must never block on IPC readers).
const subscriberBuffer = 64

type subscriber struct {
	id int
	ch chan Event
}

// Bus fans a single publisher out to any number of subscribers.
// The zero value is not usable; construct with [NewBus].
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscriber
}

// NewBus constructs an empty event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscriber)}
}

// Subscribe registers a new listener and returns the channel it will
// receive events on, plus a function to cancel the subscription
// (spec §4.5's unsubscribe extension). The channel is never closed by
// Unsubscribe, to avoid a send-on-closed-channel race with
// [Bus.Publish]; callers should simply stop reading from it.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	sub := &subscriber{id: id, ch: make(chan Event, subscriberBuffer)}
	b.subs[id] = sub

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
	return sub.ch, unsubscribe
}

// Publish delivers ev to every current subscriber without blocking.
// A subscriber whose buffer is full drops ev (spec §4.4's
// drop-on-full-buffer semantics) rather than stalling the caller: the
// wm task, or an IPC connection goroutine dispatching a cmd.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

// SubscriberCount reports how many subscriptions are currently live,
// for tests and diagnostics.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
