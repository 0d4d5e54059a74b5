package pubsub

import (
	"log"
	"sync"
)

// subscriberBuffer lets a publisher run ahead of a slow subscriber.
const subscriberBuffer = 16

type PubSub[T any] struct {
	mu     sync.Mutex
	subs   map[string][]chan T
	closed bool
}

func NewPubSub[T any]() *PubSub[T] {
	return &PubSub[T]{
		subs: make(map[string][]chan T),
	}
}

func (ps *PubSub[T]) Subscribe(topic string) <-chan T {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ch := make(chan T, subscriberBuffer)
	if ps.closed {
		close(ch)
		return ch
	}
	ps.subs[topic] = append(ps.subs[topic], ch)
	return ch
}

// Publish delivers data to every subscriber of topic, in subscription order.
// It never blocks: a subscriber whose buffer is full misses the message.
func (ps *PubSub[T]) Publish(topic string, data T) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.closed {
		return
	}
	for _, ch := range ps.subs[topic] {
		select {
		case ch <- data:
		default:
			log.Printf("Subscriber of %s is full, dropping message", topic)
		}
	}
}

// Close ends every subscription. Later publishes are dropped.
func (ps *PubSub[T]) Close() {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.closed {
		return
	}
	ps.closed = true
	for _, chans := range ps.subs {
		for _, ch := range chans {
			close(ch)
		}
	}
}
