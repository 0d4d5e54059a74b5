package pubsub

import (
	"testing"
	"time"
)

func TestPublishReachesSubscribers(t *testing.T) {
	ps := NewPubSub[int]()
	a := ps.Subscribe("drives")
	b := ps.Subscribe("drives")
	other := ps.Subscribe("other")

	ps.Publish("drives", 1)
	ps.Publish("drives", 2)

	for _, ch := range []<-chan int{a, b} {
		if got := <-ch; got != 1 {
			t.Errorf("first value = %d", got)
		}
		if got := <-ch; got != 2 {
			t.Errorf("second value = %d", got)
		}
	}
	select {
	case v := <-other:
		t.Errorf("other topic received %d", v)
	default:
	}
}

func TestClose(t *testing.T) {
	ps := NewPubSub[string]()
	ch := ps.Subscribe("drives")
	ps.Close()
	ps.Close()
	ps.Publish("drives", "late")

	if _, ok := <-ch; ok {
		t.Error("channel still open after Close")
	}
	if _, ok := <-ps.Subscribe("drives"); ok {
		t.Error("subscription after Close should be closed")
	}
}

func TestPublishDoesNotBlockOnFullSubscriber(t *testing.T) {
	ps := NewPubSub[int]()
	ch := ps.Subscribe("drives")

	done := make(chan bool)
	go func() {
		for i := 0; i <= subscriberBuffer; i++ {
			ps.Publish("drives", i)
		}
		ps.Close()
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close did not return while a subscriber was not reading")
	}

	received := 0
	for v := range ch {
		if v != received {
			t.Errorf("message %d = %d", received, v)
		}
		received++
	}
	if received != subscriberBuffer {
		t.Errorf("received %d messages, want %d", received, subscriberBuffer)
	}
}
