package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"invitaciones_server/models"
)

// scriptedStatus plays back a fixed sequence of status responses, repeating
// the last one forever, and counts how often it was asked.
type scriptedStatus struct {
	mu        sync.Mutex
	responses []string
	calls     int
}

func (s *scriptedStatus) fn(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	s.calls++
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func (s *scriptedStatus) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestPoller(status StatusFunc, bus *PaymentBus) *PaymentPoller {
	p := NewPaymentPoller(status, bus)
	p.Interval = 2 * time.Millisecond
	return p
}

func TestPollerSucceedsOnPaid(t *testing.T) {
	status := &scriptedStatus{responses: []string{
		models.PaymentStatusPending,
		models.PaymentStatusPending,
		models.PaymentStatusPaid,
	}}

	paid := make(chan string, 2)
	failed := make(chan error, 2)

	p := newTestPoller(status.fn, NewPaymentBus())
	p.OnPaid = func(orderID string) { paid <- orderID }
	p.OnError = func(_ string, err error) { failed <- err }

	if !p.Start(context.Background(), "order-1") {
		t.Fatal("Start returned false on first call")
	}

	select {
	case orderID := <-paid:
		if orderID != "order-1" {
			t.Errorf("success callback got order %q, want order-1", orderID)
		}
	case err := <-failed:
		t.Fatalf("unexpected error callback: %v", err)
	case <-time.After(time.Second):
		t.Fatal("poller never reached a terminal state")
	}

	if got := status.callCount(); got != 3 {
		t.Errorf("status checked %d times, want 3", got)
	}

	// Polling must have stopped: no further status checks, no second callback
	time.Sleep(20 * p.Interval)
	if got := status.callCount(); got != 3 {
		t.Errorf("status still being checked after terminal state: %d calls", got)
	}
	select {
	case <-paid:
		t.Error("success callback fired more than once")
	case err := <-failed:
		t.Errorf("error callback fired after success: %v", err)
	default:
	}
}

func TestPollerTimesOut(t *testing.T) {
	status := &scriptedStatus{responses: []string{models.PaymentStatusPending}}

	paid := make(chan string, 2)
	failed := make(chan error, 2)

	p := newTestPoller(status.fn, NewPaymentBus())
	p.Interval = time.Millisecond
	p.OnPaid = func(orderID string) { paid <- orderID }
	p.OnError = func(_ string, err error) { failed <- err }

	p.Start(context.Background(), "order-2")

	select {
	case err := <-failed:
		if !errors.Is(err, models.ErrPaymentTimeout) {
			t.Errorf("error callback got %v, want ErrPaymentTimeout", err)
		}
	case <-paid:
		t.Fatal("unexpected success callback")
	case <-time.After(time.Second):
		t.Fatal("poller never timed out")
	}

	if got := status.callCount(); got != DefaultMaxPollAttempts {
		t.Errorf("status checked %d times, want %d", got, DefaultMaxPollAttempts)
	}

	time.Sleep(20 * p.Interval)
	select {
	case err := <-failed:
		t.Errorf("error callback fired more than once: %v", err)
	case <-paid:
		t.Error("success callback fired after timeout")
	default:
	}
}

func TestPollerFailsOnRejectedPayment(t *testing.T) {
	for _, terminal := range []string{models.PaymentStatusFailed, models.PaymentStatusCancelled} {
		t.Run(terminal, func(t *testing.T) {
			status := &scriptedStatus{responses: []string{models.PaymentStatusPending, terminal}}
			failed := make(chan error, 1)

			p := newTestPoller(status.fn, NewPaymentBus())
			p.OnError = func(_ string, err error) { failed <- err }

			p.Start(context.Background(), "order-3")

			select {
			case err := <-failed:
				if !errors.Is(err, models.ErrPaymentRejected) {
					t.Errorf("error callback got %v, want ErrPaymentRejected", err)
				}
			case <-time.After(time.Second):
				t.Fatal("poller never reported the rejection")
			}
		})
	}
}

func TestPollerStartIsNoOpWhileActive(t *testing.T) {
	status := &scriptedStatus{responses: []string{models.PaymentStatusPending}}

	p := newTestPoller(status.fn, NewPaymentBus())
	p.MaxAttempts = 1000

	if !p.Start(context.Background(), "order-4") {
		t.Fatal("first Start returned false")
	}
	if p.Start(context.Background(), "order-4") {
		t.Error("second Start for the same order should be a no-op")
	}

	p.Stop("order-4")
}

func TestPollerPublishesTerminalEvent(t *testing.T) {
	status := &scriptedStatus{responses: []string{models.PaymentStatusPaid}}

	bus := NewPaymentBus()
	events := make(chan PaymentEvent, 2)
	bus.OnPaymentEvent(func(event PaymentEvent) { events <- event })

	p := newTestPoller(status.fn, bus)
	p.Start(context.Background(), "order-5")

	select {
	case event := <-events:
		if event.OrderID != "order-5" || event.Status != models.PaymentStatusPaid {
			t.Errorf("unexpected event %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}

func TestPollerStopCancelsLoop(t *testing.T) {
	status := &scriptedStatus{responses: []string{models.PaymentStatusPending}}

	p := newTestPoller(status.fn, NewPaymentBus())
	p.MaxAttempts = 1000
	p.OnError = func(_ string, err error) {
		t.Errorf("error callback fired after Stop: %v", err)
	}

	p.Start(context.Background(), "order-6")
	time.Sleep(5 * p.Interval)
	p.Stop("order-6")

	calls := status.callCount()
	time.Sleep(20 * p.Interval)
	if got := status.callCount(); got > calls+1 {
		t.Errorf("polling continued after Stop: %d -> %d calls", calls, got)
	}
}
