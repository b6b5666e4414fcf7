package services

import (
	"context"
	"log"
	"sync"
	"time"

	"invitaciones_server/models"
)

const (
	// DefaultPollInterval and DefaultMaxPollAttempts bound the status poll
	// at roughly two minutes.
	DefaultPollInterval    = 3 * time.Second
	DefaultMaxPollAttempts = 40

	// StatusTimedOut is the bus status published when polling exhausts its
	// attempts without reaching a terminal order status.
	StatusTimedOut = "TIMED_OUT"
)

// StatusFunc reports the current payment status of an order.
type StatusFunc func(ctx context.Context, orderID string) (string, error)

// PaymentPoller watches pending orders until they reach a terminal payment
// status or the attempt budget runs out. One poll loop per order; starting a
// second loop for the same order is a no-op. Terminal transitions fire
// exactly one callback and one bus event.
type PaymentPoller struct {
	Status      StatusFunc
	Bus         *PaymentBus
	Interval    time.Duration
	MaxAttempts int
	OnPaid      func(orderID string)
	OnError     func(orderID string, err error)

	mu     sync.Mutex
	active map[string]context.CancelFunc
}

func NewPaymentPoller(status StatusFunc, bus *PaymentBus) *PaymentPoller {
	return &PaymentPoller{
		Status:      status,
		Bus:         bus,
		Interval:    DefaultPollInterval,
		MaxAttempts: DefaultMaxPollAttempts,
		active:      map[string]context.CancelFunc{},
	}
}

// Start launches the poll loop for an order. Returns false when a loop is
// already running for it.
func (p *PaymentPoller) Start(ctx context.Context, orderID string) bool {
	p.mu.Lock()
	if _, running := p.active[orderID]; running {
		p.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	p.active[orderID] = cancel
	p.mu.Unlock()

	go p.run(ctx, orderID)
	return true
}

// Stop cancels the poll loop for an order, if one is running.
func (p *PaymentPoller) Stop(orderID string) {
	p.mu.Lock()
	cancel, running := p.active[orderID]
	p.mu.Unlock()
	if running {
		cancel()
	}
}

// StopAll cancels every active poll loop. Called on shutdown.
func (p *PaymentPoller) StopAll() {
	p.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(p.active))
	for _, cancel := range p.active {
		cancels = append(cancels, cancel)
	}
	p.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (p *PaymentPoller) finish(orderID string) {
	p.mu.Lock()
	if cancel, running := p.active[orderID]; running {
		delete(p.active, orderID)
		p.mu.Unlock()
		cancel()
		return
	}
	p.mu.Unlock()
}

func (p *PaymentPoller) run(ctx context.Context, orderID string) {
	defer p.finish(orderID)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		status, err := p.Status(ctx, orderID)
		if err != nil {
			// Transient lookup failures still consume an attempt
			log.Printf("⚠️ Payment status check %d/%d failed for order %s: %v", attempt, p.MaxAttempts, orderID, err)
			continue
		}

		switch status {
		case models.PaymentStatusPaid:
			p.publish(orderID, models.PaymentStatusPaid, "")
			if p.OnPaid != nil {
				p.OnPaid(orderID)
			}
			return
		case models.PaymentStatusFailed, models.PaymentStatusCancelled:
			p.publish(orderID, status, "payment was not completed")
			if p.OnError != nil {
				p.OnError(orderID, models.ErrPaymentRejected)
			}
			return
		}
	}

	log.Printf("⏰ Payment polling timed out for order %s after %d attempts", orderID, p.MaxAttempts)
	p.publish(orderID, StatusTimedOut, "payment confirmation took too long")
	if p.OnError != nil {
		p.OnError(orderID, models.ErrPaymentTimeout)
	}
}

func (p *PaymentPoller) publish(orderID, status, message string) {
	if p.Bus == nil {
		return
	}
	p.Bus.Publish(PaymentEvent{
		OrderID: orderID,
		Status:  status,
		Message: message,
		At:      time.Now().UTC(),
	})
}
