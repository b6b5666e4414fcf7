package services

import (
	"sync"
	"time"
)

// PaymentEvent is published whenever an order's payment status changes.
type PaymentEvent struct {
	OrderID string    `json:"orderId"`
	Status  string    `json:"status"`
	Message string    `json:"message,omitempty"`
	At      time.Time `json:"at"`
}

type PaymentEventHandler func(PaymentEvent)

// PaymentBus fans payment events out to registered handlers (socket push,
// logging). It decouples the poller and the notification handler from the
// delivery transport, so the state machine can be tested without either.
type PaymentBus struct {
	mu       sync.RWMutex
	handlers []PaymentEventHandler
}

func NewPaymentBus() *PaymentBus {
	return &PaymentBus{}
}

// OnPaymentEvent registers a handler for all future events.
func (b *PaymentBus) OnPaymentEvent(handler PaymentEventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish delivers an event to every registered handler, synchronously and
// in registration order.
func (b *PaymentBus) Publish(event PaymentEvent) {
	b.mu.RLock()
	handlers := make([]PaymentEventHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
