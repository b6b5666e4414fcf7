package socket

import (
	"log"

	"invitaciones_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// orderRoom names the room for one order's payment events.
func orderRoom(orderID string) string {
	return "order:" + orderID
}

// NewSocketServer initializes the Socket.IO server that pushes payment
// status transitions. Checkout pages subscribe with their order id; every
// event the payment bus publishes for that order is broadcast to the room.
func NewSocketServer(bus *services.PaymentBus, payments *services.PaymentService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "subscribe", func(c socketio.Conn, data map[string]string) {
		orderID := data["orderId"]
		if orderID == "" {
			log.Println("❌ Invalid orderId in subscribe request")
			return
		}
		log.Printf("👀 Client %s subscribed to order %s", c.ID(), orderID)
		c.Join(orderRoom(orderID))

		// Make sure someone is actually watching the order
		payments.StartWatch(orderID)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	bus.OnPaymentEvent(func(event services.PaymentEvent) {
		server.BroadcastToRoom("/", orderRoom(event.OrderID), "paymentStatus", event)
	})

	return server
}
