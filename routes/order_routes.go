package routes

import (
	"invitaciones_server/controllers"
	"invitaciones_server/services"

	"github.com/gorilla/mux"
)

// RegisterOrderRoutes sets up routes for checkout orders under /api/orders
func RegisterOrderRoutes(r *mux.Router, orderService *services.OrderService) {
	controller := controllers.NewOrderController(orderService)

	orderRouter := r.PathPrefix("/api/orders").Subrouter()

	orderRouter.HandleFunc("", controller.CreateOrder).Methods("POST")
	orderRouter.HandleFunc("/{orderId}", controller.GetOrder).Methods("GET")
}
