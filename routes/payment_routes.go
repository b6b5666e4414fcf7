package routes

import (
	"invitaciones_server/controllers"
	"invitaciones_server/services"

	"github.com/gorilla/mux"
)

// RegisterPaymentRoutes sets up routes for the payment flow under /api/payments
func RegisterPaymentRoutes(r *mux.Router, paymentService *services.PaymentService) {
	controller := controllers.NewPaymentController(paymentService)

	paymentRouter := r.PathPrefix("/api/payments").Subrouter()

	paymentRouter.HandleFunc("/token", controller.CreateFormToken).Methods("POST")
	paymentRouter.HandleFunc("/status/{orderId}", controller.GetStatus).Methods("GET")
	paymentRouter.HandleFunc("/notify", controller.HandleNotification).Methods("POST")
}
