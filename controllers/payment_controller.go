package controllers

import (
	"log"
	"net/http"

	"invitaciones_server/services"
	"invitaciones_server/utils"

	"github.com/gorilla/mux"
)

// PaymentController handles the Izipay checkout flow
type PaymentController struct {
	PaymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentService: paymentService}
}

// CreateFormToken issues a fresh single-use payment form token for an order
// and starts watching its status.
func (c *PaymentController) CreateFormToken(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OrderID string `json:"orderId" validate:"required"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		utils.RespondError(w, err)
		return
	}

	config, err := c.PaymentService.CreateFormToken(r.Context(), payload.OrderID)
	if err != nil {
		log.Printf("Failed to create form token: %v", err)
		utils.RespondError(w, err)
		return
	}

	c.PaymentService.StartWatch(payload.OrderID)

	utils.RespondSuccess(w, http.StatusOK, config)
}

// GetStatus serves the order's current payment status. The checkout page
// polls this until the order settles.
func (c *PaymentController) GetStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	status, err := c.PaymentService.GetStatus(r.Context(), orderID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, map[string]string{
		"orderId": orderID,
		"status":  status,
	})
}

// HandleNotification processes Izipay's server-to-server callback. The
// gateway posts kr-answer and kr-hash form fields; the hash must validate
// before the payload is trusted.
func (c *PaymentController) HandleNotification(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid notification", http.StatusBadRequest)
		return
	}

	rawAnswer := r.FormValue("kr-answer")
	signature := r.FormValue("kr-hash")

	order, err := c.PaymentService.HandleNotification(r.Context(), rawAnswer, signature)
	if err != nil {
		log.Printf("Rejected payment notification: %v", err)
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, map[string]string{
		"orderId": order.OrderID,
		"status":  order.Status,
	})
}
