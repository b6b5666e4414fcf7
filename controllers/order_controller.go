package controllers

import (
	"log"
	"net/http"

	"invitaciones_server/models"
	"invitaciones_server/services"
	"invitaciones_server/utils"

	"github.com/gorilla/mux"
)

// OrderController handles checkout orders
type OrderController struct {
	OrderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{OrderService: orderService}
}

// CreateOrder stores a new pending order.
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID     string  `json:"userId" validate:"required"`
		TemplateID string  `json:"templateId" validate:"required"`
		Total      float64 `json:"total" validate:"required,gt=0"`
		Currency   string  `json:"currency" validate:"omitempty,len=3"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		utils.RespondError(w, err)
		return
	}

	order, err := c.OrderService.CreateOrder(r.Context(), models.Order{
		UserID:     payload.UserID,
		TemplateID: payload.TemplateID,
		Total:      payload.Total,
		Currency:   payload.Currency,
	})
	if err != nil {
		log.Printf("Failed to create order: %v", err)
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusCreated, order)
}

// GetOrder serves one order.
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	order, err := c.OrderService.GetOrder(r.Context(), orderID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, order)
}
