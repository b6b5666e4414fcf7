package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"invitaciones_server/models"
)

// Envelope is the JSON reply shape shared by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondSuccess writes a {success: true, data: ...} reply.
func RespondSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Success: true, Data: data}); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// RespondError maps an error onto the taxonomy's HTTP status and writes a
// {success: false, error: ...} reply. Unrecognized errors are reported as a
// generic internal error without leaking detail.
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, models.ErrNetwork):
		status = http.StatusBadGateway
		message = "payment provider unreachable"
	case errors.Is(err, models.ErrPaymentRejected):
		status = http.StatusPaymentRequired
		message = err.Error()
	case errors.Is(err, models.ErrPaymentTimeout):
		status = http.StatusGatewayTimeout
		message = err.Error()
	default:
		log.Printf("❌ Unhandled error: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Envelope{Success: false, Error: message})
}
