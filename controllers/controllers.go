package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"invitaciones_server/models"
	"invitaciones_server/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeAndValidate decodes a JSON body into dst and runs struct-tag
// validation on it.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.ErrInvalidInput
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondSuccess(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondSuccess(w, http.StatusOK, map[string]string{"message": "Welcome to the Invitaciones API."})
}
