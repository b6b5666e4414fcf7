package controllers

import (
	"net/http"

	"invitaciones_server/models"
	"invitaciones_server/services"
	"invitaciones_server/utils"

	"github.com/gorilla/mux"
)

// UserController handles account endpoints backing the dashboard
type UserController struct {
	UserService       *services.UserService
	InvitationService *services.InvitationService
}

func NewUserController(userService *services.UserService, invitationService *services.InvitationService) *UserController {
	return &UserController{UserService: userService, InvitationService: invitationService}
}

// CreateUser registers an account.
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmailID  string `json:"emailId" validate:"required,email"`
		FullName string `json:"fullName" validate:"required"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		utils.RespondError(w, err)
		return
	}

	user, err := c.UserService.AddUser(r.Context(), models.UserAccount{
		EmailID:  payload.EmailID,
		FullName: payload.FullName,
	})
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusCreated, user)
}

// GetUserInvitations lists the invitations a user owns.
func (c *UserController) GetUserInvitations(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	invitations, err := c.InvitationService.GetUserInvitations(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, invitations)
}
