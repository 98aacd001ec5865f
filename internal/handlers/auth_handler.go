package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/turf-booking/internal/usecase/account"
)

type AuthHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
}

func NewAuthHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	IsOwner         bool   `json:"is_owner"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		IsOwner:         req.IsOwner,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ucAccount.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, session)
}
