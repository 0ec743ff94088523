package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpetrov/dashauth/internal/common"
	"github.com/mpetrov/dashauth/internal/logging"
	"github.com/mpetrov/dashauth/internal/server/services"
)

// AuthHandler serves signup and login for the auth service.
type AuthHandler struct {
	service *services.UserService
	logger  logging.Logger
}

func NewAuthHandler(service *services.UserService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger.With("module", "auth_handler")}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string            `json:"token"`
	User  services.UserView `json:"user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, message{"Name, email, and password are required."})
		return
	}

	res, err := h.service.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeJSON(w, http.StatusBadRequest, message{"Name, email, and password are required."})
		case errors.Is(err, common.ErrorAlreadyExists):
			writeJSON(w, http.StatusConflict, message{"Email already registered."})
		default:
			h.logger.Error(r.Context(), "signup failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, message{"Failed to sign up."})
		}
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: res.Token, User: res.User})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, message{"Email and password are required."})
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeJSON(w, http.StatusBadRequest, message{"Email and password are required."})
		case errors.Is(err, common.ErrorUnauthorized):
			writeJSON(w, http.StatusUnauthorized, message{"Invalid credentials."})
		default:
			h.logger.Error(r.Context(), "login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, message{"Failed to log in."})
		}
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: res.Token, User: res.User})
}
