package httpapi

import (
	"errors"
	"net/http"

	"github.com/mpetrov/dashauth/internal/common"
	"github.com/mpetrov/dashauth/internal/logging"
	"github.com/mpetrov/dashauth/internal/server/services"
)

// UserHandler serves the protected profile endpoint of the user service.
type UserHandler struct {
	service *services.UserService
	logger  logging.Logger
}

func NewUserHandler(service *services.UserService, logger logging.Logger) *UserHandler {
	return &UserHandler{service: service, logger: logger.With("module", "user_handler")}
}

// Me returns the profile of the token's subject. The lookup is fresh: a user
// deleted after token issuance yields 404, not 401.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, message{"Missing or invalid auth header."})
		return
	}

	profile, err := h.service.Profile(r.Context(), claims.Subject)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeJSON(w, http.StatusNotFound, message{"User not found."})
		default:
			h.logger.Error(r.Context(), "profile fetch failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, message{"Failed to fetch profile."})
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
