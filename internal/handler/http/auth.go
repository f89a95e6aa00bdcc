package http

import (
	"net/http"

	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/utils"
	"github.com/MKhiriev/ar-fit/models"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	user, err := decodeJSON[models.User](w, r)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	registered, err := h.services.AuthService.Register(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", registered.ID).Msg("user registered")
	utils.WriteJSON(w, publicUser(registered), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeJSON[credentials](w, r)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), h.services.Session, creds.Email, creds.Password)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user logged in")
	utils.WriteJSON(w, publicUser(user), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context(), h.services.Session); err != nil {
		writeError(w, r, "*Handler.logout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.Current(r.Context(), h.services.Session)
	if err != nil {
		writeError(w, r, "*Handler.current", err)
		return
	}

	utils.WriteJSON(w, publicUser(user), http.StatusOK)
}
