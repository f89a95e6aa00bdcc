package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/ar-fit/internal/utils"
	"github.com/MKhiriev/ar-fit/models"
)

type subscriptionStatusResponse struct {
	Kind   models.SubscriptionType `json:"kind"`
	Active bool                    `json:"active"`
}

func (h *Handler) plans(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SubscriptionService.Plans(), http.StatusOK)
}

func (h *Handler) subscriptionStatus(w http.ResponseWriter, r *http.Request) {
	kind := models.SubscriptionType(chi.URLParam(r, "kind"))
	if kind != models.SubscriptionWorkout && kind != models.SubscriptionNutrition {
		writeError(w, r, "*Handler.subscriptionStatus", ErrUnknownSubscriptionKind)
		return
	}

	user, err := h.services.AuthService.Current(r.Context(), h.services.Session)
	if err != nil {
		writeError(w, r, "*Handler.subscriptionStatus", err)
		return
	}

	utils.WriteJSON(w, subscriptionStatusResponse{
		Kind:   kind,
		Active: h.services.SubscriptionService.IsActive(user, kind),
	}, http.StatusOK)
}

func (h *Handler) activateSubscription(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[models.ActivationRequest](w, r)
	if err != nil {
		writeError(w, r, "*Handler.activateSubscription", err)
		return
	}

	user, err := h.services.SubscriptionService.Activate(r.Context(), h.services.Session, req)
	if err != nil {
		writeError(w, r, "*Handler.activateSubscription", err)
		return
	}

	utils.WriteJSON(w, publicUser(user), http.StatusOK)
}
