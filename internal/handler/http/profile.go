package http

import (
	"net/http"

	"github.com/MKhiriev/ar-fit/internal/utils"
	"github.com/MKhiriev/ar-fit/models"
)

type surveyRequest struct {
	BodyProblems     []string `json:"bodyProblems"`
	DietRestrictions []string `json:"dietRestrictions"`
}

type mealRequest struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

type stepsRequest struct {
	Steps int `json:"steps"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	patch, err := decodeJSON[models.ProfilePatch](w, r)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	user, err := h.services.ProfileService.UpdateProfile(r.Context(), h.services.Session, patch)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	utils.WriteJSON(w, publicUser(user), http.StatusOK)
}

func (h *Handler) submitSurvey(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[surveyRequest](w, r)
	if err != nil {
		writeError(w, r, "*Handler.submitSurvey", err)
		return
	}

	user, err := h.services.ProfileService.SubmitSurvey(r.Context(), h.services.Session, req.BodyProblems, req.DietRestrictions)
	if err != nil {
		writeError(w, r, "*Handler.submitSurvey", err)
		return
	}

	utils.WriteJSON(w, publicUser(user), http.StatusOK)
}

func (h *Handler) addMeal(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[mealRequest](w, r)
	if err != nil {
		writeError(w, r, "*Handler.addMeal", err)
		return
	}

	user, err := h.services.ProfileService.AddMeal(r.Context(), h.services.Session, req.Name, req.Calories)
	if err != nil {
		writeError(w, r, "*Handler.addMeal", err)
		return
	}

	utils.WriteJSON(w, publicUser(user), http.StatusCreated)
}

func (h *Handler) recordSteps(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[stepsRequest](w, r)
	if err != nil {
		writeError(w, r, "*Handler.recordSteps", err)
		return
	}

	user, err := h.services.ProfileService.RecordSteps(r.Context(), h.services.Session, req.Steps)
	if err != nil {
		writeError(w, r, "*Handler.recordSteps", err)
		return
	}

	utils.WriteJSON(w, publicUser(user), http.StatusOK)
}
