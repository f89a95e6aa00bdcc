package http

import (
	"net/http"

	"github.com/MKhiriev/ar-fit/internal/utils"
	"github.com/MKhiriev/ar-fit/models"
)

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[models.CalorieRequest](w, r)
	if err != nil {
		writeError(w, r, "*Handler.calculate", err)
		return
	}

	result, err := h.services.CalculatorService.Calculate(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.calculate", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
