package http

import (
	"net/http"

	"github.com/MKhiriev/ar-fit/internal/utils"
)

type versionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	info := h.services.AppInfoService.GetBuildInfo(ctx)

	utils.WriteJSON(w, versionResponse{
		Version:     h.services.AppInfoService.GetAppVersion(ctx),
		BuildDate:   info.BuildDate(),
		BuildCommit: info.BuildCommit(),
	}, http.StatusOK)
}
