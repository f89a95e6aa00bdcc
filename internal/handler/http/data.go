package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/ar-fit/internal/adapter"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/internal/utils"
)

func (h *Handler) exportData(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.PortabilityService.ExportAll(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.exportData", err)
		return
	}

	utils.WriteAttachment(w, service.ExportFileName, data)
}

// importData replaces every stored user with the posted export. The
// optional X-Export-Name header is only logged.
func (h *Handler) importData(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, "*Handler.importData", ErrInvalidJSON)
		return
	}
	if len(data) == 0 {
		writeError(w, r, "*Handler.importData", ErrEmptyBody)
		return
	}

	if err = h.services.PortabilityService.ImportAll(r.Context(), data); err != nil {
		writeError(w, r, "*Handler.importData", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("export_name", r.Header.Get(adapter.ExportNameHeader)).
		Int("bytes", len(data)).
		Msg("users imported")
	w.WriteHeader(http.StatusNoContent)
}
