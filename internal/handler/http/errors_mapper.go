package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/ar-fit/internal/app"
	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrNotSessionUser:        http.StatusForbidden,
	service.ErrTaskNotFound:          http.StatusNotFound,
	service.ErrParse:                 http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrDuplicateEmail: http.StatusConflict,
	store.ErrUserNotFound:   http.StatusNotFound,
	store.ErrNoSession:      http.StatusUnauthorized,
	store.ErrConflict:       http.StatusConflict,
	store.ErrCorruptState:   http.StatusInternalServerError,
	store.ErrInvalidFields:  http.StatusBadRequest,

	kv.ErrUnavailable: http.StatusServiceUnavailable,
	kv.ErrNotMigrated: http.StatusServiceUnavailable,
	kv.ErrClosed:      http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// requestLanguage picks the message language from Accept-Language.
func requestLanguage(r *http.Request) string {
	if strings.HasPrefix(strings.ToLower(r.Header.Get("Accept-Language")), app.LangArabic) {
		return app.LangArabic
	}
	return app.LangEnglish
}

// writeError logs err and answers with its status and localized message.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, app.Message(err, requestLanguage(r)), status)
}
