package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/utils"
)

// withSession rejects requests with 401 unless a user is logged in. On
// success the session user's id is stored under [utils.UserIDCtxKey].
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		session := h.services.Session
		if err := session.Load(ctx); err != nil {
			writeError(w, r, "*Handler.withSession", err)
			return
		}

		user, ok := session.User()
		if !ok {
			writeError(w, r, "*Handler.withSession", store.ErrNoSession)
			return
		}

		logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("session user resolved")

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionUserID returns the id stored by withSession.
func sessionUserID(r *http.Request) (string, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
