package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{name: "map", data: map[string]string{"language": "ar"}, status: http.StatusOK, wantStatus: http.StatusOK, wantBody: `{"language":"ar"}`},
		{name: "custom status", data: ErrorResponse{Error: "no active session"}, status: http.StatusUnauthorized, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"no active session"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantStatus: http.StatusOK, wantBody: "null"},
		{name: "empty list", data: []string{}, status: http.StatusOK, wantStatus: http.StatusOK, wantBody: "[]"},
		{name: "not serializable", data: make(chan int), status: http.StatusOK, wantStatus: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "email already registered", http.StatusConflict)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"email already registered"}`, w.Body.String())
}

func TestWriteAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	data := []byte(`[{"id":"1"}]`)

	n, err := WriteAttachment(w, "ar-fit-users-data.json", data)

	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="ar-fit-users-data.json"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "12", w.Header().Get("Content-Length"))
	assert.Equal(t, string(data), w.Body.String())
}
