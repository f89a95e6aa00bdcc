package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/ar-fit/models"
)

// decodeJSON reads a single JSON value of type T from the request body.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var v T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, ErrEmptyBody
		}
		return v, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return v, nil
}

// publicUser strips the password before a record leaves the server.
func publicUser(user models.User) models.User {
	user.Password = ""
	return user
}
