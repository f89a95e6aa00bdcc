package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/ar-fit/internal/utils"
)

var importStatusErrors = map[int]error{
	http.StatusBadRequest:            ErrRemoteRejected,
	http.StatusRequestEntityTooLarge: ErrRemoteRejected,
	http.StatusConflict:              ErrRemoteConflict,
	http.StatusNotFound:              ErrRemoteNoImport,
	http.StatusMethodNotAllowed:      ErrRemoteNoImport,
	http.StatusBadGateway:            ErrRemoteUnavailable,
	http.StatusServiceUnavailable:    ErrRemoteUnavailable,
	http.StatusGatewayTimeout:        ErrRemoteUnavailable,
	http.StatusInternalServerError:   ErrRemoteFailed,
}

// mapImportResponse turns a non-2xx answer of the import endpoint into an
// error carrying the remote's own message.
func mapImportResponse(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason := remoteReason(resp.Body())
	if reason == "" {
		reason = http.StatusText(status)
	}

	if target, ok := importStatusErrors[status]; ok {
		return fmt.Errorf("%w: %s", target, reason)
	}
	return fmt.Errorf("http %d: %s", status, reason)
}

// remoteReason extracts the message of an ar-fit error body and falls back
// to the raw body for other servers.
func remoteReason(body []byte) string {
	var errResp utils.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(body))
}
