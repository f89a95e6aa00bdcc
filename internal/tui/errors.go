// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/ar-fit/internal/app"
)

const msgNetworkUnavailable = "network is unavailable or the export destination cannot be reached"

// humanizeError words err for the user in lang. Network failures only
// happen on remote exports and get their own text; errors the catalog does
// not know are shown as is.
func humanizeError(err error, lang string) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgNetworkUnavailable
	}

	if app.MessageKey(err) == app.MsgInternalServerError {
		return err.Error()
	}
	return app.Message(err, lang)
}
