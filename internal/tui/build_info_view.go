// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/ar-fit/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	shown := info.ForDisplay()
	body := fmt.Sprintf("Application: AR-Fit\nVersion: %s\nDate: %s\nCommit: %s",
		shown.BuildVersion(), shown.BuildDate(), shown.BuildCommit())

	return renderPage("ABOUT", body, "esc: back")
}
