// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable stands in for build metadata the linker did not set.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into a binary with
// -ldflags. Any of them may be empty in local builds.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// ForDisplay returns a copy with empty values replaced by [NotAvailable].
func (a AppBuildInfo) ForDisplay() AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(a.buildVersion),
		buildDate:    orNotAvailable(a.buildDate),
		buildCommit:  orNotAvailable(a.buildCommit),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
