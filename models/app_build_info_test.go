package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_ForDisplay(t *testing.T) {
	info := NewAppBuildInfo(" 1.2.0 ", "", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Empty(t, info.BuildDate())

	shown := info.ForDisplay()
	assert.Equal(t, "1.2.0", shown.BuildVersion())
	assert.Equal(t, NotAvailable, shown.BuildDate())
	assert.Equal(t, "abc123", shown.BuildCommit())
}
