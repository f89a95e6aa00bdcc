package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/validators"
)

func TestMessageKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "credentials", err: service.ErrInvalidCredentials, want: MsgInvalidLoginPassword},
		{name: "wrapped duplicate", err: fmt.Errorf("register: %w", store.ErrDuplicateEmail), want: MsgEmailAlreadyExists},
		{name: "no session", err: store.ErrNoSession, want: MsgNotLoggedIn},
		{name: "not session user", err: service.ErrNotSessionUser, want: MsgAccessDenied},
		{name: "parse", err: fmt.Errorf("%w: element 2: boom", service.ErrParse), want: MsgImportParse},
		{name: "conflict", err: store.ErrConflict, want: MsgDataConflict},
		{name: "unavailable", err: fmt.Errorf("get: %w", kv.ErrUnavailable), want: MsgStorageUnavailable},
		{name: "bare validator error", err: validators.ErrInvalidDuration, want: MsgInvalidDataProvided},
		{name: "unknown", err: errors.New("disk on fire"), want: MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageKey(tt.err))
		})
	}
}

func TestMessage_ValidationReason(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidAge)

	assert.Equal(t, "invalid data provided: age must be between 1 and 120", Message(err, LangEnglish))
	assert.Equal(t, "البيانات المدخلة غير صالحة: age must be between 1 and 120", Message(err, LangArabic))
}

func TestMessage_Languages(t *testing.T) {
	assert.Equal(t, MsgInvalidLoginPassword, Message(service.ErrInvalidCredentials, LangEnglish))
	assert.Equal(t, arabic[MsgInvalidLoginPassword], Message(service.ErrInvalidCredentials, LangArabic))
	assert.Equal(t, MsgTaskNotFound, Message(service.ErrTaskNotFound, "fr"))
	assert.Empty(t, Message(nil, LangEnglish))
}

func TestText_EveryKeyTranslated(t *testing.T) {
	for _, m := range errorMessages {
		_, ok := arabic[m.msg]
		assert.True(t, ok, "missing arabic text for %q", m.msg)
	}
	assert.Equal(t, "unknown key", Text("unknown key", LangArabic))
}
