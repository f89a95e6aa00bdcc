// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible message catalog shared by the HTTP
// handlers, the TUI and the CLI.
//
// All Msg* constants are message keys. [Text] resolves a key in one of the
// supported languages and [Message] picks the key for an error returned by
// the services, so every surface words the same failure the same way.
package app

import (
	"errors"

	"github.com/MKhiriev/ar-fit/internal/kv"
	"github.com/MKhiriev/ar-fit/internal/service"
	"github.com/MKhiriev/ar-fit/internal/store"
	"github.com/MKhiriev/ar-fit/internal/validators"
)

const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

const (
	// MsgInvalidDataProvided is returned when input cannot be decoded or
	// fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the email/password pair
	// matches no user.
	MsgInvalidLoginPassword = "invalid email/password"

	// MsgEmailAlreadyExists is returned when registration uses an email
	// that is already taken.
	MsgEmailAlreadyExists = "email already registered"

	MsgUserNotFound = "user not found"

	// MsgNotLoggedIn is returned when an operation needs a session user
	// and there is none.
	MsgNotLoggedIn = "please log in first"

	// MsgAccessDenied is returned when an operation targets a user other
	// than the session user.
	MsgAccessDenied = "access denied"

	MsgTaskNotFound = "task not found"

	// MsgImportParse is returned when an import file is not a list of user
	// records.
	MsgImportParse = "import file is not valid ar-fit data"

	// MsgDataConflict is returned when the data was changed by another
	// process; the operation can be repeated.
	MsgDataConflict = "data was changed elsewhere, please retry"

	MsgCorruptData = "stored data is corrupt"

	MsgStorageUnavailable = "storage is unavailable"

	MsgInternalServerError = "internal server error"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"
)

var arabic = map[string]string{
	MsgInvalidDataProvided:  "البيانات المدخلة غير صالحة",
	MsgInvalidLoginPassword: "البريد الإلكتروني أو كلمة المرور غير صحيحة",
	MsgEmailAlreadyExists:   "البريد الإلكتروني مسجل بالفعل",
	MsgUserNotFound:         "المستخدم غير موجود",
	MsgNotLoggedIn:          "يرجى تسجيل الدخول أولاً",
	MsgAccessDenied:         "تم رفض الوصول",
	MsgTaskNotFound:         "المهمة غير موجودة",
	MsgImportParse:          "ملف الاستيراد ليس بيانات ar-fit صالحة",
	MsgDataConflict:         "تم تغيير البيانات في مكان آخر، يرجى إعادة المحاولة",
	MsgCorruptData:          "البيانات المخزنة تالفة",
	MsgStorageUnavailable:   "التخزين غير متاح",
	MsgInternalServerError:  "خطأ داخلي في الخادم",
	MsgRegistrationFailed:   "فشل التسجيل",
	MsgLoginFailed:          "فشل تسجيل الدخول",
}

// Text returns msg in lang. English keys are returned unchanged, as is any
// key without a translation.
func Text(msg, lang string) string {
	if lang == LangArabic {
		if t, ok := arabic[msg]; ok {
			return t
		}
	}
	return msg
}

// errorMessages is checked in order; the first match wins.
var errorMessages = []struct {
	err error
	msg string
}{
	{service.ErrInvalidCredentials, MsgInvalidLoginPassword},
	{service.ErrInvalidDataProvided, MsgInvalidDataProvided},
	{service.ErrNotSessionUser, MsgAccessDenied},
	{service.ErrTaskNotFound, MsgTaskNotFound},
	{service.ErrParse, MsgImportParse},
	{store.ErrDuplicateEmail, MsgEmailAlreadyExists},
	{store.ErrUserNotFound, MsgUserNotFound},
	{store.ErrNoSession, MsgNotLoggedIn},
	{store.ErrConflict, MsgDataConflict},
	{store.ErrCorruptState, MsgCorruptData},
	{store.ErrInvalidFields, MsgInvalidDataProvided},
	{kv.ErrUnavailable, MsgStorageUnavailable},
	{kv.ErrNotMigrated, MsgStorageUnavailable},
	{kv.ErrClosed, MsgStorageUnavailable},
}

// MessageKey returns the catalog key describing err, or
// [MsgInternalServerError] when err is not a known failure.
func MessageKey(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	if isValidationError(err) {
		return MsgInvalidDataProvided
	}
	return MsgInternalServerError
}

// Message returns the user-visible text for err in lang. Validation errors
// keep their specific reason in English so the user knows which field to
// fix.
func Message(err error, lang string) string {
	if err == nil {
		return ""
	}
	key := MessageKey(err)
	text := Text(key, lang)
	if key == MsgInvalidDataProvided {
		if reason := validationReason(err); reason != "" {
			return text + ": " + reason
		}
	}
	return text
}

var validationErrors = []error{
	validators.ErrInvalidEmail,
	validators.ErrEmptyPassword,
	validators.ErrEmptyName,
	validators.ErrInvalidGender,
	validators.ErrInvalidAge,
	validators.ErrInvalidWeight,
	validators.ErrInvalidHeight,
	validators.ErrNoFieldsToUpdate,
	validators.ErrEmptyMealName,
	validators.ErrInvalidCalories,
	validators.ErrInvalidUserID,
	validators.ErrInvalidSubscriptionType,
	validators.ErrInvalidDuration,
	validators.ErrNegativePrice,
	validators.ErrInvalidActivityLevel,
	validators.ErrInvalidWeightGoal,
}

func isValidationError(err error) bool {
	return validationReason(err) != ""
}

func validationReason(err error) string {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return v.Error()
		}
	}
	return ""
}
