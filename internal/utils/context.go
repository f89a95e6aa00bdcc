// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes typed context keys, JSON response writing, the HTTP client used
// for remote exports and the uuid generator for record identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the HTTP layer stores the id of the
// session user for the duration of a request.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, user.ID)
var UserIDCtxKey = contextKey("userID")

// TraceIDCtxKey is the key of the request trace id.
var TraceIDCtxKey = contextKey("traceID")

// GetUserIDFromContext retrieves the session user id from the context.
// ok is false when the value is missing, empty or not a string.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetTraceIDFromContext retrieves the trace id from the context.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
