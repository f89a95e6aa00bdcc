// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestContextKeyNames(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "0190f5a2-7c1e-7000-8000-000000000001"),
			wantID: "0190f5a2-7c1e-7000-8000-000000000001",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "empty",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, ""),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
		},
		{
			name: "different key",
			ctx:  context.WithValue(context.Background(), contextKey("otherKey"), "u-1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && userID != tt.wantID {
				t.Errorf("expected userID=%q, got %q", tt.wantID, userID)
			}
		})
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "trace-1" {
		t.Errorf("expected trace-1, got %q (ok=%v)", traceID, ok)
	}

	if _, ok = GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
