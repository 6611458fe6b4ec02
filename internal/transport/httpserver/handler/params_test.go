package handler

import (
	"testing"
	"time"
)

func TestParseDateLenient(t *testing.T) {
	if got := parseDateLenient(""); got != nil {
		t.Fatalf("expected nil for empty value, got %v", got)
	}
	if got := parseDateLenient("not-a-date"); got != nil {
		t.Fatalf("expected nil for garbage, got %v", got)
	}
	if got := parseDateLenient("2024-13-40"); got != nil {
		t.Fatalf("expected nil for impossible date, got %v", got)
	}

	got := parseDateLenient("2024-01-15")
	if got == nil || !got.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2024-01-15 midnight UTC, got %v", got)
	}

	got = parseDateLenient("2024-01-15T10:30:00Z")
	if got == nil || !got.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)) {
		t.Fatalf("expected RFC3339 parse, got %v", got)
	}
}

func TestParseIntParam(t *testing.T) {
	if got := parseIntParam("", 20); got != 20 {
		t.Fatalf("expected fallback 20, got %d", got)
	}
	if got := parseIntParam("50", 20); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := parseIntParam("-1", 20); got != 20 {
		t.Fatalf("expected fallback for negative, got %d", got)
	}
	if got := parseIntParam("abc", 20); got != 20 {
		t.Fatalf("expected fallback for garbage, got %d", got)
	}
}
