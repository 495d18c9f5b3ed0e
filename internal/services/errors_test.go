package services_test

import (
	"errors"
	"strings"
	"testing"

	"curator/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrProvider, "ytapi", "search", "page fetch failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrProvider) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"ytapi", "search", "page fetch failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToProvider(t *testing.T) {
	err := services.Wrap(nil, "quota", "charge", "", nil)
	if !errors.Is(err, services.ErrProvider) {
		t.Fatalf("expected provider marker fallback, got %v", err)
	}
}

func TestMarkersStayDistinct(t *testing.T) {
	declined := services.Wrap(services.ErrQuotaDeclined, "quota", "charge", "operator said no", nil)
	if errors.Is(declined, services.ErrProvider) {
		t.Fatalf("quota decline must not classify as provider error: %v", declined)
	}
	if !errors.Is(declined, services.ErrQuotaDeclined) {
		t.Fatalf("expected quota declined marker, got %v", declined)
	}
}
