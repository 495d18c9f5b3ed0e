package ytapi_test

import (
	"testing"

	"curator/internal/ytapi"
)

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"PT1H5M0S", 65, false},
		{"PT1H5M", 65, false},
		{"PT45S", 0, false},
		{"PT0S", 0, false},
		{"PT30M", 30, false},
		{"PT2H", 120, false},
		{"P1DT1H", 1500, false},
		{"PT1H90S", 61, false},
		{"", 0, true},
		{"garbage", 0, true},
	}
	for _, tc := range cases {
		minutes, err := ytapi.ParseISODuration(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseISODuration(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseISODuration(%q): %v", tc.input, err)
		}
		if minutes != tc.minutes {
			t.Fatalf("ParseISODuration(%q) = %d, expected %d", tc.input, minutes, tc.minutes)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"PT1H5M30S", "1h5m30s"},
		{"PT1H30S", "1h30s"},
		{"PT45S", "45s"},
		{"PT10M", "10m"},
		{"PT0S", "0s"},
		{"nonsense", "0s"},
	}
	for _, tc := range cases {
		if got := ytapi.FormatDuration(tc.input); got != tc.expected {
			t.Fatalf("FormatDuration(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}
