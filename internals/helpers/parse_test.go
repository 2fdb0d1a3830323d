package helper

import (
	"testing"
	"time"
)

func TestTrimToNil(t *testing.T) {
	if got := TrimToNil("  hello  "); got == nil || *got != "hello" {
		t.Fatalf("TrimToNil trimmed = %v", got)
	}
	if got := TrimToNil("   "); got != nil {
		t.Fatalf("TrimToNil blank = %v, want nil", *got)
	}
	if got := TrimToNil(""); got != nil {
		t.Fatalf("TrimToNil empty = %v, want nil", *got)
	}
}

func TestCleanPhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantNil bool
	}{
		{"+91 98765 43210", "+91 98765 43210", false},
		{"(987) 654-3210", "987 6543210", false},
		{"12345", "", true}, // too few digits
		{"not a phone", "", true},
		{"", "", true},
		{"12345678901234567890", "", true}, // too many digits
	}
	for _, tc := range cases {
		got := CleanPhone(tc.in)
		if tc.wantNil {
			if got != nil {
				t.Errorf("CleanPhone(%q) = %q, want nil", tc.in, *got)
			}
			continue
		}
		if got == nil || *got != tc.want {
			t.Errorf("CleanPhone(%q) = %v, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanRole(t *testing.T) {
	if got := CleanRole("  Principal "); got == nil || *got != "principal" {
		t.Fatalf("CleanRole principal = %v", got)
	}
	if got := CleanRole("president"); got != nil {
		t.Fatalf("CleanRole unknown role = %q, want nil", *got)
	}
	if got := CleanRole(""); got != nil {
		t.Fatalf("CleanRole empty = %q, want nil", *got)
	}
}

func TestCleanStatus(t *testing.T) {
	if got := CleanStatus(" Active ", "active"); got != "active" {
		t.Fatalf("CleanStatus = %q", got)
	}
	if got := CleanStatus("INACTIVE", "active"); got != "inactive" {
		t.Fatalf("CleanStatus = %q", got)
	}
	if got := CleanStatus("archived", "active"); got != "active" {
		t.Fatalf("CleanStatus fallback = %q", got)
	}
	if got := CleanStatus("whatever", ""); got != "" {
		t.Fatalf("CleanStatus empty fallback = %q", got)
	}
}

func TestParseDateTime(t *testing.T) {
	got := ParseDateTime("2026-09-25", "14:30")
	if got == nil {
		t.Fatal("ParseDateTime 24h returned nil")
	}
	want := time.Date(2026, 9, 25, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("ParseDateTime 24h = %v, want %v", got, want)
	}

	got = ParseDateTime("2026-09-25", "2:30 PM")
	if got == nil || got.Hour() != 14 || got.Minute() != 30 {
		t.Fatalf("ParseDateTime 12h = %v", got)
	}

	// Meridiem is case-insensitive.
	got = ParseDateTime("2026-09-25", "2:30 pm")
	if got == nil || got.Hour() != 14 || got.Minute() != 30 {
		t.Fatalf("ParseDateTime lowercase meridiem = %v", got)
	}
	got = ParseDateTime("2026-09-25", "9:05 Am")
	if got == nil || got.Hour() != 9 || got.Minute() != 5 {
		t.Fatalf("ParseDateTime mixed-case meridiem = %v", got)
	}

	if got := ParseDateTime("2026-09-25", ""); got != nil {
		t.Fatalf("ParseDateTime missing time = %v, want nil", got)
	}
	if got := ParseDateTime("25/09/2026", "14:30"); got != nil {
		t.Fatalf("ParseDateTime bad date = %v, want nil", got)
	}
}

func TestParseISO(t *testing.T) {
	got := ParseISO("2026-09-25T14:30:00Z")
	if got == nil {
		t.Fatal("ParseISO Z returned nil")
	}
	// Zone is stripped; the wall clock is kept as written.
	if got.Hour() != 14 || got.Minute() != 30 || got.Location() != time.Local {
		t.Fatalf("ParseISO Z = %v", got)
	}

	if got := ParseISO("2026-09-25T14:30"); got == nil || got.Hour() != 14 {
		t.Fatalf("ParseISO minute precision = %v", got)
	}
	if got := ParseISO("next tuesday"); got != nil {
		t.Fatalf("ParseISO garbage = %v, want nil", got)
	}
	if got := ParseISO(""); got != nil {
		t.Fatalf("ParseISO empty = %v, want nil", got)
	}
}

func TestParseAny(t *testing.T) {
	// Split pair wins when both forms are present.
	got := ParseAny("2026-09-25", "09:00", "2026-12-31T23:59:00")
	if got == nil || got.Month() != time.September {
		t.Fatalf("ParseAny split precedence = %v", got)
	}
	// Falls back to the ISO string.
	got = ParseAny("", "", "2026-12-31T23:59:00")
	if got == nil || got.Month() != time.December {
		t.Fatalf("ParseAny iso fallback = %v", got)
	}
	if got := ParseAny("", "", ""); got != nil {
		t.Fatalf("ParseAny all empty = %v, want nil", got)
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"1", "true", "TRUE", "yes", "on", " Yes "} {
		if !ParseBool(s) {
			t.Errorf("ParseBool(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "0", "false", "no", "off", "maybe"} {
		if ParseBool(s) {
			t.Errorf("ParseBool(%q) = true, want false", s)
		}
	}
}

func TestFormatNaive(t *testing.T) {
	if got := FormatNaive(nil); got != nil {
		t.Fatalf("FormatNaive(nil) = %v", *got)
	}
	ts := time.Date(2026, 9, 25, 9, 5, 0, 0, time.Local)
	if got := FormatNaive(&ts); got == nil || *got != "2026-09-25T09:05:00" {
		t.Fatalf("FormatNaive = %v", got)
	}
}
