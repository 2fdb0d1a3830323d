package controller

import (
	"testing"
	"time"
)

func TestCheckSchedule(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name   string
		start  time.Time
		end    *time.Time
		status string
		wantOK bool
	}{
		{"upcoming in future", future, nil, "upcoming", true},
		{"upcoming in past", past, nil, "upcoming", false},
		{"upcoming right now", now, nil, "upcoming", false},
		{"completed in past", past, nil, "completed", true},
		{"cancelled in past", past, nil, "cancelled", true},
		{"end before start", future, &now, "upcoming", false},
		{"end equals start", future, &future, "upcoming", true},
	}
	for _, tc := range cases {
		msg := checkSchedule(tc.start, tc.end, tc.status, now)
		if tc.wantOK && msg != "" {
			t.Errorf("%s: unexpected error %q", tc.name, msg)
		}
		if !tc.wantOK && msg == "" {
			t.Errorf("%s: expected a schedule error", tc.name)
		}
	}
}

func TestParseDateOnly(t *testing.T) {
	got := parseDateOnly(" 2026-10-01 ")
	if got == nil || got.Day() != 1 || got.Hour() != 0 {
		t.Fatalf("parseDateOnly = %v", got)
	}
	if got := parseDateOnly("01/10/2026"); got != nil {
		t.Fatalf("bad format parsed to %v", got)
	}
	if got := parseDateOnly(""); got != nil {
		t.Fatalf("empty parsed to %v", got)
	}
}
