package helper

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	if got := TimeAgo(nil); got != "" {
		t.Fatalf("TimeAgo(nil) = %q", got)
	}

	now := time.Now()
	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "Just now"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-1*time.Hour - time.Minute), "1 hour ago"},
		{now.Add(-49 * time.Hour), "2 days ago"},
		{now.Add(2*time.Hour + time.Minute), "in 2 hours"},
	}
	for _, tc := range cases {
		at := tc.at
		if got := TimeAgo(&at); got != tc.want {
			t.Errorf("TimeAgo(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}
}

func TestCardDatetime(t *testing.T) {
	if got := CardDatetime(nil); got != "" {
		t.Fatalf("CardDatetime(nil) = %q", got)
	}

	ts := time.Date(2026, 9, 25, 9, 0, 0, 0, time.Local)
	if got := CardDatetime(&ts); got != "Sep 25, 2026 9:00am" {
		t.Errorf("CardDatetime morning = %q", got)
	}

	ts = time.Date(2026, 1, 2, 0, 5, 0, 0, time.Local)
	if got := CardDatetime(&ts); got != "Jan 2, 2026 12:05am" {
		t.Errorf("CardDatetime midnight = %q", got)
	}

	ts = time.Date(2026, 12, 31, 23, 30, 0, 0, time.Local)
	if got := CardDatetime(&ts); got != "Dec 31, 2026 11:30pm" {
		t.Errorf("CardDatetime evening = %q", got)
	}
}
