package controller

import (
	"testing"
	"time"
)

func TestCheckWindow(t *testing.T) {
	at := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	later := at.Add(48 * time.Hour)

	if msg := checkWindow("published", nil, nil); msg == "" {
		t.Error("published without publish_at should fail")
	}
	if msg := checkWindow("draft", nil, nil); msg != "" {
		t.Errorf("draft without schedule failed: %q", msg)
	}
	if msg := checkWindow("published", &at, &later); msg != "" {
		t.Errorf("valid window failed: %q", msg)
	}
	if msg := checkWindow("published", &later, &at); msg == "" {
		t.Error("expire before publish should fail")
	}
	if msg := checkWindow("draft", &at, &at); msg == "" {
		t.Error("expire equal to publish should fail")
	}
	if msg := checkWindow("published", &at, nil); msg != "" {
		t.Errorf("publish without expiry failed: %q", msg)
	}
}
