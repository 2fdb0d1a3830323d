package dto

import "testing"

func strPtr(s string) *string { return &s }

func TestResolvedPriority(t *testing.T) {
	req := CreateAnnouncementRequest{}
	if got := req.ResolvedPriority(); got != "normal" {
		t.Errorf("default priority = %q", got)
	}
	req.Priority = strPtr(" URGENT ")
	if got := req.ResolvedPriority(); got != "urgent" {
		t.Errorf("priority = %q", got)
	}
	req.Priority = strPtr("critical")
	if got := req.ResolvedPriority(); got != "normal" {
		t.Errorf("invalid priority = %q, want normal", got)
	}
}

func TestResolvedAudience(t *testing.T) {
	req := CreateAnnouncementRequest{}
	if got := req.ResolvedAudience(); got != "all_members" {
		t.Errorf("default audience = %q", got)
	}
	req.Audience = strPtr("   ")
	if got := req.ResolvedAudience(); got != "all_members" {
		t.Errorf("blank audience = %q", got)
	}
	req.Audience = strPtr(" coordinators ")
	if got := req.ResolvedAudience(); got != "coordinators" {
		t.Errorf("audience = %q", got)
	}
}

func TestResolvedStatus(t *testing.T) {
	req := CreateAnnouncementRequest{}
	if got := req.ResolvedStatus(); got != "draft" {
		t.Errorf("default status = %q", got)
	}
	req.Status = strPtr("Published")
	if got := req.ResolvedStatus(); got != "published" {
		t.Errorf("status = %q", got)
	}
	req.Status = strPtr("archived")
	if got := req.ResolvedStatus(); got != "draft" {
		t.Errorf("unknown status = %q, want draft", got)
	}
}

func TestToModelBooleans(t *testing.T) {
	yes := true
	req := CreateAnnouncementRequest{Title: "T", Content: "C", Pinned: &yes}
	m := req.ToModel(nil, nil)
	if !m.Pinned {
		t.Error("pinned lost")
	}
	if m.SendEmail {
		t.Error("send_email defaulted to true")
	}
}

func TestUpdateAnnouncementBuildUpdates(t *testing.T) {
	req := UpdateAnnouncementRequest{
		Title:    strPtr("  "),        // blank keeps stored value
		Priority: strPtr("critical"),  // invalid -> normal
	}
	updates := req.BuildUpdates()
	if _, ok := updates["title"]; ok {
		t.Error("blank title should not appear in updates")
	}
	if got := updates["priority"]; got != "normal" {
		t.Errorf("priority = %v, want normal", got)
	}
}
