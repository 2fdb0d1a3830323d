package dto

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreateEventRequestNormalize(t *testing.T) {
	req := CreateEventRequest{
		EventName:       "  Hackathon  ",
		Venue:           strPtr("  Main Hall "),
		MaxParticipants: intPtr(0),
	}
	req.Normalize()

	if req.EventName != "Hackathon" {
		t.Errorf("EventName = %q", req.EventName)
	}
	if req.Venue == nil || *req.Venue != "Main Hall" {
		t.Errorf("Venue = %v", req.Venue)
	}
	if req.MaxParticipants != nil {
		t.Errorf("non-positive cap kept: %d", *req.MaxParticipants)
	}

	req = CreateEventRequest{EventName: "X", MaxParticipants: intPtr(100)}
	req.Normalize()
	if req.MaxParticipants == nil || *req.MaxParticipants != 100 {
		t.Errorf("valid cap dropped: %v", req.MaxParticipants)
	}
}

func TestCreateEventRequestResolvedStatus(t *testing.T) {
	req := CreateEventRequest{}
	if got := req.ResolvedStatus(); got != "upcoming" {
		t.Errorf("default status = %q", got)
	}
	req.Status = strPtr("  COMPLETED ")
	if got := req.ResolvedStatus(); got != "completed" {
		t.Errorf("status = %q", got)
	}
	req.Status = strPtr("   ")
	if got := req.ResolvedStatus(); got != "upcoming" {
		t.Errorf("blank status = %q", got)
	}
}

func TestCreateEventRequestParse(t *testing.T) {
	req := CreateEventRequest{StartDate: "2026-10-01", StartTime: "10:00"}
	start := req.ParseStart()
	if start == nil || start.Hour() != 10 {
		t.Fatalf("ParseStart split = %v", start)
	}

	req = CreateEventRequest{StartAt: "2026-10-01T10:00:00"}
	if got := req.ParseStart(); got == nil || got.Day() != 1 {
		t.Fatalf("ParseStart iso = %v", got)
	}

	req = CreateEventRequest{EndDate: "2026-10-01", EndTime: "not a time"}
	if got := req.ParseEnd(); got != nil {
		t.Fatalf("bad end parsed to %v, want nil", got)
	}
}

func TestNewEventResponse(t *testing.T) {
	req := CreateEventRequest{EventName: "Demo", OrganisingClubID: 7}
	start := time.Date(2026, 10, 1, 10, 0, 0, 0, time.Local)
	m := req.ToModel(start, nil, "upcoming")

	resp := NewEventResponse(m, &ClubRef{Name: "Robotics", Deleted: true})
	if resp.ClubName == nil || *resp.ClubName != "Robotics" {
		t.Errorf("ClubName = %v", resp.ClubName)
	}
	if !resp.ClubDeleted {
		t.Error("ClubDeleted flag lost")
	}
	if resp.StartAt == nil || *resp.StartAt != "2026-10-01T10:00:00" {
		t.Errorf("StartAt = %v", resp.StartAt)
	}
	if resp.EndAt != nil {
		t.Errorf("EndAt = %v, want nil", resp.EndAt)
	}

	resp = NewEventResponse(m, nil)
	if resp.ClubName != nil || resp.ClubDeleted {
		t.Error("missing club ref should leave name nil")
	}
}
