package dto

import "testing"

func strPtr(s string) *string { return &s }

func TestCreateClubRequestToModel(t *testing.T) {
	req := CreateClubRequest{
		ClubName:     "  Robotics Club  ",
		ClubCategory: strPtr("  technical "),
		Status:       strPtr("Active"),
	}
	req.Normalize()
	m := req.ToModel()

	if m.ClubName != "Robotics Club" {
		t.Errorf("ClubName = %q", m.ClubName)
	}
	if m.ClubCategory == nil || *m.ClubCategory != "technical" {
		t.Errorf("ClubCategory = %v", m.ClubCategory)
	}
	if m.Status != "active" {
		t.Errorf("Status = %q", m.Status)
	}
}

func TestCreateClubRequestStatusDefault(t *testing.T) {
	req := CreateClubRequest{ClubName: "Chess", Status: strPtr("archived")}
	req.Normalize()
	if got := req.ToModel().Status; got != "active" {
		t.Errorf("invalid status stored as %q, want active", got)
	}

	req = CreateClubRequest{ClubName: "Chess"}
	req.Normalize()
	if got := req.ToModel().Status; got != "active" {
		t.Errorf("missing status stored as %q, want active", got)
	}
}

func TestUpdateClubRequestBuildUpdates(t *testing.T) {
	req := UpdateClubRequest{
		ClubName:    strPtr("  New Name "),
		Description: strPtr("   "),       // blank keeps stored value
		Status:      strPtr("nonsense"),  // invalid status ignored
	}
	updates := req.BuildUpdates()

	if got := updates["club_name"]; got != "New Name" {
		t.Errorf("club_name = %v", got)
	}
	if _, ok := updates["description"]; ok {
		t.Error("blank description should not appear in updates")
	}
	if _, ok := updates["status"]; ok {
		t.Error("invalid status should not appear in updates")
	}
	if _, ok := updates["club_category"]; ok {
		t.Error("absent field should not appear in updates")
	}
}

func TestUpdateClubRequestEmpty(t *testing.T) {
	var req UpdateClubRequest
	if got := req.BuildUpdates(); len(got) != 0 {
		t.Errorf("empty request produced updates: %v", got)
	}
}
