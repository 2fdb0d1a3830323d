package dto

import "testing"

func strPtr(s string) *string { return &s }

func TestCreateCoordinatorRequestNormalize(t *testing.T) {
	req := CreateCoordinatorRequest{
		CoordinatorName: " Ravi ",
		ClubID:          3,
		RoleType:        strPtr(" Faculty "),
		Phone:           strPtr("123"),
	}
	req.Normalize()

	if req.CoordinatorName != "Ravi" {
		t.Errorf("CoordinatorName = %q", req.CoordinatorName)
	}
	// role_type is free text, only lowercased.
	if req.RoleType == nil || *req.RoleType != "faculty" {
		t.Errorf("RoleType = %v", req.RoleType)
	}
	if req.Phone != nil {
		t.Errorf("invalid phone kept: %q", *req.Phone)
	}

	req.RoleType = strPtr("Club President")
	req.Normalize()
	if req.RoleType == nil || *req.RoleType != "club president" {
		t.Errorf("free-text role = %v", req.RoleType)
	}
}

func TestUpdateCoordinatorRequestBuildUpdates(t *testing.T) {
	req := UpdateCoordinatorRequest{
		RoleType: strPtr("  "),       // blank keeps stored value
		Phone:    strPtr("garbage"),  // invalid -> explicit NULL
		Status:   strPtr("inactive"),
	}
	updates := req.BuildUpdates()

	if _, ok := updates["role_type"]; ok {
		t.Error("blank role_type should not appear in updates")
	}
	if v, ok := updates["phone"]; !ok || v != (*string)(nil) {
		t.Errorf("phone = %v (present=%v), want explicit NULL", v, ok)
	}
	if got := updates["status"]; got != "inactive" {
		t.Errorf("status = %v", got)
	}
	if _, ok := updates["club_id"]; ok {
		t.Error("club_id is controller territory, not BuildUpdates")
	}
}
