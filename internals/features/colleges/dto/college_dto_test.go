package dto

import "testing"

func strPtr(s string) *string { return &s }

func TestCreateCollegeRequestNormalize(t *testing.T) {
	req := CreateCollegeRequest{
		CollegeName:   " Engineering College ",
		AuthorityRole: strPtr("President"), // outside the allowed set
		Phone:         strPtr("12345"),     // too short
	}
	req.Normalize()

	if req.CollegeName != "Engineering College" {
		t.Errorf("CollegeName = %q", req.CollegeName)
	}
	if req.AuthorityRole != nil {
		t.Errorf("invalid role kept: %q", *req.AuthorityRole)
	}
	if req.Phone != nil {
		t.Errorf("invalid phone kept: %q", *req.Phone)
	}
}

func TestCreateCollegeRequestValidCleaners(t *testing.T) {
	req := CreateCollegeRequest{
		CollegeName:   "X",
		AuthorityRole: strPtr(" Principal "),
		Phone:         strPtr("+91 98765 43210"),
	}
	req.Normalize()

	if req.AuthorityRole == nil || *req.AuthorityRole != "principal" {
		t.Errorf("AuthorityRole = %v", req.AuthorityRole)
	}
	if req.Phone == nil || *req.Phone != "+91 98765 43210" {
		t.Errorf("Phone = %v", req.Phone)
	}
}

func TestUpdateCollegeRequestBuildUpdates(t *testing.T) {
	req := UpdateCollegeRequest{
		AuthorityRole: strPtr("dean"),  // invalid -> stored as NULL
		Phone:         strPtr("abc"),   // invalid -> stored as NULL
		Email:         strPtr("   "),   // blank keeps stored value
		Status:        strPtr("inactive"),
	}
	updates := req.BuildUpdates()

	if v, ok := updates["authority_role"]; !ok || v != (*string)(nil) {
		t.Errorf("authority_role = %v (present=%v), want explicit NULL", v, ok)
	}
	if v, ok := updates["phone"]; !ok || v != (*string)(nil) {
		t.Errorf("phone = %v (present=%v), want explicit NULL", v, ok)
	}
	if _, ok := updates["email"]; ok {
		t.Error("blank email should not appear in updates")
	}
	if got := updates["status"]; got != "inactive" {
		t.Errorf("status = %v", got)
	}
}
