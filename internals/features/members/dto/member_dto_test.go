package dto

import (
	"testing"

	memberModel "ainexus_backend/internals/features/members/model"
)

func strPtr(s string) *string { return &s }

func TestCreateMemberRequestNormalize(t *testing.T) {
	req := CreateMemberRequest{
		MemberName: " Asha ",
		ClubIDs:    []uint{2, 1, 2, 0, 1},
		Phone:      strPtr("garbage"),
	}
	req.Normalize()

	if req.MemberName != "Asha" {
		t.Errorf("MemberName = %q", req.MemberName)
	}
	if len(req.ClubIDs) != 2 || req.ClubIDs[0] != 2 || req.ClubIDs[1] != 1 {
		t.Errorf("ClubIDs = %v, want deduped [2 1]", req.ClubIDs)
	}
	if req.Phone != nil {
		t.Errorf("invalid phone kept: %q", *req.Phone)
	}
}

func TestCreateMemberRequestStatus(t *testing.T) {
	req := CreateMemberRequest{MemberName: "X", ClubIDs: []uint{1}}
	if m := req.ToModel(); m.Status != nil {
		t.Errorf("missing status stored as %q, want NULL", *m.Status)
	}

	req.Status = strPtr("weird")
	if m := req.ToModel(); m.Status != nil {
		t.Errorf("invalid status stored as %q, want NULL", *m.Status)
	}

	req.Status = strPtr("Inactive")
	m := req.ToModel()
	if m.Status == nil || *m.Status != "inactive" {
		t.Errorf("Status = %v", m.Status)
	}
}

func TestNewMemberResponseNullStatus(t *testing.T) {
	m := &memberModel.MemberModel{MemberID: 1, MemberName: "Asha"}
	resp := NewMemberResponse(m, nil, nil)
	if resp.Status != "active" {
		t.Errorf("NULL status rendered as %q, want active", resp.Status)
	}
	if resp.Clubs == nil || len(resp.Clubs) != 0 {
		t.Errorf("Clubs = %v, want empty slice", resp.Clubs)
	}

	inactive := "inactive"
	m.Status = &inactive
	if got := NewMemberResponse(m, nil, nil).Status; got != "inactive" {
		t.Errorf("Status = %q", got)
	}
}

func TestUpdateMemberRequestBuildUpdates(t *testing.T) {
	req := UpdateMemberRequest{
		MemberName: strPtr(" New Name "),
		Phone:      strPtr("+91 98765 43210"),
		Status:     strPtr("nope"),
	}
	updates := req.BuildUpdates()

	if got := updates["member_name"]; got != "New Name" {
		t.Errorf("member_name = %v", got)
	}
	if v, ok := updates["phone"].(*string); !ok || v == nil || *v != "+91 98765 43210" {
		t.Errorf("phone = %v", updates["phone"])
	}
	if _, ok := updates["status"]; ok {
		t.Error("invalid status should not appear in updates")
	}
}
