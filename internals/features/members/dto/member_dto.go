package dto

import (
	"strings"
	"time"

	memberModel "ainexus_backend/internals/features/members/model"
	helper "ainexus_backend/internals/helpers"
)

// ===================== REQUESTS =====================

type CreateMemberRequest struct {
	MemberName  string  `json:"member_name" validate:"required"`
	ClubIDs     []uint  `json:"club_ids" validate:"required,min=1"`
	CollegeID   *uint   `json:"college_id"`
	FacultyDept *string `json:"faculty_dept"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (r *CreateMemberRequest) Normalize() {
	r.MemberName = strings.TrimSpace(r.MemberName)
	r.ClubIDs = dedupeIDs(r.ClubIDs)
	r.FacultyDept = helper.TrimPtr(r.FacultyDept)
	r.Email = helper.TrimPtr(r.Email)
	if r.Phone != nil {
		r.Phone = helper.CleanPhone(*r.Phone)
	}
	r.Description = helper.TrimPtr(r.Description)
}

func (r *CreateMemberRequest) ToModel() *memberModel.MemberModel {
	// Status stays NULL unless a valid value is sent; NULL reads as active.
	var status *string
	if r.Status != nil {
		if s := helper.CleanStatus(*r.Status, ""); s != "" {
			status = &s
		}
	}
	return &memberModel.MemberModel{
		MemberName:  r.MemberName,
		CollegeID:   r.CollegeID,
		FacultyDept: r.FacultyDept,
		Email:       r.Email,
		Phone:       r.Phone,
		Description: r.Description,
		Status:      status,
	}
}

type UpdateMemberRequest struct {
	MemberName  *string `json:"member_name"`
	ClubIDs     []uint  `json:"club_ids"`
	CollegeID   *uint   `json:"college_id"`
	FacultyDept *string `json:"faculty_dept"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// BuildUpdates covers the scalar columns; club_ids and college_id are
// resolved by the controller.
func (r *UpdateMemberRequest) BuildUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if v := helper.TrimPtr(r.MemberName); v != nil {
		updates["member_name"] = *v
	}
	if v := helper.TrimPtr(r.FacultyDept); v != nil {
		updates["faculty_dept"] = *v
	}
	if v := helper.TrimPtr(r.Email); v != nil {
		updates["email"] = *v
	}
	if r.Phone != nil {
		updates["phone"] = helper.CleanPhone(*r.Phone)
	}
	if v := helper.TrimPtr(r.Description); v != nil {
		updates["description"] = *v
	}
	if r.Status != nil {
		if s := helper.CleanStatus(*r.Status, ""); s != "" {
			updates["status"] = s
		}
	}
	return updates
}

// ===================== RESPONSES =====================

type MemberClub struct {
	ClubID    uint   `json:"club_id"`
	ClubName  string `json:"club_name"`
	IsDeleted bool   `json:"is_deleted"`
}

type MemberResponse struct {
	MemberID    uint         `json:"member_id"`
	MemberName  string       `json:"member_name"`
	Clubs       []MemberClub `json:"clubs"`
	CollegeID   *uint        `json:"college_id"`
	CollegeName *string      `json:"college_name"`
	FacultyDept *string      `json:"faculty_dept"`
	Email       *string      `json:"email"`
	Phone       *string      `json:"phone"`
	MemberImage *string      `json:"member_image"`
	Description *string      `json:"description"`
	Status      string       `json:"status"`
	IsDeleted   bool         `json:"is_deleted"`
	CreatedTime string       `json:"created_time"`
	UpdatedTime string       `json:"updated_time"`
}

func NewMemberResponse(m *memberModel.MemberModel, clubs []MemberClub, collegeName *string) *MemberResponse {
	if m == nil {
		return nil
	}
	// NULL status reads as active.
	status := "active"
	if m.Status != nil {
		status = *m.Status
	}
	if clubs == nil {
		clubs = []MemberClub{}
	}
	return &MemberResponse{
		MemberID:    m.MemberID,
		MemberName:  m.MemberName,
		Clubs:       clubs,
		CollegeID:   m.CollegeID,
		CollegeName: collegeName,
		FacultyDept: m.FacultyDept,
		Email:       m.Email,
		Phone:       m.Phone,
		MemberImage: helper.ImageURL(m.MemberImage),
		Description: m.Description,
		Status:      status,
		IsDeleted:   m.IsDeleted,
		CreatedTime: formatTime(m.CreatedTime),
		UpdatedTime: formatTime(m.UpdatedTime),
	}
}

// MemberListItem is the table row shape: club names come pre-aggregated
// from the listing query instead of a per-row fetch.
type MemberListItem struct {
	MemberID    uint     `json:"member_id"`
	MemberName  string   `json:"member_name"`
	ClubNames   []string `json:"club_names"`
	CollegeID   *uint    `json:"college_id"`
	CollegeName *string  `json:"college_name"`
	FacultyDept *string  `json:"faculty_dept"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	MemberImage *string  `json:"member_image"`
	Status      string   `json:"status"`
	CreatedTime string   `json:"created_time"`
}

func NewMemberListItem(m *memberModel.MemberModel, clubNames []string, collegeName *string) *MemberListItem {
	status := "active"
	if m.Status != nil {
		status = *m.Status
	}
	if clubNames == nil {
		clubNames = []string{}
	}
	return &MemberListItem{
		MemberID:    m.MemberID,
		MemberName:  m.MemberName,
		ClubNames:   clubNames,
		CollegeID:   m.CollegeID,
		CollegeName: collegeName,
		FacultyDept: m.FacultyDept,
		Email:       m.Email,
		Phone:       m.Phone,
		MemberImage: helper.ImageURL(m.MemberImage),
		Status:      status,
		CreatedTime: formatTime(m.CreatedTime),
	}
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

func dedupeIDs(ids []uint) []uint {
	seen := map[uint]bool{}
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
