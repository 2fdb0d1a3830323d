package dto

import (
	"strings"
	"time"

	"ainexus_backend/internals/constants"
	coordinatorModel "ainexus_backend/internals/features/coordinators/model"
	helper "ainexus_backend/internals/helpers"
)

// ===================== REQUESTS =====================

type CreateCoordinatorRequest struct {
	CoordinatorName string  `json:"coordinator_name" validate:"required"`
	ClubID          uint    `json:"club_id" validate:"required"`
	CollegeID       *uint   `json:"college_id"`
	FacultyDept     *string `json:"faculty_dept"`
	RoleType        *string `json:"role_type"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Description     *string `json:"description"`
	Status          *string `json:"status"`
}

// Normalize trims fields and runs the phone cleaner. role_type stays free
// text (student, faculty, lead, ...), only lowercased.
func (r *CreateCoordinatorRequest) Normalize() {
	r.CoordinatorName = strings.TrimSpace(r.CoordinatorName)
	r.FacultyDept = helper.TrimPtr(r.FacultyDept)
	if r.RoleType != nil {
		if v := helper.TrimToNil(strings.ToLower(*r.RoleType)); v != nil {
			r.RoleType = v
		} else {
			r.RoleType = nil
		}
	}
	r.Email = helper.TrimPtr(r.Email)
	if r.Phone != nil {
		r.Phone = helper.CleanPhone(*r.Phone)
	}
	r.Description = helper.TrimPtr(r.Description)
}

func (r *CreateCoordinatorRequest) ToModel() *coordinatorModel.CoordinatorModel {
	status := constants.StatusActive
	if r.Status != nil {
		status = helper.CleanStatus(*r.Status, constants.StatusActive)
	}
	return &coordinatorModel.CoordinatorModel{
		CoordinatorName: r.CoordinatorName,
		ClubID:          r.ClubID,
		CollegeID:       r.CollegeID,
		FacultyDept:     r.FacultyDept,
		RoleType:        r.RoleType,
		Email:           r.Email,
		Phone:           r.Phone,
		Description:     r.Description,
		Status:          status,
	}
}

type UpdateCoordinatorRequest struct {
	CoordinatorName *string `json:"coordinator_name"`
	ClubID          *uint   `json:"club_id"`
	CollegeID       *uint   `json:"college_id"`
	FacultyDept     *string `json:"faculty_dept"`
	RoleType        *string `json:"role_type"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Description     *string `json:"description"`
	Status          *string `json:"status"`
}

// BuildUpdates returns the partial-update column map. The club_id and
// college_id keys are handled by the controller because they need FK
// resolution first.
func (r *UpdateCoordinatorRequest) BuildUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if v := helper.TrimPtr(r.CoordinatorName); v != nil {
		updates["coordinator_name"] = *v
	}
	if v := helper.TrimPtr(r.FacultyDept); v != nil {
		updates["faculty_dept"] = *v
	}
	if r.RoleType != nil {
		if v := helper.TrimToNil(strings.ToLower(*r.RoleType)); v != nil {
			updates["role_type"] = *v
		}
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

type CoordinatorResponse struct {
	CoordinatorID    uint    `json:"coordinator_id"`
	CoordinatorName  string  `json:"coordinator_name"`
	ClubID           uint    `json:"club_id"`
	ClubName         *string `json:"club_name"`
	ClubDeleted      bool    `json:"club_deleted"`
	CollegeID        *uint   `json:"college_id"`
	CollegeName      *string `json:"college_name"`
	CollegeDeleted   bool    `json:"college_deleted"`
	FacultyDept      *string `json:"faculty_dept"`
	RoleType         *string `json:"role_type"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	CoordinatorImage *string `json:"coordinator_image"`
	Description      *string `json:"description"`
	Status           string  `json:"status"`
	IsDeleted        bool    `json:"is_deleted"`
	CreatedTime      string  `json:"created_time"`
	UpdatedTime      string  `json:"updated_time"`
}

// Ref carries a related row's display name plus its deletion state, so the
// page can strike through references to soft-deleted clubs and colleges.
type Ref struct {
	Name    string
	Deleted bool
}

func NewCoordinatorResponse(m *coordinatorModel.CoordinatorModel, club, college *Ref) *CoordinatorResponse {
	if m == nil {
		return nil
	}
	resp := &CoordinatorResponse{
		CoordinatorID:    m.CoordinatorID,
		CoordinatorName:  m.CoordinatorName,
		ClubID:           m.ClubID,
		CollegeID:        m.CollegeID,
		FacultyDept:      m.FacultyDept,
		RoleType:         m.RoleType,
		Email:            m.Email,
		Phone:            m.Phone,
		CoordinatorImage: helper.ImageURL(m.CoordinatorImage),
		Description:      m.Description,
		Status:           m.Status,
		IsDeleted:        m.IsDeleted,
		CreatedTime:      formatTime(m.CreatedTime),
		UpdatedTime:      formatTime(m.UpdatedTime),
	}
	if club != nil {
		name := club.Name
		resp.ClubName = &name
		resp.ClubDeleted = club.Deleted
	}
	if college != nil {
		name := college.Name
		resp.CollegeName = &name
		resp.CollegeDeleted = college.Deleted
	}
	return resp
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
