package dto

import (
	"strings"

	"ainexus_backend/internals/constants"
	collegeModel "ainexus_backend/internals/features/colleges/model"
	helper "ainexus_backend/internals/helpers"
)

// ===================== REQUESTS =====================

type CreateCollegeRequest struct {
	CollegeName   string  `json:"college_name" validate:"required"`
	AuthorityName *string `json:"authority_name"`
	AuthorityRole *string `json:"authority_role"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Location      *string `json:"location"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
}

// Normalize trims the fields and applies the silent cleaners: an authority
// role outside the allowed set and a phone with the wrong digit count both
// become NULL, never an error.
func (r *CreateCollegeRequest) Normalize() {
	r.CollegeName = strings.TrimSpace(r.CollegeName)
	r.AuthorityName = helper.TrimPtr(r.AuthorityName)
	if r.AuthorityRole != nil {
		r.AuthorityRole = helper.CleanRole(*r.AuthorityRole)
	}
	if r.Phone != nil {
		r.Phone = helper.CleanPhone(*r.Phone)
	}
	r.Email = helper.TrimPtr(r.Email)
	r.Location = helper.TrimPtr(r.Location)
	r.Description = helper.TrimPtr(r.Description)
}

func (r *CreateCollegeRequest) ToModel() *collegeModel.CollegeModel {
	status := constants.StatusActive
	if r.Status != nil {
		status = helper.CleanStatus(*r.Status, constants.StatusActive)
	}
	return &collegeModel.CollegeModel{
		CollegeName:   r.CollegeName,
		AuthorityName: r.AuthorityName,
		AuthorityRole: r.AuthorityRole,
		Phone:         r.Phone,
		Email:         r.Email,
		Location:      r.Location,
		Description:   r.Description,
		Status:        status,
	}
}

type UpdateCollegeRequest struct {
	CollegeName   *string `json:"college_name"`
	AuthorityName *string `json:"authority_name"`
	AuthorityRole *string `json:"authority_role"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Location      *string `json:"location"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
}

func (r *UpdateCollegeRequest) BuildUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if v := helper.TrimPtr(r.CollegeName); v != nil {
		updates["college_name"] = *v
	}
	if v := helper.TrimPtr(r.AuthorityName); v != nil {
		updates["authority_name"] = *v
	}
	if r.AuthorityRole != nil {
		// Cleared to NULL when outside the allowed set.
		updates["authority_role"] = helper.CleanRole(*r.AuthorityRole)
	}
	if r.Phone != nil {
		updates["phone"] = helper.CleanPhone(*r.Phone)
	}
	if v := helper.TrimPtr(r.Email); v != nil {
		updates["email"] = *v
	}
	if v := helper.TrimPtr(r.Location); v != nil {
		updates["location"] = *v
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

type CollegeResponse struct {
	CollegeID     uint    `json:"college_id"`
	CollegeName   string  `json:"college_name"`
	AuthorityName *string `json:"authority_name"`
	AuthorityRole *string `json:"authority_role"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Location      *string `json:"location"`
	Description   *string `json:"description"`
	Status        string  `json:"status"`
	IsDeleted     bool    `json:"is_deleted"`
	CreatedTime   string  `json:"created_time"`
}

func NewCollegeResponse(m *collegeModel.CollegeModel) *CollegeResponse {
	if m == nil {
		return nil
	}
	return &CollegeResponse{
		CollegeID:     m.CollegeID,
		CollegeName:   m.CollegeName,
		AuthorityName: m.AuthorityName,
		AuthorityRole: m.AuthorityRole,
		Phone:         m.Phone,
		Email:         m.Email,
		Location:      m.Location,
		Description:   m.Description,
		Status:        m.Status,
		IsDeleted:     m.IsDeleted,
		CreatedTime:   m.CreatedTime.Format("2006-01-02T15:04:05"),
	}
}

func NewCollegeResponseList(models []collegeModel.CollegeModel) []*CollegeResponse {
	out := make([]*CollegeResponse, 0, len(models))
	for i := range models {
		out = append(out, NewCollegeResponse(&models[i]))
	}
	return out
}

// CollegeOption feeds the modal dropdowns.
type CollegeOption struct {
	CollegeID   uint   `json:"college_id"`
	CollegeName string `json:"college_name"`
}
