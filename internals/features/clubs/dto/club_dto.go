package dto

import (
	"strings"
	"time"

	"ainexus_backend/internals/constants"
	clubModel "ainexus_backend/internals/features/clubs/model"
	helper "ainexus_backend/internals/helpers"
)

// ===================== REQUESTS =====================

type CreateClubRequest struct {
	ClubName     string  `json:"club_name" validate:"required"`
	ClubCategory *string `json:"club_category"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
}

// Normalize trims everything and resolves the status default before
// validation runs.
func (r *CreateClubRequest) Normalize() {
	r.ClubName = strings.TrimSpace(r.ClubName)
	r.ClubCategory = helper.TrimPtr(r.ClubCategory)
	r.Description = helper.TrimPtr(r.Description)
}

func (r *CreateClubRequest) ToModel() *clubModel.ClubModel {
	status := constants.StatusActive
	if r.Status != nil {
		status = helper.CleanStatus(*r.Status, constants.StatusActive)
	}
	return &clubModel.ClubModel{
		ClubName:     r.ClubName,
		ClubCategory: r.ClubCategory,
		Description:  r.Description,
		Status:       status,
	}
}

type UpdateClubRequest struct {
	ClubName     *string `json:"club_name"`
	ClubCategory *string `json:"club_category"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
}

// BuildUpdates returns the column map for a partial update. Blank values
// keep the stored column; an invalid status is ignored rather than rejected.
func (r *UpdateClubRequest) BuildUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if v := helper.TrimPtr(r.ClubName); v != nil {
		updates["club_name"] = *v
	}
	if v := helper.TrimPtr(r.ClubCategory); v != nil {
		updates["club_category"] = *v
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

type ClubResponse struct {
	ClubID       uint    `json:"club_id"`
	ClubName     string  `json:"club_name"`
	ClubCategory *string `json:"club_category"`
	ClubLogo     *string `json:"club_logo"`
	Description  *string `json:"description"`
	Status       string  `json:"status"`
	IsDeleted    bool    `json:"is_deleted"`
	CreatedTime  string  `json:"created_time"`
	UpdatedTime  string  `json:"updated_time"`
}

func NewClubResponse(m *clubModel.ClubModel) *ClubResponse {
	if m == nil {
		return nil
	}
	return &ClubResponse{
		ClubID:       m.ClubID,
		ClubName:     m.ClubName,
		ClubCategory: m.ClubCategory,
		ClubLogo:     helper.ImageURL(m.ClubLogo),
		Description:  m.Description,
		Status:       m.Status,
		IsDeleted:    m.IsDeleted,
		CreatedTime:  formatTime(m.CreatedTime),
		UpdatedTime:  formatTime(m.UpdatedTime),
	}
}

func NewClubResponseList(models []clubModel.ClubModel) []*ClubResponse {
	out := make([]*ClubResponse, 0, len(models))
	for i := range models {
		out = append(out, NewClubResponse(&models[i]))
	}
	return out
}

// ClubOption feeds the modal dropdowns on the admin pages.
type ClubOption struct {
	ClubID   uint   `json:"club_id"`
	ClubName string `json:"club_name"`
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
