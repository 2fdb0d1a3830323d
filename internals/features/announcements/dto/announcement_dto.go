package dto

import (
	"strings"
	"time"

	"ainexus_backend/internals/constants"
	announcementModel "ainexus_backend/internals/features/announcements/model"
	helper "ainexus_backend/internals/helpers"
)

// ===================== REQUESTS =====================

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	ClubID  *uint  `json:"club_id"`

	PublishDate string `json:"publish_date"`
	PublishTime string `json:"publish_time"`
	PublishAt   string `json:"publish_at"`
	ExpireDate  string `json:"expire_date"`
	ExpireTime  string `json:"expire_time"`
	ExpireAt    string `json:"expire_at"`

	Priority *string `json:"priority"`
	Audience *string `json:"audience"`
	Status   *string `json:"status"`

	SendEmail *bool `json:"send_email"`
	Pinned    *bool `json:"pinned"`
}

func (r *CreateAnnouncementRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

// ResolvedPriority falls back to normal for anything outside the set,
// silently like the other cleaners.
func (r *CreateAnnouncementRequest) ResolvedPriority() string {
	if r.Priority == nil {
		return constants.PriorityNormal
	}
	p := strings.ToLower(strings.TrimSpace(*r.Priority))
	if _, ok := constants.AnnouncementPriorityValues[p]; !ok {
		return constants.PriorityNormal
	}
	return p
}

func (r *CreateAnnouncementRequest) ResolvedAudience() string {
	if r.Audience == nil {
		return constants.DefaultAudience
	}
	if v := helper.TrimToNil(*r.Audience); v != nil {
		return *v
	}
	return constants.DefaultAudience
}

func (r *CreateAnnouncementRequest) ResolvedStatus() string {
	if r.Status == nil {
		return constants.AnnouncementStatusDraft
	}
	s := strings.ToLower(strings.TrimSpace(*r.Status))
	if s == constants.AnnouncementStatusPublished {
		return s
	}
	return constants.AnnouncementStatusDraft
}

func (r *CreateAnnouncementRequest) ParsePublishAt() *time.Time {
	return helper.ParseAny(r.PublishDate, r.PublishTime, r.PublishAt)
}

func (r *CreateAnnouncementRequest) ParseExpireAt() *time.Time {
	return helper.ParseAny(r.ExpireDate, r.ExpireTime, r.ExpireAt)
}

func (r *CreateAnnouncementRequest) ToModel(publishAt, expireAt *time.Time) *announcementModel.AnnouncementModel {
	m := &announcementModel.AnnouncementModel{
		ClubID:    r.ClubID,
		Title:     r.Title,
		Content:   r.Content,
		PublishAt: publishAt,
		ExpireAt:  expireAt,
		Priority:  r.ResolvedPriority(),
		Audience:  r.ResolvedAudience(),
		Status:    r.ResolvedStatus(),
	}
	if r.SendEmail != nil {
		m.SendEmail = *r.SendEmail
	}
	if r.Pinned != nil {
		m.Pinned = *r.Pinned
	}
	return m
}

type UpdateAnnouncementRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	ClubID  *uint   `json:"club_id"`

	PublishDate string `json:"publish_date"`
	PublishTime string `json:"publish_time"`
	PublishAt   string `json:"publish_at"`
	ExpireDate  string `json:"expire_date"`
	ExpireTime  string `json:"expire_time"`
	ExpireAt    string `json:"expire_at"`

	Priority *string `json:"priority"`
	Audience *string `json:"audience"`
	Status   *string `json:"status"`

	SendEmail *bool `json:"send_email"`
	Pinned    *bool `json:"pinned"`
}

func (r *UpdateAnnouncementRequest) ParsePublishAt() *time.Time {
	return helper.ParseAny(r.PublishDate, r.PublishTime, r.PublishAt)
}

func (r *UpdateAnnouncementRequest) ParseExpireAt() *time.Time {
	return helper.ParseAny(r.ExpireDate, r.ExpireTime, r.ExpireAt)
}

// BuildUpdates covers the columns that need no cross-field check; schedule
// and status live in the controller.
func (r *UpdateAnnouncementRequest) BuildUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if v := helper.TrimPtr(r.Title); v != nil {
		updates["title"] = *v
	}
	if v := helper.TrimPtr(r.Content); v != nil {
		updates["content"] = *v
	}
	if r.Priority != nil {
		p := strings.ToLower(strings.TrimSpace(*r.Priority))
		if _, ok := constants.AnnouncementPriorityValues[p]; !ok {
			p = constants.PriorityNormal
		}
		updates["priority"] = p
	}
	if r.Audience != nil {
		if v := helper.TrimToNil(*r.Audience); v != nil {
			updates["audience"] = *v
		}
	}
	if r.SendEmail != nil {
		updates["send_email"] = *r.SendEmail
	}
	if r.Pinned != nil {
		updates["pinned"] = *r.Pinned
	}
	return updates
}

// ===================== RESPONSES =====================

type AnnouncementResponse struct {
	ID          uint    `json:"id"`
	ClubID      *uint   `json:"club_id"`
	ClubName    *string `json:"club_name"`
	ClubDeleted bool    `json:"club_deleted"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	PublishAt   *string `json:"publish_at"`
	ExpireAt    *string `json:"expire_at"`
	Priority    string  `json:"priority"`
	Audience    string  `json:"audience"`
	Status      string  `json:"status"`
	SendEmail   bool    `json:"send_email"`
	Pinned      bool    `json:"pinned"`
	IsDeleted   bool    `json:"is_deleted"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ClubRef struct {
	Name    string
	Deleted bool
}

func NewAnnouncementResponse(m *announcementModel.AnnouncementModel, club *ClubRef) *AnnouncementResponse {
	if m == nil {
		return nil
	}
	resp := &AnnouncementResponse{
		ID:        m.ID,
		ClubID:    m.ClubID,
		Title:     m.Title,
		Content:   m.Content,
		PublishAt: helper.FormatNaive(m.PublishAt),
		ExpireAt:  helper.FormatNaive(m.ExpireAt),
		Priority:  m.Priority,
		Audience:  m.Audience,
		Status:    m.Status,
		SendEmail: m.SendEmail,
		Pinned:    m.Pinned,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05"),
		UpdatedAt: m.UpdatedAt.Format("2006-01-02T15:04:05"),
	}
	if club != nil {
		name := club.Name
		resp.ClubName = &name
		resp.ClubDeleted = club.Deleted
	}
	return resp
}
