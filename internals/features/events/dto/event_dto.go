package dto

import (
	"strings"
	"time"

	eventModel "ainexus_backend/internals/features/events/model"
	helper "ainexus_backend/internals/helpers"
)

// ===================== REQUESTS =====================

// CreateEventRequest accepts schedule fields either split
// (start_date + start_time) or as a single ISO string (start_at), mirroring
// the form and JSON payloads of the two surfaces.
type CreateEventRequest struct {
	EventName        string  `json:"event_name" validate:"required"`
	OrganisingClubID uint    `json:"organising_club_id" validate:"required"`
	EventCoordinator *string `json:"event_coordinator"`
	Venue            *string `json:"venue"`

	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	StartAt   string `json:"start_at"`
	EndDate   string `json:"end_date"`
	EndTime   string `json:"end_time"`
	EndAt     string `json:"end_at"`

	MaxParticipants *int    `json:"max_participants"`
	Status          *string `json:"status"`
	Description     *string `json:"description"`
}

func (r *CreateEventRequest) Normalize() {
	r.EventName = strings.TrimSpace(r.EventName)
	r.EventCoordinator = helper.TrimPtr(r.EventCoordinator)
	r.Venue = helper.TrimPtr(r.Venue)
	r.Description = helper.TrimPtr(r.Description)
	// Non-positive caps are dropped to NULL, same silent policy as phone.
	if r.MaxParticipants != nil && *r.MaxParticipants <= 0 {
		r.MaxParticipants = nil
	}
}

// ResolvedStatus lowercases the requested status, defaulting to upcoming.
// Whether the value is inside the closed enum is the controller's check.
func (r *CreateEventRequest) ResolvedStatus() string {
	if r.Status == nil || strings.TrimSpace(*r.Status) == "" {
		return "upcoming"
	}
	return strings.ToLower(strings.TrimSpace(*r.Status))
}

func (r *CreateEventRequest) ParseStart() *time.Time {
	return helper.ParseAny(r.StartDate, r.StartTime, r.StartAt)
}

func (r *CreateEventRequest) ParseEnd() *time.Time {
	return helper.ParseAny(r.EndDate, r.EndTime, r.EndAt)
}

func (r *CreateEventRequest) ToModel(start time.Time, end *time.Time, status string) *eventModel.EventModel {
	desc := ""
	if r.Description != nil {
		desc = *r.Description
	}
	return &eventModel.EventModel{
		EventName:        r.EventName,
		OrganisingClubID: r.OrganisingClubID,
		EventCoordinator: r.EventCoordinator,
		Venue:            r.Venue,
		StartAt:          start,
		EndAt:            end,
		MaxParticipants:  r.MaxParticipants,
		Status:           status,
		Description:      desc,
	}
}

type UpdateEventRequest struct {
	EventName        *string `json:"event_name"`
	OrganisingClubID *uint   `json:"organising_club_id"`
	EventCoordinator *string `json:"event_coordinator"`
	Venue            *string `json:"venue"`

	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	StartAt   string `json:"start_at"`
	EndDate   string `json:"end_date"`
	EndTime   string `json:"end_time"`
	EndAt     string `json:"end_at"`

	MaxParticipants *int    `json:"max_participants"`
	Status          *string `json:"status"`
	Description     *string `json:"description"`
}

func (r *UpdateEventRequest) ParseStart() *time.Time {
	return helper.ParseAny(r.StartDate, r.StartTime, r.StartAt)
}

func (r *UpdateEventRequest) ParseEnd() *time.Time {
	return helper.ParseAny(r.EndDate, r.EndTime, r.EndAt)
}

// ===================== RESPONSES =====================

type EventResponse struct {
	EventID          uint    `json:"event_id"`
	EventName        string  `json:"event_name"`
	OrganisingClubID uint    `json:"organising_club_id"`
	ClubName         *string `json:"club_name"`
	ClubDeleted      bool    `json:"club_deleted"`
	EventCoordinator *string `json:"event_coordinator"`
	Venue            *string `json:"venue"`
	StartAt          *string `json:"start_at"`
	EndAt            *string `json:"end_at"`
	EventImage       *string `json:"event_image"`
	MaxParticipants  *int    `json:"max_participants"`
	Status           string  `json:"status"`
	Description      string  `json:"description"`
	IsDeleted        bool    `json:"is_deleted"`
	CreatedTime      string  `json:"created_time"`
	UpdatedTime      string  `json:"updated_time"`
}

// ClubRef carries the organising club's name plus its deletion state; the
// event stays visible when the club is later soft-deleted.
type ClubRef struct {
	Name    string
	Deleted bool
}

func NewEventResponse(m *eventModel.EventModel, club *ClubRef) *EventResponse {
	if m == nil {
		return nil
	}
	resp := &EventResponse{
		EventID:          m.EventID,
		EventName:        m.EventName,
		OrganisingClubID: m.OrganisingClubID,
		EventCoordinator: m.EventCoordinator,
		Venue:            m.Venue,
		StartAt:          helper.FormatNaive(&m.StartAt),
		EndAt:            helper.FormatNaive(m.EndAt),
		EventImage:       helper.ImageURL(m.EventImage),
		MaxParticipants:  m.MaxParticipants,
		Status:           m.Status,
		Description:      m.Description,
		IsDeleted:        m.IsDeleted,
		CreatedTime:      m.CreatedTime.Format("2006-01-02T15:04:05"),
		UpdatedTime:      m.UpdatedTime.Format("2006-01-02T15:04:05"),
	}
	if club != nil {
		name := club.Name
		resp.ClubName = &name
		resp.ClubDeleted = club.Deleted
	}
	return resp
}
