package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/constants"
	announcementModel "ainexus_backend/internals/features/announcements/model"
	clubModel "ainexus_backend/internals/features/clubs/model"
	collegeModel "ainexus_backend/internals/features/colleges/model"
	coordinatorModel "ainexus_backend/internals/features/coordinators/model"
	eventModel "ainexus_backend/internals/features/events/model"
	memberModel "ainexus_backend/internals/features/members/model"
	helper "ainexus_backend/internals/helpers"
)

type DashboardController struct{ DB *gorm.DB }

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type dashboardCards struct {
	ActiveClubs        int64 `json:"active_clubs"`
	ActiveColleges     int64 `json:"active_colleges"`
	ActiveCoordinators int64 `json:"active_coordinators"`
	ActiveMembers      int64 `json:"active_members"`
	UpcomingEvents     int64 `json:"upcoming_events"`
	Announcements      int64 `json:"announcements"`
}

type recentClub struct {
	ClubID      uint    `json:"club_id"`
	ClubName    string  `json:"club_name"`
	ClubLogo    *string `json:"club_logo"`
	CreatedTime string  `json:"created_time"`
	TimeAgo     string  `json:"time_ago"`
}

type dashboardEvent struct {
	EventID   uint    `json:"event_id"`
	EventName string  `json:"event_name"`
	Venue     *string `json:"venue"`
	StartAt   string  `json:"start_at"`
	When      string  `json:"when"`
	Status    string  `json:"status"`
}

// ===================== DASHBOARD =====================
// GET /api/dashboard
//
// The upcoming_events card counts by stored status; the "next up" panel is
// schedule-based so a stale status row cannot surface a past event.
func (h *DashboardController) Get(c *fiber.Ctx) error {
	var cards dashboardCards

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&cards.ActiveClubs, h.DB.Model(&clubModel.ClubModel{}).
			Where("is_deleted = FALSE AND status = ?", constants.StatusActive)},
		{&cards.ActiveColleges, h.DB.Model(&collegeModel.CollegeModel{}).
			Where("is_deleted = FALSE AND status = ?", constants.StatusActive)},
		{&cards.ActiveCoordinators, h.DB.Model(&coordinatorModel.CoordinatorModel{}).
			Where("is_deleted = FALSE AND status = ?", constants.StatusActive)},
		{&cards.ActiveMembers, h.DB.Model(&memberModel.MemberModel{}).
			Where("is_deleted = FALSE AND (status IS NULL OR status = ?)", constants.StatusActive)},
		{&cards.UpcomingEvents, h.DB.Model(&eventModel.EventModel{}).
			Where("is_deleted = FALSE AND status = ?", constants.EventStatusUpcoming)},
		{&cards.Announcements, h.DB.Model(&announcementModel.AnnouncementModel{}).
			Where("is_deleted = FALSE AND status = ?", constants.AnnouncementStatusPublished)},
	}
	for _, cnt := range counts {
		if err := cnt.query.Count(cnt.dst).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to build dashboard")
		}
	}

	var clubs []clubModel.ClubModel
	if err := h.DB.Where("is_deleted = FALSE").
		Order("created_time DESC").Limit(2).Find(&clubs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}
	recentClubs := make([]recentClub, 0, len(clubs))
	for i := range clubs {
		created := clubs[i].CreatedTime
		recentClubs = append(recentClubs, recentClub{
			ClubID:      clubs[i].ClubID,
			ClubName:    clubs[i].ClubName,
			ClubLogo:    helper.ImageURL(clubs[i].ClubLogo),
			CreatedTime: created.Format("2006-01-02T15:04:05"),
			TimeAgo:     helper.TimeAgo(&created),
		})
	}

	now := time.Now()
	var upcoming []eventModel.EventModel
	if err := h.DB.Where("is_deleted = FALSE AND status <> ? AND start_at >= ?",
		constants.EventStatusCancelled, now).
		Order("start_at ASC").Limit(2).Find(&upcoming).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}

	var recent []eventModel.EventModel
	if err := h.DB.Where("is_deleted = FALSE").
		Order("created_time DESC").Limit(2).Find(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}

	return helper.JsonOK(c, fiber.Map{
		"cards":           cards,
		"recent_clubs":    recentClubs,
		"upcoming_events": toDashboardEvents(upcoming),
		"recent_events":   toDashboardEvents(recent),
	})
}

func toDashboardEvents(rows []eventModel.EventModel) []dashboardEvent {
	out := make([]dashboardEvent, 0, len(rows))
	for i := range rows {
		start := rows[i].StartAt
		out = append(out, dashboardEvent{
			EventID:   rows[i].EventID,
			EventName: rows[i].EventName,
			Venue:     rows[i].Venue,
			StartAt:   start.Format("2006-01-02T15:04:05"),
			When:      helper.CardDatetime(&start),
			Status:    rows[i].Status,
		})
	}
	return out
}
