package controller

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/constants"
	clubDTO "ainexus_backend/internals/features/clubs/dto"
	clubModel "ainexus_backend/internals/features/clubs/model"
	eventDTO "ainexus_backend/internals/features/events/dto"
	eventModel "ainexus_backend/internals/features/events/model"
	helper "ainexus_backend/internals/helpers"
)

type EventController struct{ DB *gorm.DB }

func NewEventController(db *gorm.DB) *EventController { return &EventController{DB: db} }

var validateEvent = validator.New()

var eventSortMap = map[string]string{
	"name":     "event_name ASC",
	"newest":   "created_time DESC",
	"oldest":   "created_time ASC",
	"start_at": "start_at DESC",
}

// ===================== LIST =====================
// GET /api/events
//
// Besides the usual page the payload carries the header widget: the three
// soonest upcoming events plus upcoming/completed counts. include=dropdowns
// adds the club options for the create modal.
func (h *EventController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "start_at")

	tx := h.DB.Model(&eventModel.EventModel{}).Where("is_deleted = FALSE")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("event_name ILIKE ?", "%"+q+"%")
	}
	if st := strings.ToLower(strings.TrimSpace(c.Query("status"))); st != "" && st != "all" {
		tx = tx.Where("status = ?", st)
	}
	if clubID := helper.QueryUint(c, "club_id"); clubID != nil {
		tx = tx.Where("organising_club_id = ?", *clubID)
	}
	if from := parseDateOnly(c.Query("date_from")); from != nil {
		tx = tx.Where("start_at >= ?", *from)
	}
	if to := parseDateOnly(c.Query("date_to")); to != nil {
		// Inclusive day bound.
		tx = tx.Where("start_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count events")
	}

	var rows []eventModel.EventModel
	if err := tx.
		Order(p.OrderClause(eventSortMap, "newest")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch events")
	}

	widget, widgetRows, err := h.widget()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to build events widget")
	}

	refs, err := h.loadClubRefs(append(append([]eventModel.EventModel{}, rows...), widgetRows...))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch event clubs")
	}

	payload := fiber.Map{
		"events": h.toResponses(rows, refs),
		"widget": fiber.Map{
			"upcoming":        h.toResponses(widgetRows, refs),
			"upcoming_count":  widget.upcoming,
			"completed_count": widget.completed,
		},
	}

	if strings.Contains(c.Query("include"), "dropdowns") {
		var options []clubDTO.ClubOption
		if err := h.DB.Model(&clubModel.ClubModel{}).
			Select("club_id, club_name").
			Where("is_deleted = FALSE AND status = ?", constants.StatusActive).
			Order("club_name ASC").
			Scan(&options).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch club options")
		}
		payload["dropdowns"] = fiber.Map{"clubs": options}
	}

	return helper.JsonList(c, payload, helper.BuildMeta(total, p))
}

// ===================== GET BY ID =====================
// GET /api/events/:id
func (h *EventController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	var m eventModel.EventModel
	if err := h.DB.Where("event_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch event")
	}

	refs, err := h.loadClubRefs([]eventModel.EventModel{m})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch event club")
	}
	return helper.JsonOK(c, eventDTO.NewEventResponse(&m, refs[m.OrganisingClubID]))
}

// ===================== CREATE =====================
// POST /api/events
func (h *EventController) Create(c *fiber.Ctx) error {
	var req eventDTO.CreateEventRequest
	var image *multipart.FileHeader

	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		req.EventName = c.FormValue("event_name")
		if v := helper.QueryUintForm(c, "organising_club_id"); v != nil {
			req.OrganisingClubID = *v
		}
		req.EventCoordinator = helper.TrimToNil(c.FormValue("event_coordinator"))
		req.Venue = helper.TrimToNil(c.FormValue("venue"))
		req.StartDate = c.FormValue("start_date")
		req.StartTime = c.FormValue("start_time")
		req.StartAt = c.FormValue("start_at")
		req.EndDate = c.FormValue("end_date")
		req.EndTime = c.FormValue("end_time")
		req.EndAt = c.FormValue("end_at")
		if raw := strings.TrimSpace(c.FormValue("max_participants")); raw != "" {
			if v := helper.QueryUintForm(c, "max_participants"); v != nil {
				n := int(*v)
				req.MaxParticipants = &n
			}
		}
		req.Status = helper.TrimToNil(c.FormValue("status"))
		req.Description = helper.TrimToNil(c.FormValue("description"))
		if fh, err := c.FormFile("event_image"); err == nil {
			image = fh
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	req.Normalize()
	if err := validateEvent.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "event_name and organising_club_id are required")
	}

	status := req.ResolvedStatus()
	if _, ok := constants.EventStatusValues[status]; !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "status must be one of upcoming, completed, cancelled")
	}

	start := req.ParseStart()
	if start == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "a valid start date and time is required")
	}
	end := req.ParseEnd()
	if msg := checkSchedule(*start, end, status, time.Now()); msg != "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	if ok, err := h.clubLive(req.OrganisingClubID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check club")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "organising_club_id does not reference an existing club")
	}

	m := req.ToModel(*start, end, status)

	if image != nil {
		rel, err := helper.SaveImage(image, "events")
		if errors.Is(err, helper.ErrUnsupportedImage) {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store image")
		}
		m.EventImage = &rel
	}

	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create event")
	}

	refs, err := h.loadClubRefs([]eventModel.EventModel{*m})
	if err != nil {
		return helper.JsonCreated(c, eventDTO.NewEventResponse(m, nil))
	}
	return helper.JsonCreated(c, eventDTO.NewEventResponse(m, refs[m.OrganisingClubID]))
}

// ===================== UPDATE =====================
// PUT /api/events/:id
//
// Cross-field schedule rules run against the merged picture: fields the
// request leaves out keep their stored values for the check.
func (h *EventController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "event not found", "failed to fetch event")
	}

	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := map[string]interface{}{}

	if v := helper.TrimPtr(req.EventName); v != nil {
		updates["event_name"] = *v
	}
	if v := helper.TrimPtr(req.EventCoordinator); v != nil {
		updates["event_coordinator"] = *v
	}
	if v := helper.TrimPtr(req.Venue); v != nil {
		updates["venue"] = *v
	}
	if v := helper.TrimPtr(req.Description); v != nil {
		updates["description"] = *v
	}
	if req.MaxParticipants != nil {
		if *req.MaxParticipants > 0 {
			updates["max_participants"] = *req.MaxParticipants
		} else {
			updates["max_participants"] = nil
		}
	}

	finalStatus := existing.Status
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		s := strings.ToLower(strings.TrimSpace(*req.Status))
		if _, ok := constants.EventStatusValues[s]; !ok {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "status must be one of upcoming, completed, cancelled")
		}
		finalStatus = s
		updates["status"] = s
	}

	finalStart := existing.StartAt
	if t := req.ParseStart(); t != nil {
		finalStart = *t
		updates["start_at"] = *t
	}
	finalEnd := existing.EndAt
	if t := req.ParseEnd(); t != nil {
		finalEnd = t
		updates["end_at"] = *t
	}

	if msg := checkSchedule(finalStart, finalEnd, finalStatus, time.Now()); msg != "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	if req.OrganisingClubID != nil {
		if ok, err := h.clubLive(*req.OrganisingClubID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check club")
		} else if !ok {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "organising_club_id does not reference an existing club")
		}
		updates["organising_club_id"] = *req.OrganisingClubID
	}

	if len(updates) == 0 {
		refs, _ := h.loadClubRefs([]eventModel.EventModel{*existing})
		return helper.JsonUpdated(c, eventDTO.NewEventResponse(existing, refs[existing.OrganisingClubID]))
	}

	if err := h.DB.Model(&eventModel.EventModel{}).
		Where("event_id = ? AND is_deleted = FALSE", existing.EventID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update event")
	}

	after, ferr := h.findLive(id)
	if ferr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch event")
	}
	refs, _ := h.loadClubRefs([]eventModel.EventModel{*after})
	return helper.JsonUpdated(c, eventDTO.NewEventResponse(after, refs[after.OrganisingClubID]))
}

// ===================== DELETE =====================
// DELETE /api/events/:id
func (h *EventController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "event not found", "failed to fetch event")
	}

	if err := h.DB.Model(&eventModel.EventModel{}).
		Where("event_id = ? AND is_deleted = FALSE", existing.EventID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": time.Now()}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete event")
	}

	return helper.JsonDeleted(c, fiber.Map{"event_id": existing.EventID})
}

// ===================== UPLOAD IMAGE =====================
// POST /api/events/:id/image
func (h *EventController) UploadImage(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "event not found", "failed to fetch event")
	}

	fh, err := c.FormFile("event_image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "event_image file is required")
	}

	rel, err := helper.SaveImage(fh, "events")
	if errors.Is(err, helper.ErrUnsupportedImage) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store image")
	}

	if err := h.DB.Model(&eventModel.EventModel{}).
		Where("event_id = ? AND is_deleted = FALSE", existing.EventID).
		Update("event_image", rel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update event")
	}

	return helper.JsonUpdated(c, fiber.Map{
		"event_id":    existing.EventID,
		"event_image": helper.ImageURL(&rel),
	})
}

// ===================== Utils =====================

// checkSchedule enforces the cross-field rules shared by create and update.
// Returns a message for a 422, or "" when the schedule is fine.
func checkSchedule(start time.Time, end *time.Time, status string, now time.Time) string {
	if end != nil && end.Before(start) {
		return "end_at must be on or after start_at"
	}
	if status == constants.EventStatusUpcoming && !start.After(now) {
		return "start_at must be in the future for an upcoming event"
	}
	return ""
}

type widgetCounts struct {
	upcoming  int64
	completed int64
}

// widget returns the three soonest future non-cancelled events plus the
// header counts. "Upcoming" here is schedule-based, unlike the dashboard
// card which goes by the stored status.
func (h *EventController) widget() (widgetCounts, []eventModel.EventModel, error) {
	now := time.Now()
	var counts widgetCounts

	upcomingBase := h.DB.Model(&eventModel.EventModel{}).
		Where("is_deleted = FALSE AND status <> ? AND start_at >= ?", "cancelled", now)
	if err := upcomingBase.Session(&gorm.Session{}).Count(&counts.upcoming).Error; err != nil {
		return counts, nil, err
	}
	if err := h.DB.Model(&eventModel.EventModel{}).
		Where("is_deleted = FALSE AND status = ?", "completed").
		Count(&counts.completed).Error; err != nil {
		return counts, nil, err
	}

	var rows []eventModel.EventModel
	if err := h.DB.
		Where("is_deleted = FALSE AND status <> ? AND start_at >= ?", "cancelled", now).
		Order("start_at ASC").
		Limit(3).
		Find(&rows).Error; err != nil {
		return counts, nil, err
	}
	return counts, rows, nil
}

func (h *EventController) toResponses(rows []eventModel.EventModel, refs map[uint]*eventDTO.ClubRef) []*eventDTO.EventResponse {
	out := make([]*eventDTO.EventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, eventDTO.NewEventResponse(&rows[i], refs[rows[i].OrganisingClubID]))
	}
	return out
}

func (h *EventController) findLive(id uint) (*eventModel.EventModel, error) {
	var m eventModel.EventModel
	if err := h.DB.Where("event_id = ? AND is_deleted = FALSE", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (h *EventController) clubLive(id uint) (bool, error) {
	var cnt int64
	err := h.DB.Model(&clubModel.ClubModel{}).
		Where("club_id = ? AND is_deleted = FALSE", id).Count(&cnt).Error
	return cnt > 0, err
}

// loadClubRefs batch-fetches organising club names for a set of events,
// soft-deleted clubs included.
func (h *EventController) loadClubRefs(rows []eventModel.EventModel) (map[uint]*eventDTO.ClubRef, error) {
	ids := make([]uint, 0, len(rows))
	seen := map[uint]bool{}
	for i := range rows {
		if !seen[rows[i].OrganisingClubID] {
			seen[rows[i].OrganisingClubID] = true
			ids = append(ids, rows[i].OrganisingClubID)
		}
	}
	refs := map[uint]*eventDTO.ClubRef{}
	if len(ids) == 0 {
		return refs, nil
	}
	var clubs []clubModel.ClubModel
	if err := h.DB.Where("club_id IN ?", ids).Find(&clubs).Error; err != nil {
		return nil, err
	}
	for i := range clubs {
		refs[clubs[i].ClubID] = &eventDTO.ClubRef{Name: clubs[i].ClubName, Deleted: clubs[i].IsDeleted}
	}
	return refs, nil
}

func parseDateOnly(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return &t
	}
	return nil
}

func (h *EventController) storeError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, failMsg)
}
