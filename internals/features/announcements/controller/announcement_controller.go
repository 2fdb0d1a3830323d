package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/constants"
	announcementDTO "ainexus_backend/internals/features/announcements/dto"
	announcementModel "ainexus_backend/internals/features/announcements/model"
	clubDTO "ainexus_backend/internals/features/clubs/dto"
	clubModel "ainexus_backend/internals/features/clubs/model"
	helper "ainexus_backend/internals/helpers"
)

type AnnouncementController struct{ DB *gorm.DB }

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validateAnnouncement = validator.New()

// Pinned rows always sort first; the key picks the order inside each group.
var announcementSortMap = map[string]string{
	"newest":     "pinned DESC, created_at DESC",
	"oldest":     "pinned DESC, created_at ASC",
	"publish_at": "pinned DESC, publish_at DESC NULLS LAST",
}

// ===================== LIST =====================
// GET /api/announcements
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest")

	tx := h.DB.Model(&announcementModel.AnnouncementModel{}).Where("is_deleted = FALSE")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("(title ILIKE ? OR content ILIKE ?)", like, like)
	}
	if st := strings.ToLower(strings.TrimSpace(c.Query("status"))); st != "" && st != "all" {
		tx = tx.Where("status = ?", st)
	}
	if clubID := helper.QueryUint(c, "club_id"); clubID != nil {
		tx = tx.Where("club_id = ?", *clubID)
	}
	if raw := strings.TrimSpace(c.Query("pinned")); raw != "" {
		tx = tx.Where("pinned = ?", helper.ParseBool(raw))
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count announcements")
	}

	var rows []announcementModel.AnnouncementModel
	if err := tx.
		Order(p.OrderClause(announcementSortMap, "newest")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch announcements")
	}

	refs, err := h.loadClubRefs(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch announcement clubs")
	}

	out := make([]*announcementDTO.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, announcementDTO.NewAnnouncementResponse(&rows[i], clubRef(refs, rows[i].ClubID)))
	}

	var publishedCount, draftCount int64
	if err := h.DB.Model(&announcementModel.AnnouncementModel{}).
		Where("is_deleted = FALSE AND status = ?", constants.AnnouncementStatusPublished).
		Count(&publishedCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count announcements")
	}
	if err := h.DB.Model(&announcementModel.AnnouncementModel{}).
		Where("is_deleted = FALSE AND status = ?", constants.AnnouncementStatusDraft).
		Count(&draftCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count announcements")
	}

	payload := fiber.Map{
		"announcements": out,
		"counts": fiber.Map{
			"published": publishedCount,
			"draft":     draftCount,
		},
	}

	if strings.Contains(c.Query("include"), "dropdowns") {
		var clubOptions []clubDTO.ClubOption
		if err := h.DB.Model(&clubModel.ClubModel{}).
			Select("club_id, club_name").
			Where("is_deleted = FALSE AND status = ?", constants.StatusActive).
			Order("club_name ASC").
			Scan(&clubOptions).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch club options")
		}
		payload["dropdowns"] = fiber.Map{"clubs": clubOptions}
	}

	return helper.JsonList(c, payload, helper.BuildMeta(total, p))
}

// ===================== GET BY ID =====================
// GET /api/announcements/:id
func (h *AnnouncementController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid announcement id")
	}

	var m announcementModel.AnnouncementModel
	if err := h.DB.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch announcement")
	}

	refs, err := h.loadClubRefs([]announcementModel.AnnouncementModel{m})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch announcement club")
	}
	return helper.JsonOK(c, announcementDTO.NewAnnouncementResponse(&m, clubRef(refs, m.ClubID)))
}

// ===================== CREATE =====================
// POST /api/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	var req announcementDTO.CreateAnnouncementRequest

	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		req.Title = c.FormValue("title")
		req.Content = c.FormValue("content")
		req.ClubID = helper.QueryUintForm(c, "club_id")
		req.PublishDate = c.FormValue("publish_date")
		req.PublishTime = c.FormValue("publish_time")
		req.PublishAt = c.FormValue("publish_at")
		req.ExpireDate = c.FormValue("expire_date")
		req.ExpireTime = c.FormValue("expire_time")
		req.ExpireAt = c.FormValue("expire_at")
		req.Priority = helper.TrimToNil(c.FormValue("priority"))
		req.Audience = helper.TrimToNil(c.FormValue("audience"))
		req.Status = helper.TrimToNil(c.FormValue("status"))
		if raw := strings.TrimSpace(c.FormValue("send_email")); raw != "" {
			v := helper.ParseBool(raw)
			req.SendEmail = &v
		}
		if raw := strings.TrimSpace(c.FormValue("pinned")); raw != "" {
			v := helper.ParseBool(raw)
			req.Pinned = &v
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	req.Normalize()
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "title and content are required")
	}

	if req.ClubID != nil {
		if ok, err := h.clubLive(*req.ClubID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check club")
		} else if !ok {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "club_id does not reference an existing club")
		}
	}

	publishAt := req.ParsePublishAt()
	expireAt := req.ParseExpireAt()
	status := req.ResolvedStatus()
	if msg := checkWindow(status, publishAt, expireAt); msg != "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	m := req.ToModel(publishAt, expireAt)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create announcement")
	}

	refs, err := h.loadClubRefs([]announcementModel.AnnouncementModel{*m})
	if err != nil {
		return helper.JsonCreated(c, announcementDTO.NewAnnouncementResponse(m, nil))
	}
	return helper.JsonCreated(c, announcementDTO.NewAnnouncementResponse(m, clubRef(refs, m.ClubID)))
}

// ===================== UPDATE =====================
// PUT /api/announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid announcement id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "announcement not found", "failed to fetch announcement")
	}

	var req announcementDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := req.BuildUpdates()

	if req.ClubID != nil {
		if ok, err := h.clubLive(*req.ClubID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check club")
		} else if !ok {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "club_id does not reference an existing club")
		}
		updates["club_id"] = *req.ClubID
	}

	// Merge the stored schedule with the request before the window check.
	finalStatus := existing.Status
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		s := strings.ToLower(strings.TrimSpace(*req.Status))
		if s != constants.AnnouncementStatusPublished {
			s = constants.AnnouncementStatusDraft
		}
		finalStatus = s
		updates["status"] = s
	}
	finalPublish := existing.PublishAt
	if t := req.ParsePublishAt(); t != nil {
		finalPublish = t
		updates["publish_at"] = *t
	}
	finalExpire := existing.ExpireAt
	if t := req.ParseExpireAt(); t != nil {
		finalExpire = t
		updates["expire_at"] = *t
	}
	if msg := checkWindow(finalStatus, finalPublish, finalExpire); msg != "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	if len(updates) == 0 {
		refs, _ := h.loadClubRefs([]announcementModel.AnnouncementModel{*existing})
		return helper.JsonUpdated(c, announcementDTO.NewAnnouncementResponse(existing, clubRef(refs, existing.ClubID)))
	}

	if err := h.DB.Model(&announcementModel.AnnouncementModel{}).
		Where("id = ? AND is_deleted = FALSE", existing.ID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update announcement")
	}

	after, ferr := h.findLive(id)
	if ferr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch announcement")
	}
	refs, _ := h.loadClubRefs([]announcementModel.AnnouncementModel{*after})
	return helper.JsonUpdated(c, announcementDTO.NewAnnouncementResponse(after, clubRef(refs, after.ClubID)))
}

// ===================== DELETE =====================
// DELETE /api/announcements/:id
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid announcement id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "announcement not found", "failed to fetch announcement")
	}

	if err := h.DB.Model(&announcementModel.AnnouncementModel{}).
		Where("id = ? AND is_deleted = FALSE", existing.ID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": time.Now()}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete announcement")
	}

	return helper.JsonDeleted(c, fiber.Map{"id": existing.ID})
}

// ===================== Utils =====================

// checkWindow enforces the publish window rules: a published announcement
// needs a publish_at, and expire_at must land after it.
func checkWindow(status string, publishAt, expireAt *time.Time) string {
	if status == constants.AnnouncementStatusPublished && publishAt == nil {
		return "publish_at is required for a published announcement"
	}
	if publishAt != nil && expireAt != nil && !expireAt.After(*publishAt) {
		return "expire_at must be after publish_at"
	}
	return ""
}

func (h *AnnouncementController) findLive(id uint) (*announcementModel.AnnouncementModel, error) {
	var m announcementModel.AnnouncementModel
	if err := h.DB.Where("id = ? AND is_deleted = FALSE", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (h *AnnouncementController) clubLive(id uint) (bool, error) {
	var cnt int64
	err := h.DB.Model(&clubModel.ClubModel{}).
		Where("club_id = ? AND is_deleted = FALSE", id).Count(&cnt).Error
	return cnt > 0, err
}

func (h *AnnouncementController) loadClubRefs(rows []announcementModel.AnnouncementModel) (map[uint]*announcementDTO.ClubRef, error) {
	ids := make([]uint, 0, len(rows))
	seen := map[uint]bool{}
	for i := range rows {
		if rows[i].ClubID != nil && !seen[*rows[i].ClubID] {
			seen[*rows[i].ClubID] = true
			ids = append(ids, *rows[i].ClubID)
		}
	}
	refs := map[uint]*announcementDTO.ClubRef{}
	if len(ids) == 0 {
		return refs, nil
	}
	var clubs []clubModel.ClubModel
	if err := h.DB.Where("club_id IN ?", ids).Find(&clubs).Error; err != nil {
		return nil, err
	}
	for i := range clubs {
		refs[clubs[i].ClubID] = &announcementDTO.ClubRef{Name: clubs[i].ClubName, Deleted: clubs[i].IsDeleted}
	}
	return refs, nil
}

func clubRef(refs map[uint]*announcementDTO.ClubRef, id *uint) *announcementDTO.ClubRef {
	if id == nil {
		return nil
	}
	return refs[*id]
}

func (h *AnnouncementController) storeError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, failMsg)
}
