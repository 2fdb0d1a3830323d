package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ainexus_backend/internals/constants"
	collegeDTO "ainexus_backend/internals/features/colleges/dto"
	collegeModel "ainexus_backend/internals/features/colleges/model"
	helper "ainexus_backend/internals/helpers"
)

type CollegeController struct{ DB *gorm.DB }

func NewCollegeController(db *gorm.DB) *CollegeController { return &CollegeController{DB: db} }

var validateCollege = validator.New()

var collegeSortMap = map[string]string{
	"name":   "college_name ASC",
	"newest": "created_time DESC",
	"oldest": "created_time ASC",
}

// ===================== LIST =====================
// GET /api/colleges
func (h *CollegeController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest")

	tx := h.DB.Model(&collegeModel.CollegeModel{}).Where("is_deleted = FALSE")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("college_name ILIKE ?", "%"+q+"%")
	}
	if st := strings.ToLower(strings.TrimSpace(c.Query("status"))); st != "" && st != "all" {
		tx = tx.Where("status = ?", st)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count colleges")
	}

	var rows []collegeModel.CollegeModel
	if err := tx.
		Order(p.OrderClause(collegeSortMap, "newest")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch colleges")
	}

	var activeCount, inactiveCount int64
	if err := h.DB.Model(&collegeModel.CollegeModel{}).
		Where("is_deleted = FALSE AND status = ?", constants.StatusActive).
		Count(&activeCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count colleges")
	}
	if err := h.DB.Model(&collegeModel.CollegeModel{}).
		Where("is_deleted = FALSE AND status = ?", constants.StatusInactive).
		Count(&inactiveCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count colleges")
	}

	return helper.JsonList(c, fiber.Map{
		"colleges": collegeDTO.NewCollegeResponseList(rows),
		"counts": fiber.Map{
			"active":   activeCount,
			"inactive": inactiveCount,
		},
	}, helper.BuildMeta(total, p))
}

// ===================== GET BY ID =====================
// GET /api/colleges/:id
func (h *CollegeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid college id")
	}

	var m collegeModel.CollegeModel
	if err := h.DB.Where("college_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "college not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch college")
	}
	return helper.JsonOK(c, collegeDTO.NewCollegeResponse(&m))
}

// ===================== CREATE =====================
// POST /api/colleges
func (h *CollegeController) Create(c *fiber.Ctx) error {
	var req collegeDTO.CreateCollegeRequest

	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		req.CollegeName = c.FormValue("college_name")
		req.AuthorityName = helper.TrimToNil(c.FormValue("authority_name"))
		req.AuthorityRole = helper.TrimToNil(c.FormValue("authority_role"))
		req.Phone = helper.TrimToNil(c.FormValue("phone"))
		req.Email = helper.TrimToNil(c.FormValue("email"))
		req.Location = helper.TrimToNil(c.FormValue("location"))
		req.Description = helper.TrimToNil(c.FormValue("description"))
		req.Status = helper.TrimToNil(c.FormValue("status"))
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	req.Normalize()
	if err := validateCollege.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "college_name is required")
	}

	if taken, err := h.nameTaken(req.CollegeName, 0); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check college name")
	} else if taken {
		return helper.JsonError(c, fiber.StatusConflict, "a college with this name already exists")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create college")
	}
	return helper.JsonCreated(c, collegeDTO.NewCollegeResponse(m))
}

// ===================== UPDATE =====================
// PUT /api/colleges/:id
func (h *CollegeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid college id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "college not found", "failed to fetch college")
	}

	var req collegeDTO.UpdateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := req.BuildUpdates()

	if name, ok := updates["college_name"].(string); ok && !strings.EqualFold(name, existing.CollegeName) {
		if taken, err := h.nameTaken(name, existing.CollegeID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check college name")
		} else if taken {
			return helper.JsonError(c, fiber.StatusConflict, "another college with this name already exists")
		}
	}

	if len(updates) == 0 {
		return helper.JsonUpdated(c, collegeDTO.NewCollegeResponse(existing))
	}

	if err := h.DB.Model(&collegeModel.CollegeModel{}).
		Where("college_id = ? AND is_deleted = FALSE", existing.CollegeID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update college")
	}

	after, ferr := h.findLive(id)
	if ferr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch college")
	}
	return helper.JsonUpdated(c, collegeDTO.NewCollegeResponse(after))
}

// ===================== DELETE =====================
// DELETE /api/colleges/:id
func (h *CollegeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid college id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "college not found", "failed to fetch college")
	}

	if err := h.DB.Model(&collegeModel.CollegeModel{}).
		Where("college_id = ? AND is_deleted = FALSE", existing.CollegeID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": time.Now()}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete college")
	}

	return helper.JsonDeleted(c, fiber.Map{"college_id": existing.CollegeID})
}

// ===================== Utils =====================

func (h *CollegeController) findLive(id uint) (*collegeModel.CollegeModel, error) {
	var m collegeModel.CollegeModel
	if err := h.DB.Where("college_id = ? AND is_deleted = FALSE", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (h *CollegeController) nameTaken(name string, excludeID uint) (bool, error) {
	tx := h.DB.Model(&collegeModel.CollegeModel{}).
		Where("LOWER(college_name) = LOWER(?) AND is_deleted = FALSE", strings.TrimSpace(name))
	if excludeID != 0 {
		tx = tx.Where("college_id <> ?", excludeID)
	}
	var cnt int64
	if err := tx.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (h *CollegeController) storeError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, failMsg)
}
