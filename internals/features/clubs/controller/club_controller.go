package controller

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clubDTO "ainexus_backend/internals/features/clubs/dto"
	clubModel "ainexus_backend/internals/features/clubs/model"
	helper "ainexus_backend/internals/helpers"

	"ainexus_backend/internals/constants"
)

type ClubController struct{ DB *gorm.DB }

func NewClubController(db *gorm.DB) *ClubController { return &ClubController{DB: db} }

var validateClub = validator.New()

var clubSortMap = map[string]string{
	"name":   "club_name ASC",
	"newest": "created_time DESC",
	"oldest": "created_time ASC",
}

// ===================== LIST =====================
// GET /api/clubs
func (h *ClubController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest")

	tx := h.DB.Model(&clubModel.ClubModel{}).Where("is_deleted = FALSE")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("club_name ILIKE ?", "%"+q+"%")
	}
	if st := strings.ToLower(strings.TrimSpace(c.Query("status"))); st != "" && st != "all" {
		tx = tx.Where("status = ?", st)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count clubs")
	}

	var rows []clubModel.ClubModel
	if err := tx.
		Order(p.OrderClause(clubSortMap, "newest")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch clubs")
	}

	// Stat-card counts: global over the non-deleted population, on purpose
	// independent of q/status.
	var activeCount, inactiveCount int64
	if err := h.DB.Model(&clubModel.ClubModel{}).
		Where("is_deleted = FALSE AND status = ?", constants.StatusActive).
		Count(&activeCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count clubs")
	}
	if err := h.DB.Model(&clubModel.ClubModel{}).
		Where("is_deleted = FALSE AND status = ?", constants.StatusInactive).
		Count(&inactiveCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count clubs")
	}

	return helper.JsonList(c, fiber.Map{
		"clubs": clubDTO.NewClubResponseList(rows),
		"counts": fiber.Map{
			"active":   activeCount,
			"inactive": inactiveCount,
		},
	}, helper.BuildMeta(total, p))
}

// ===================== GET BY ID =====================
// GET /api/clubs/:id
//
// Soft-deleted clubs stay fetchable by id for historical joins; the
// is_deleted flag in the response tells them apart.
func (h *ClubController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid club id")
	}

	var m clubModel.ClubModel
	if err := h.DB.Where("club_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch club")
	}
	return helper.JsonOK(c, clubDTO.NewClubResponse(&m))
}

// ===================== CREATE =====================
// POST /api/clubs
func (h *ClubController) Create(c *fiber.Ctx) error {
	var req clubDTO.CreateClubRequest
	var logo *multipart.FileHeader

	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		req.ClubName = c.FormValue("club_name")
		req.ClubCategory = helper.TrimToNil(c.FormValue("club_category"))
		req.Description = helper.TrimToNil(c.FormValue("description"))
		req.Status = helper.TrimToNil(c.FormValue("status"))
		if fh, err := c.FormFile("club_logo"); err == nil {
			logo = fh
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	req.Normalize()
	if err := validateClub.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "club_name is required")
	}

	// Advisory pre-check; the partial unique index is the real backstop.
	if taken, err := h.nameTaken(req.ClubName, 0); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check club name")
	} else if taken {
		return helper.JsonError(c, fiber.StatusConflict, "a club with this name already exists")
	}

	m := req.ToModel()

	if logo != nil {
		rel, err := helper.SaveImage(logo, "clubs")
		if errors.Is(err, helper.ErrUnsupportedImage) {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store logo")
		}
		m.ClubLogo = &rel
	}

	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create club")
	}
	return helper.JsonCreated(c, clubDTO.NewClubResponse(m))
}

// ===================== UPDATE =====================
// PUT /api/clubs/:id
func (h *ClubController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid club id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "club not found", "failed to fetch club")
	}

	var req clubDTO.UpdateClubRequest
	var logo *multipart.FileHeader

	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		req.ClubName = helper.TrimToNil(c.FormValue("club_name"))
		req.ClubCategory = helper.TrimToNil(c.FormValue("club_category"))
		req.Description = helper.TrimToNil(c.FormValue("description"))
		req.Status = helper.TrimToNil(c.FormValue("status"))
		if fh, err := c.FormFile("club_logo"); err == nil {
			logo = fh
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	updates := req.BuildUpdates()

	if name, ok := updates["club_name"].(string); ok && !strings.EqualFold(name, existing.ClubName) {
		if taken, err := h.nameTaken(name, existing.ClubID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check club name")
		} else if taken {
			return helper.JsonError(c, fiber.StatusConflict, "another club with this name already exists")
		}
	}

	if logo != nil {
		rel, err := helper.SaveImage(logo, "clubs")
		if errors.Is(err, helper.ErrUnsupportedImage) {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store logo")
		}
		updates["club_logo"] = rel
	}

	if len(updates) == 0 {
		return helper.JsonUpdated(c, clubDTO.NewClubResponse(existing))
	}

	if err := h.DB.Model(&clubModel.ClubModel{}).
		Where("club_id = ? AND is_deleted = FALSE", existing.ClubID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update club")
	}

	after, ferr := h.findLive(id)
	if ferr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch club")
	}
	return helper.JsonUpdated(c, clubDTO.NewClubResponse(after))
}

// ===================== DELETE =====================
// DELETE /api/clubs/:id (soft delete; repeat deletes are 404 by design)
func (h *ClubController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid club id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "club not found", "failed to fetch club")
	}

	now := time.Now()
	if err := h.DB.Model(&clubModel.ClubModel{}).
		Where("club_id = ? AND is_deleted = FALSE", existing.ClubID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": now}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete club")
	}

	return helper.JsonDeleted(c, fiber.Map{"club_id": existing.ClubID})
}

// ===================== UPLOAD LOGO =====================
// POST /api/clubs/:id/image
func (h *ClubController) UploadLogo(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid club id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "club not found", "failed to fetch club")
	}

	fh, err := c.FormFile("club_logo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "club_logo file is required")
	}

	rel, err := helper.SaveImage(fh, "clubs")
	if errors.Is(err, helper.ErrUnsupportedImage) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store logo")
	}

	if err := h.DB.Model(&clubModel.ClubModel{}).
		Where("club_id = ? AND is_deleted = FALSE", existing.ClubID).
		Update("club_logo", rel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update club")
	}

	return helper.JsonUpdated(c, fiber.Map{
		"club_id":   existing.ClubID,
		"club_logo": helper.ImageURL(&rel),
	})
}

// ===================== Utils =====================

func (h *ClubController) findLive(id uint) (*clubModel.ClubModel, error) {
	var m clubModel.ClubModel
	if err := h.DB.Where("club_id = ? AND is_deleted = FALSE", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (h *ClubController) nameTaken(name string, excludeID uint) (bool, error) {
	tx := h.DB.Model(&clubModel.ClubModel{}).
		Where("LOWER(club_name) = LOWER(?) AND is_deleted = FALSE", strings.TrimSpace(name))
	if excludeID != 0 {
		tx = tx.Where("club_id <> ?", excludeID)
	}
	var cnt int64
	if err := tx.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (h *ClubController) storeError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, failMsg)
}
