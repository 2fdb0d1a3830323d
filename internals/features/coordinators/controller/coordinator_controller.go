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
	collegeDTO "ainexus_backend/internals/features/colleges/dto"
	collegeModel "ainexus_backend/internals/features/colleges/model"
	coordinatorDTO "ainexus_backend/internals/features/coordinators/dto"
	coordinatorModel "ainexus_backend/internals/features/coordinators/model"
	helper "ainexus_backend/internals/helpers"
)

type CoordinatorController struct{ DB *gorm.DB }

func NewCoordinatorController(db *gorm.DB) *CoordinatorController {
	return &CoordinatorController{DB: db}
}

var validateCoordinator = validator.New()

var coordinatorSortMap = map[string]string{
	"name":   "coordinator_name ASC",
	"newest": "created_time DESC",
	"oldest": "created_time ASC",
}

// ===================== LIST =====================
// GET /api/coordinators
func (h *CoordinatorController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest")

	tx := h.DB.Model(&coordinatorModel.CoordinatorModel{}).Where("is_deleted = FALSE")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("coordinator_name ILIKE ?", "%"+q+"%")
	}
	if st := strings.ToLower(strings.TrimSpace(c.Query("status"))); st != "" && st != "all" {
		tx = tx.Where("status = ?", st)
	}
	if clubID := helper.QueryUint(c, "club_id"); clubID != nil {
		tx = tx.Where("club_id = ?", *clubID)
	}
	if collegeID := helper.QueryUint(c, "college_id"); collegeID != nil {
		tx = tx.Where("college_id = ?", *collegeID)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count coordinators")
	}

	var rows []coordinatorModel.CoordinatorModel
	if err := tx.
		Order(p.OrderClause(coordinatorSortMap, "newest")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch coordinators")
	}

	clubRefs, collegeRefs, err := h.loadRefs(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch coordinator refs")
	}

	out := make([]*coordinatorDTO.CoordinatorResponse, 0, len(rows))
	for i := range rows {
		out = append(out, coordinatorDTO.NewCoordinatorResponse(&rows[i],
			clubRefs[rows[i].ClubID], collegeRef(collegeRefs, rows[i].CollegeID)))
	}

	stats, err := h.roleStats()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count coordinators")
	}

	payload := fiber.Map{
		"coordinators": out,
		"counts":       stats,
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
		var collegeOptions []collegeDTO.CollegeOption
		if err := h.DB.Model(&collegeModel.CollegeModel{}).
			Select("college_id, college_name").
			Where("is_deleted = FALSE AND status = ?", constants.StatusActive).
			Order("college_name ASC").
			Scan(&collegeOptions).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch college options")
		}
		payload["dropdowns"] = fiber.Map{
			"clubs":    clubOptions,
			"colleges": collegeOptions,
		}
	}

	return helper.JsonList(c, payload, helper.BuildMeta(total, p))
}

// ===================== GET BY ID =====================
// GET /api/coordinators/:id
func (h *CoordinatorController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid coordinator id")
	}

	var m coordinatorModel.CoordinatorModel
	if err := h.DB.Where("coordinator_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "coordinator not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch coordinator")
	}

	clubRefs, collegeRefs, err := h.loadRefs([]coordinatorModel.CoordinatorModel{m})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch coordinator refs")
	}
	return helper.JsonOK(c, coordinatorDTO.NewCoordinatorResponse(&m,
		clubRefs[m.ClubID], collegeRef(collegeRefs, m.CollegeID)))
}

// ===================== CREATE =====================
// POST /api/coordinators
func (h *CoordinatorController) Create(c *fiber.Ctx) error {
	var req coordinatorDTO.CreateCoordinatorRequest
	var image *multipart.FileHeader

	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		req.CoordinatorName = c.FormValue("coordinator_name")
		if v := helper.QueryUintForm(c, "club_id"); v != nil {
			req.ClubID = *v
		}
		req.CollegeID = helper.QueryUintForm(c, "college_id")
		req.FacultyDept = helper.TrimToNil(c.FormValue("faculty_dept"))
		req.RoleType = helper.TrimToNil(c.FormValue("role_type"))
		req.Email = helper.TrimToNil(c.FormValue("email"))
		req.Phone = helper.TrimToNil(c.FormValue("phone"))
		req.Description = helper.TrimToNil(c.FormValue("description"))
		req.Status = helper.TrimToNil(c.FormValue("status"))
		if fh, err := c.FormFile("coordinator_image"); err == nil {
			image = fh
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	req.Normalize()
	if err := validateCoordinator.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "coordinator_name and club_id are required")
	}

	if ok, err := h.clubLive(req.ClubID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check club")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "club_id does not reference an existing club")
	}
	if req.CollegeID != nil {
		if ok, err := h.collegeLive(*req.CollegeID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check college")
		} else if !ok {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "college_id does not reference an existing college")
		}
	}

	m := req.ToModel()

	if image != nil {
		rel, err := helper.SaveImage(image, "coordinators")
		if errors.Is(err, helper.ErrUnsupportedImage) {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store image")
		}
		m.CoordinatorImage = &rel
	}

	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create coordinator")
	}

	clubRefs, collegeRefs, err := h.loadRefs([]coordinatorModel.CoordinatorModel{*m})
	if err != nil {
		return helper.JsonCreated(c, coordinatorDTO.NewCoordinatorResponse(m, nil, nil))
	}
	return helper.JsonCreated(c, coordinatorDTO.NewCoordinatorResponse(m,
		clubRefs[m.ClubID], collegeRef(collegeRefs, m.CollegeID)))
}

// ===================== UPDATE =====================
// PUT /api/coordinators/:id
func (h *CoordinatorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid coordinator id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "coordinator not found", "failed to fetch coordinator")
	}

	var req coordinatorDTO.UpdateCoordinatorRequest
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
	if req.CollegeID != nil {
		if ok, err := h.collegeLive(*req.CollegeID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check college")
		} else if !ok {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "college_id does not reference an existing college")
		}
		updates["college_id"] = *req.CollegeID
	}

	if len(updates) == 0 {
		clubRefs, collegeRefs, _ := h.loadRefs([]coordinatorModel.CoordinatorModel{*existing})
		return helper.JsonUpdated(c, coordinatorDTO.NewCoordinatorResponse(existing,
			clubRefs[existing.ClubID], collegeRef(collegeRefs, existing.CollegeID)))
	}

	if err := h.DB.Model(&coordinatorModel.CoordinatorModel{}).
		Where("coordinator_id = ? AND is_deleted = FALSE", existing.CoordinatorID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update coordinator")
	}

	after, ferr := h.findLive(id)
	if ferr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch coordinator")
	}
	clubRefs, collegeRefs, _ := h.loadRefs([]coordinatorModel.CoordinatorModel{*after})
	return helper.JsonUpdated(c, coordinatorDTO.NewCoordinatorResponse(after,
		clubRefs[after.ClubID], collegeRef(collegeRefs, after.CollegeID)))
}

// ===================== DELETE =====================
// DELETE /api/coordinators/:id
func (h *CoordinatorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid coordinator id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "coordinator not found", "failed to fetch coordinator")
	}

	if err := h.DB.Model(&coordinatorModel.CoordinatorModel{}).
		Where("coordinator_id = ? AND is_deleted = FALSE", existing.CoordinatorID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": time.Now()}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete coordinator")
	}

	return helper.JsonDeleted(c, fiber.Map{"coordinator_id": existing.CoordinatorID})
}

// ===================== UPLOAD IMAGE =====================
// POST /api/coordinators/:id/image
func (h *CoordinatorController) UploadImage(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid coordinator id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "coordinator not found", "failed to fetch coordinator")
	}

	fh, err := c.FormFile("coordinator_image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "coordinator_image file is required")
	}

	rel, err := helper.SaveImage(fh, "coordinators")
	if errors.Is(err, helper.ErrUnsupportedImage) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store image")
	}

	if err := h.DB.Model(&coordinatorModel.CoordinatorModel{}).
		Where("coordinator_id = ? AND is_deleted = FALSE", existing.CoordinatorID).
		Update("coordinator_image", rel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update coordinator")
	}

	return helper.JsonUpdated(c, fiber.Map{
		"coordinator_id":    existing.CoordinatorID,
		"coordinator_image": helper.ImageURL(&rel),
	})
}

// ===================== Utils =====================

func (h *CoordinatorController) findLive(id uint) (*coordinatorModel.CoordinatorModel, error) {
	var m coordinatorModel.CoordinatorModel
	if err := h.DB.Where("coordinator_id = ? AND is_deleted = FALSE", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (h *CoordinatorController) clubLive(id uint) (bool, error) {
	var cnt int64
	err := h.DB.Model(&clubModel.ClubModel{}).
		Where("club_id = ? AND is_deleted = FALSE", id).Count(&cnt).Error
	return cnt > 0, err
}

func (h *CoordinatorController) collegeLive(id uint) (bool, error) {
	var cnt int64
	err := h.DB.Model(&collegeModel.CollegeModel{}).
		Where("college_id = ? AND is_deleted = FALSE", id).Count(&cnt).Error
	return cnt > 0, err
}

// loadRefs batch-fetches the club and college names for a page of rows,
// soft-deleted ones included so stale references keep a name.
func (h *CoordinatorController) loadRefs(rows []coordinatorModel.CoordinatorModel) (map[uint]*coordinatorDTO.Ref, map[uint]*coordinatorDTO.Ref, error) {
	clubIDs := make([]uint, 0, len(rows))
	collegeIDs := make([]uint, 0, len(rows))
	seenClub := map[uint]bool{}
	seenCollege := map[uint]bool{}
	for i := range rows {
		if !seenClub[rows[i].ClubID] {
			seenClub[rows[i].ClubID] = true
			clubIDs = append(clubIDs, rows[i].ClubID)
		}
		if rows[i].CollegeID != nil && !seenCollege[*rows[i].CollegeID] {
			seenCollege[*rows[i].CollegeID] = true
			collegeIDs = append(collegeIDs, *rows[i].CollegeID)
		}
	}

	clubRefs := map[uint]*coordinatorDTO.Ref{}
	if len(clubIDs) > 0 {
		var clubs []clubModel.ClubModel
		if err := h.DB.Where("club_id IN ?", clubIDs).Find(&clubs).Error; err != nil {
			return nil, nil, err
		}
		for i := range clubs {
			clubRefs[clubs[i].ClubID] = &coordinatorDTO.Ref{Name: clubs[i].ClubName, Deleted: clubs[i].IsDeleted}
		}
	}

	collegeRefs := map[uint]*coordinatorDTO.Ref{}
	if len(collegeIDs) > 0 {
		var colleges []collegeModel.CollegeModel
		if err := h.DB.Where("college_id IN ?", collegeIDs).Find(&colleges).Error; err != nil {
			return nil, nil, err
		}
		for i := range colleges {
			collegeRefs[colleges[i].CollegeID] = &coordinatorDTO.Ref{Name: colleges[i].CollegeName, Deleted: colleges[i].IsDeleted}
		}
	}
	return clubRefs, collegeRefs, nil
}

// roleStats splits active coordinators into students vs faculty-like roles
// for the page header cards.
func (h *CoordinatorController) roleStats() (fiber.Map, error) {
	base := func() *gorm.DB {
		return h.DB.Model(&coordinatorModel.CoordinatorModel{}).
			Where("is_deleted = FALSE AND status = ?", constants.StatusActive)
	}

	var total, students, facultyLike int64
	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("role_type = ?", "student").Count(&students).Error; err != nil {
		return nil, err
	}
	if err := base().Where("role_type IN ?", constants.FacultyLikeRoles).Count(&facultyLike).Error; err != nil {
		return nil, err
	}

	return fiber.Map{
		"active":       total,
		"students":     students,
		"faculty_like": facultyLike,
	}, nil
}

func collegeRef(refs map[uint]*coordinatorDTO.Ref, id *uint) *coordinatorDTO.Ref {
	if id == nil {
		return nil
	}
	return refs[*id]
}

func (h *CoordinatorController) storeError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, failMsg)
}
