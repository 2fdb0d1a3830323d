package controller

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"ainexus_backend/internals/constants"
	clubDTO "ainexus_backend/internals/features/clubs/dto"
	clubModel "ainexus_backend/internals/features/clubs/model"
	collegeDTO "ainexus_backend/internals/features/colleges/dto"
	collegeModel "ainexus_backend/internals/features/colleges/model"
	memberDTO "ainexus_backend/internals/features/members/dto"
	memberModel "ainexus_backend/internals/features/members/model"
	helper "ainexus_backend/internals/helpers"
)

type MemberController struct{ DB *gorm.DB }

func NewMemberController(db *gorm.DB) *MemberController { return &MemberController{DB: db} }

var validateMember = validator.New()

var memberSortMap = map[string]string{
	"name":    "member_name ASC",
	"newest":  "created_time DESC",
	"oldest":  "created_time ASC",
	"email":   "email ASC",
	"college": "college_id ASC",
}

// ===================== LIST =====================
// GET /api/members
//
// A member with NULL status counts as active, both for the status filter
// and the header counts. Club membership filters go through member_clubs so
// a member in several matching clubs still appears once.
func (h *MemberController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "newest")

	tx := h.DB.Model(&memberModel.MemberModel{}).Where("is_deleted = FALSE")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("member_name ILIKE ?", "%"+q+"%")
	}
	switch st := strings.ToLower(strings.TrimSpace(c.Query("status"))); st {
	case "", "all":
	case constants.StatusActive:
		tx = tx.Where("(status IS NULL OR status = ?)", constants.StatusActive)
	default:
		tx = tx.Where("status = ?", st)
	}

	if collegeID := helper.QueryUint(c, "college_id"); collegeID != nil {
		tx = tx.Where("college_id = ?", *collegeID)
	}

	clubIDs := helper.QueryUintList(c, "club_ids")
	if one := helper.QueryUint(c, "club_id"); one != nil {
		clubIDs = append(clubIDs, *one)
	}
	if len(clubIDs) > 0 {
		tx = tx.Where("member_id IN (?)",
			h.DB.Model(&memberModel.MemberClubModel{}).
				Select("DISTINCT member_id").
				Where("club_id IN ?", clubIDs))
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count members")
	}

	var rows []memberModel.MemberModel
	if err := tx.
		Order(p.OrderClause(memberSortMap, "newest")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch members")
	}

	clubNames, err := h.loadClubNames(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch member clubs")
	}
	collegeNames, err := h.loadCollegeNames(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch member colleges")
	}

	out := make([]*memberDTO.MemberListItem, 0, len(rows))
	for i := range rows {
		out = append(out, memberDTO.NewMemberListItem(&rows[i],
			clubNames[rows[i].MemberID], collegeName(collegeNames, rows[i].CollegeID)))
	}

	var activeCount, inactiveCount int64
	if err := h.DB.Model(&memberModel.MemberModel{}).
		Where("is_deleted = FALSE AND (status IS NULL OR status = ?)", constants.StatusActive).
		Count(&activeCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count members")
	}
	if err := h.DB.Model(&memberModel.MemberModel{}).
		Where("is_deleted = FALSE AND status = ?", constants.StatusInactive).
		Count(&inactiveCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count members")
	}

	counts := fiber.Map{
		"active":   activeCount,
		"inactive": inactiveCount,
	}
	if len(clubIDs) > 0 {
		byClub, err := h.countByClub(clubIDs)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count members")
		}
		counts["by_club"] = byClub
	}

	payload := fiber.Map{
		"members": out,
		"counts":  counts,
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
// GET /api/members/:id
func (h *MemberController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid member id")
	}

	var m memberModel.MemberModel
	if err := h.DB.Where("member_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch member")
	}

	clubs, err := h.loadClubs(m.MemberID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch member clubs")
	}
	collegeNames, err := h.loadCollegeNames([]memberModel.MemberModel{m})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch member college")
	}
	return helper.JsonOK(c, memberDTO.NewMemberResponse(&m, clubs, collegeName(collegeNames, m.CollegeID)))
}

// ===================== CREATE =====================
// POST /api/members
//
// The member row and its club links land in one transaction: a bad club id
// fails the whole request, never a half-linked member.
func (h *MemberController) Create(c *fiber.Ctx) error {
	var req memberDTO.CreateMemberRequest
	var image *multipart.FileHeader

	if strings.HasPrefix(c.Get("Content-Type"), "multipart/form-data") {
		req.MemberName = c.FormValue("member_name")
		req.ClubIDs = formUintList(c, "club_ids")
		req.CollegeID = helper.QueryUintForm(c, "college_id")
		req.FacultyDept = helper.TrimToNil(c.FormValue("faculty_dept"))
		req.Email = helper.TrimToNil(c.FormValue("email"))
		req.Phone = helper.TrimToNil(c.FormValue("phone"))
		req.Description = helper.TrimToNil(c.FormValue("description"))
		req.Status = helper.TrimToNil(c.FormValue("status"))
		if fh, err := c.FormFile("member_image"); err == nil {
			image = fh
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	req.Normalize()
	if err := validateMember.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "member_name and at least one club_id are required")
	}

	if missing, err := h.missingClubs(req.ClubIDs); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check clubs")
	} else if missing {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "club_ids must all reference existing clubs")
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
		rel, err := helper.SaveImage(image, "members")
		if errors.Is(err, helper.ErrUnsupportedImage) {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
		}
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store image")
		}
		m.MemberImage = &rel
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		links := make([]memberModel.MemberClubModel, 0, len(req.ClubIDs))
		for _, clubID := range req.ClubIDs {
			links = append(links, memberModel.MemberClubModel{MemberID: m.MemberID, ClubID: clubID})
		}
		return tx.Create(&links).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create member")
	}

	clubs, err := h.loadClubs(m.MemberID)
	if err != nil {
		return helper.JsonCreated(c, memberDTO.NewMemberResponse(m, nil, nil))
	}
	collegeNames, _ := h.loadCollegeNames([]memberModel.MemberModel{*m})
	return helper.JsonCreated(c, memberDTO.NewMemberResponse(m, clubs, collegeName(collegeNames, m.CollegeID)))
}

// ===================== UPDATE =====================
// PUT /api/members/:id
func (h *MemberController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid member id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "member not found", "failed to fetch member")
	}

	var req memberDTO.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updates := req.BuildUpdates()

	if req.CollegeID != nil {
		if ok, err := h.collegeLive(*req.CollegeID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check college")
		} else if !ok {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "college_id does not reference an existing college")
		}
		updates["college_id"] = *req.CollegeID
	}

	// A present club_ids replaces the membership set; absent keeps it.
	var newClubIDs []uint
	if req.ClubIDs != nil {
		newClubIDs = dedupe(req.ClubIDs)
		if len(newClubIDs) == 0 {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "at least one club_id is required")
		}
		if missing, err := h.missingClubs(newClubIDs); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check clubs")
		} else if missing {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "club_ids must all reference existing clubs")
		}
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&memberModel.MemberModel{}).
				Where("member_id = ? AND is_deleted = FALSE", existing.MemberID).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		if newClubIDs != nil {
			if err := tx.Where("member_id = ?", existing.MemberID).
				Delete(&memberModel.MemberClubModel{}).Error; err != nil {
				return err
			}
			links := make([]memberModel.MemberClubModel, 0, len(newClubIDs))
			for _, clubID := range newClubIDs {
				links = append(links, memberModel.MemberClubModel{MemberID: existing.MemberID, ClubID: clubID})
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update member")
	}

	after, ferr := h.findLive(id)
	if ferr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch member")
	}
	clubs, _ := h.loadClubs(after.MemberID)
	collegeNames, _ := h.loadCollegeNames([]memberModel.MemberModel{*after})
	return helper.JsonUpdated(c, memberDTO.NewMemberResponse(after, clubs, collegeName(collegeNames, after.CollegeID)))
}

// ===================== DELETE =====================
// DELETE /api/members/:id
//
// Club links stay in place so historical membership survives the soft
// delete.
func (h *MemberController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid member id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "member not found", "failed to fetch member")
	}

	if err := h.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ? AND is_deleted = FALSE", existing.MemberID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": time.Now()}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete member")
	}

	return helper.JsonDeleted(c, fiber.Map{"member_id": existing.MemberID})
}

// ===================== UPLOAD IMAGE =====================
// POST /api/members/:id/image
func (h *MemberController) UploadImage(c *fiber.Ctx) error {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid member id")
	}

	existing, ferr := h.findLive(id)
	if ferr != nil {
		return h.storeError(c, ferr, "member not found", "failed to fetch member")
	}

	fh, err := c.FormFile("member_image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "member_image file is required")
	}

	rel, err := helper.SaveImage(fh, "members")
	if errors.Is(err, helper.ErrUnsupportedImage) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, err.Error())
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store image")
	}

	if err := h.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ? AND is_deleted = FALSE", existing.MemberID).
		Update("member_image", rel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update member")
	}

	return helper.JsonUpdated(c, fiber.Map{
		"member_id":    existing.MemberID,
		"member_image": helper.ImageURL(&rel),
	})
}

// ===================== Utils =====================

func (h *MemberController) findLive(id uint) (*memberModel.MemberModel, error) {
	var m memberModel.MemberModel
	if err := h.DB.Where("member_id = ? AND is_deleted = FALSE", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// countByClub returns non-deleted member counts per club for the scoped
// clubs.
func (h *MemberController) countByClub(clubIDs []uint) (map[uint]int64, error) {
	type row struct {
		ClubID uint  `gorm:"column:club_id"`
		Cnt    int64 `gorm:"column:cnt"`
	}
	var rows []row
	if err := h.DB.Table("member_clubs AS mc").
		Select("mc.club_id, COUNT(DISTINCT mc.member_id) AS cnt").
		Joins("JOIN members m ON m.member_id = mc.member_id").
		Where("mc.club_id IN ? AND m.is_deleted = FALSE", clubIDs).
		Group("mc.club_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]int64, len(rows))
	for _, r := range rows {
		out[r.ClubID] = r.Cnt
	}
	return out, nil
}

// missingClubs reports whether any of the ids fails to resolve to a live
// club.
func (h *MemberController) missingClubs(ids []uint) (bool, error) {
	var cnt int64
	if err := h.DB.Model(&clubModel.ClubModel{}).
		Where("club_id IN ? AND is_deleted = FALSE", ids).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt != int64(len(ids)), nil
}

func (h *MemberController) collegeLive(id uint) (bool, error) {
	var cnt int64
	err := h.DB.Model(&collegeModel.CollegeModel{}).
		Where("college_id = ? AND is_deleted = FALSE", id).Count(&cnt).Error
	return cnt > 0, err
}

// loadClubNames aggregates club names per member in a single grouped query;
// soft-deleted clubs keep contributing their name.
func (h *MemberController) loadClubNames(rows []memberModel.MemberModel) (map[uint][]string, error) {
	out := map[uint][]string{}
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]uint, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].MemberID)
	}

	type aggRow struct {
		MemberID uint           `gorm:"column:member_id"`
		Names    pq.StringArray `gorm:"column:names;type:text[]"`
	}
	var agg []aggRow
	if err := h.DB.Table("member_clubs AS mc").
		Select("mc.member_id, array_agg(c.club_name ORDER BY c.club_name) AS names").
		Joins("JOIN clubs c ON c.club_id = mc.club_id").
		Where("mc.member_id IN ?", ids).
		Group("mc.member_id").
		Scan(&agg).Error; err != nil {
		return nil, err
	}
	for _, row := range agg {
		out[row.MemberID] = []string(row.Names)
	}
	return out, nil
}

// loadClubs returns the full club refs for one member (detail view).
func (h *MemberController) loadClubs(memberID uint) ([]memberDTO.MemberClub, error) {
	var clubs []memberDTO.MemberClub
	if err := h.DB.Table("member_clubs AS mc").
		Select("c.club_id, c.club_name, c.is_deleted").
		Joins("JOIN clubs c ON c.club_id = mc.club_id").
		Where("mc.member_id = ?", memberID).
		Order("c.club_name ASC").
		Scan(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

func (h *MemberController) loadCollegeNames(rows []memberModel.MemberModel) (map[uint]string, error) {
	ids := make([]uint, 0, len(rows))
	seen := map[uint]bool{}
	for i := range rows {
		if rows[i].CollegeID != nil && !seen[*rows[i].CollegeID] {
			seen[*rows[i].CollegeID] = true
			ids = append(ids, *rows[i].CollegeID)
		}
	}
	out := map[uint]string{}
	if len(ids) == 0 {
		return out, nil
	}
	var colleges []collegeModel.CollegeModel
	if err := h.DB.Where("college_id IN ?", ids).Find(&colleges).Error; err != nil {
		return nil, err
	}
	for i := range colleges {
		out[colleges[i].CollegeID] = colleges[i].CollegeName
	}
	return out, nil
}

func collegeName(names map[uint]string, id *uint) *string {
	if id == nil {
		return nil
	}
	if name, ok := names[*id]; ok {
		return &name
	}
	return nil
}

func formUintList(c *fiber.Ctx, name string) []uint {
	var out []uint
	if form, err := c.MultipartForm(); err == nil {
		for _, raw := range form.Value[name] {
			for _, part := range strings.Split(raw, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if n, err := strconv.ParseUint(part, 10, 32); err == nil && n > 0 {
					out = append(out, uint(n))
				}
			}
		}
	}
	return out
}

func dedupe(ids []uint) []uint {
	seen := map[uint]bool{}
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (h *MemberController) storeError(c *fiber.Ctx, err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, failMsg)
}
