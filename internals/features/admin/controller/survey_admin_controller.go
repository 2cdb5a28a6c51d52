package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillmatch_backend/internals/features/admin/dto"
	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"
)

type SurveyAdminController struct {
	API *upstream.Client
}

func NewSurveyAdminController(api *upstream.Client) *SurveyAdminController {
	return &SurveyAdminController{API: api}
}

// validateSurvey: level opsi harus unik per pertanyaan — level adalah skala
// ordinal yang jadi key AnswerMap, bukan id sembarang.
func validateSurvey(req *dto.SurveyRequest) map[string][]string {
	if err := validator.New().Struct(req); err != nil {
		return map[string][]string{"payload": {err.Error()}}
	}
	for i, q := range req.Questions {
		seen := map[int]struct{}{}
		for _, o := range q.Options {
			if _, dup := seen[o.Level]; dup {
				field := fmt.Sprintf("questions[%d].options", i)
				return map[string][]string{field: {"level opsi dobel di pertanyaan yang sama"}}
			}
			seen[o.Level] = struct{}{}
		}
	}
	return nil
}

// ✅ GetAll daftar survey (paginated untuk tabel admin).
func (ctrl *SurveyAdminController) GetAll(c *fiber.Ctx) error {
	surveys, err := ctrl.API.ListSurveys(c.UserContext(), helper.GetUpstreamTokenFromLocals(c))
	if err != nil {
		log.Println("[ERROR] Gagal ambil daftar survey:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat daftar survey")
	}
	paging := helper.ResolvePaging(c, 20, 100)
	total := int64(len(surveys))
	start := paging.Offset
	if start > len(surveys) {
		start = len(surveys)
	}
	end := start + paging.Limit
	if end > len(surveys) {
		end = len(surveys)
	}
	return helper.JsonList(c, "", surveys[start:end],
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ GetByID detail survey lengkap (pertanyaan + opsi) untuk form edit.
func (ctrl *SurveyAdminController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	survey, status, err := ctrl.API.GetSurvey(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(id))
	if err != nil {
		if status == fiber.StatusNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil survey:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat survey")
	}
	return helper.JsonOK(c, "", survey)
}

// ✅ Create survey baru beserta pertanyaan & opsinya.
func (ctrl *SurveyAdminController) Create(c *fiber.Ctx) error {
	var req dto.SurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := validateSurvey(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	survey, err := ctrl.API.CreateSurvey(c.UserContext(), helper.GetUpstreamTokenFromLocals(c), req)
	if err != nil {
		log.Println("[ERROR] Gagal buat survey:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan survey")
	}
	return helper.JsonCreated(c, "Survey dibuat", survey)
}

// ✅ Update survey.
func (ctrl *SurveyAdminController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	var req dto.SurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := validateSurvey(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	survey, err := ctrl.API.UpdateSurvey(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(id), req)
	if err != nil {
		log.Println("[ERROR] Gagal update survey:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan survey")
	}
	return helper.JsonUpdated(c, "Survey diupdate", survey)
}

// ✅ Delete survey; butuh konfirmasi eksplisit.
func (ctrl *SurveyAdminController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	if !c.QueryBool("confirm") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hapus butuh konfirmasi (?confirm=true)")
	}
	if err := ctrl.API.DeleteSurvey(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(id)); err != nil {
		log.Println("[ERROR] Gagal hapus survey:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghapus survey")
	}
	return helper.JsonDeleted(c, "Survey dihapus", fiber.Map{"id": id})
}
