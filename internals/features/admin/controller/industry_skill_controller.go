package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillmatch_backend/internals/features/admin/dto"
	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"
)

type IndustrySkillController struct {
	API *upstream.Client
}

func NewIndustrySkillController(api *upstream.Client) *IndustrySkillController {
	return &IndustrySkillController{API: api}
}

// ✅ GetIndustries daftar industri (read-only, dropdown induk skill).
func (ctrl *IndustrySkillController) GetIndustries(c *fiber.Ctx) error {
	xs, err := ctrl.API.ListIndustries(c.UserContext(), helper.GetUpstreamTokenFromLocals(c))
	if err != nil {
		log.Println("[ERROR] Gagal ambil industri:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat daftar industri")
	}
	return helper.JsonOK(c, "", xs)
}

// ✅ GetSkillsByIndustry skill per industri.
func (ctrl *IndustrySkillController) GetSkillsByIndustry(c *fiber.Ctx) error {
	industryID, err := c.ParamsInt("industryId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Industry id tidak valid")
	}
	xs, err := ctrl.API.SkillsByIndustry(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(industryID))
	if err != nil {
		log.Println("[ERROR] Gagal ambil skill:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat daftar skill")
	}
	return helper.JsonOK(c, "", xs)
}

// ✅ CreateSkill tambah skill baru.
func (ctrl *IndustrySkillController) CreateSkill(c *fiber.Ctx) error {
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	skill, err := ctrl.API.CreateSkill(c.UserContext(), helper.GetUpstreamTokenFromLocals(c), req)
	if err != nil {
		log.Println("[ERROR] Gagal buat skill:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan skill")
	}
	return helper.JsonCreated(c, "Skill dibuat", skill)
}

// ✅ UpdateSkill ubah skill.
func (ctrl *IndustrySkillController) UpdateSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Skill id tidak valid")
	}
	var req dto.SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	skill, err := ctrl.API.UpdateSkill(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(id), req)
	if err != nil {
		log.Println("[ERROR] Gagal update skill:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan skill")
	}
	return helper.JsonUpdated(c, "Skill diupdate", skill)
}

// ✅ DeleteSkill hapus skill; butuh konfirmasi eksplisit.
func (ctrl *IndustrySkillController) DeleteSkill(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Skill id tidak valid")
	}
	if !c.QueryBool("confirm") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hapus butuh konfirmasi (?confirm=true)")
	}
	if err := ctrl.API.DeleteSkill(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(id)); err != nil {
		log.Println("[ERROR] Gagal hapus skill:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghapus skill")
	}
	return helper.JsonDeleted(c, "Skill dihapus", fiber.Map{"id": id})
}
