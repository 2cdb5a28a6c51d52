package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillmatch_backend/internals/features/admin/dto"
	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"
)

type ProfessionController struct {
	API *upstream.Client
}

func NewProfessionController(api *upstream.Client) *ProfessionController {
	return &ProfessionController{API: api}
}

func (ctrl *ProfessionController) GetAll(c *fiber.Ctx) error {
	xs, err := ctrl.API.ListProfessions(c.UserContext(), helper.GetUpstreamTokenFromLocals(c))
	if err != nil {
		log.Println("[ERROR] Gagal ambil profesi:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat daftar profesi")
	}
	return helper.JsonOK(c, "", xs)
}

// validateProfession: skill requirement tidak boleh dobel skill yang sama.
func validateProfession(req *dto.ProfessionRequest) map[string][]string {
	if err := validator.New().Struct(req); err != nil {
		return map[string][]string{"payload": {err.Error()}}
	}
	seen := map[int64]struct{}{}
	for _, s := range req.Skills {
		if _, dup := seen[s.SkillID]; dup {
			return map[string][]string{"skills": {"skill yang sama muncul lebih dari sekali"}}
		}
		seen[s.SkillID] = struct{}{}
	}
	return nil
}

func (ctrl *ProfessionController) Create(c *fiber.Ctx) error {
	var req dto.ProfessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := validateProfession(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	p, err := ctrl.API.CreateProfession(c.UserContext(), helper.GetUpstreamTokenFromLocals(c), req)
	if err != nil {
		log.Println("[ERROR] Gagal buat profesi:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan profesi")
	}
	return helper.JsonCreated(c, "Profesi dibuat", p)
}

func (ctrl *ProfessionController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Profession id tidak valid")
	}
	var req dto.ProfessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := validateProfession(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	p, err := ctrl.API.UpdateProfession(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(id), req)
	if err != nil {
		log.Println("[ERROR] Gagal update profesi:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan profesi")
	}
	return helper.JsonUpdated(c, "Profesi diupdate", p)
}

func (ctrl *ProfessionController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Profession id tidak valid")
	}
	if !c.QueryBool("confirm") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hapus butuh konfirmasi (?confirm=true)")
	}
	if err := ctrl.API.DeleteProfession(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(id)); err != nil {
		log.Println("[ERROR] Gagal hapus profesi:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghapus profesi")
	}
	return helper.JsonDeleted(c, "Profesi dihapus", fiber.Map{"id": id})
}
