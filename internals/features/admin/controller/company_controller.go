package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"
)

type CompanyController struct {
	API *upstream.Client
}

func NewCompanyController(api *upstream.Client) *CompanyController {
	return &CompanyController{API: api}
}

func (ctrl *CompanyController) GetAll(c *fiber.Ctx) error {
	xs, err := ctrl.API.ListCompanies(c.UserContext(), helper.GetUpstreamTokenFromLocals(c))
	if err != nil {
		log.Println("[ERROR] Gagal ambil perusahaan:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat daftar perusahaan")
	}
	return helper.JsonOK(c, "", xs)
}

func (ctrl *CompanyController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Company id tidak valid")
	}
	co, status, err := ctrl.API.GetCompany(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(id))
	if err != nil {
		if status == fiber.StatusNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Perusahaan tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil perusahaan:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat perusahaan")
	}
	return helper.JsonOK(c, "", co)
}

// 📈 SkillAnalysis gap skill perusahaan vs hasil survey karyawannya.
func (ctrl *CompanyController) SkillAnalysis(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("companyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Company id tidak valid")
	}
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	gaps, err := ctrl.API.CompanySkillAnalysis(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(companyID), int64(surveyID))
	if err != nil {
		log.Println("[ERROR] Gagal ambil analisis skill:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat analisis skill")
	}
	return helper.JsonOK(c, "", gaps)
}
