package route

import (
	"github.com/gofiber/fiber/v2"

	"skillmatch_backend/internals/constants"
	adminController "skillmatch_backend/internals/features/admin/controller"
	authMiddleware "skillmatch_backend/internals/middlewares/auth"
	"skillmatch_backend/internals/upstream"
)

// AdminRoutes semua screen CRUD admin. Guard ADMIN dipasang per-group
// dengan pesan error fitur masing-masing.
func AdminRoutes(api fiber.Router, apiClient *upstream.Client) {
	industrySkillCtrl := adminController.NewIndustrySkillController(apiClient)
	professionCtrl := adminController.NewProfessionController(apiClient)
	surveyCtrl := adminController.NewSurveyAdminController(apiClient)
	companyCtrl := adminController.NewCompanyController(apiClient)
	userCtrl := adminController.NewUserAdminController(apiClient)

	adminOnly := func(feature string) fiber.Handler {
		return authMiddleware.OnlyRoles(constants.RoleErrorAdmin(feature), constants.AdminOnly...)
	}

	// 🏭 Industri & skill
	industryRoutes := api.Group("/industries", adminOnly("mengelola industri"))
	industryRoutes.Get("/", industrySkillCtrl.GetIndustries)

	skillRoutes := api.Group("/skills", adminOnly("mengelola skill"))
	skillRoutes.Get("/industry/:industryId", industrySkillCtrl.GetSkillsByIndustry)
	skillRoutes.Post("/", industrySkillCtrl.CreateSkill)
	skillRoutes.Put("/:id", industrySkillCtrl.UpdateSkill)
	skillRoutes.Delete("/:id", industrySkillCtrl.DeleteSkill)

	// 💼 Profesi
	professionRoutes := api.Group("/professions", adminOnly("mengelola profesi"))
	professionRoutes.Get("/", professionCtrl.GetAll)
	professionRoutes.Post("/", professionCtrl.Create)
	professionRoutes.Put("/:id", professionCtrl.Update)
	professionRoutes.Delete("/:id", professionCtrl.Delete)

	// 📋 Survey
	surveyRoutes := api.Group("/surveys", adminOnly("mengelola survey"))
	surveyRoutes.Get("/", surveyCtrl.GetAll)
	surveyRoutes.Get("/:id", surveyCtrl.GetByID)
	surveyRoutes.Post("/", surveyCtrl.Create)
	surveyRoutes.Put("/:id", surveyCtrl.Update)
	surveyRoutes.Delete("/:id", surveyCtrl.Delete)

	// 🏢 Perusahaan & analisis
	companyRoutes := api.Group("/companies", adminOnly("melihat perusahaan"))
	companyRoutes.Get("/", companyCtrl.GetAll)
	companyRoutes.Get("/:id", companyCtrl.GetByID)

	analysisRoutes := api.Group("/analysis", adminOnly("melihat analisis skill"))
	analysisRoutes.Get("/company/:companyId/survey/:surveyId/skills", companyCtrl.SkillAnalysis)

	// 👥 User management
	userRoutes := api.Group("/users", adminOnly("mengelola user"))
	userRoutes.Get("/", userCtrl.GetAll)
	userRoutes.Put("/:id/role", userCtrl.UpdateRole)
}
