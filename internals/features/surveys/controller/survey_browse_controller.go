package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"
)

// SurveyBrowseController untuk user memilih survey yang mau dikerjakan.
type SurveyBrowseController struct {
	API *upstream.Client
}

func NewSurveyBrowseController(api *upstream.Client) *SurveyBrowseController {
	return &SurveyBrowseController{API: api}
}

// ✅ GetAll daftar survey tersedia (judul + jumlah pertanyaan saja,
// opsi tidak ikut supaya jawaban tidak bisa diintip dari payload list).
func (ctrl *SurveyBrowseController) GetAll(c *fiber.Ctx) error {
	surveys, err := ctrl.API.ListSurveys(c.UserContext(), helper.GetUpstreamTokenFromLocals(c))
	if err != nil {
		log.Println("[ERROR] Gagal ambil daftar survey:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat daftar survey")
	}

	type item struct {
		ID            int64  `json:"id"`
		Title         string `json:"title"`
		QuestionCount int    `json:"question_count"`
	}
	items := make([]item, 0, len(surveys))
	for _, s := range surveys {
		items = append(items, item{ID: s.ID, Title: s.Title, QuestionCount: len(s.Questions)})
	}
	return helper.JsonOK(c, "", items)
}
