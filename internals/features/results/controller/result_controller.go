package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"skillmatch_backend/internals/features/results/dto"
	"skillmatch_backend/internals/features/results/service"
	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"
)

type ResultController struct {
	API *upstream.Client
}

func NewResultController(api *upstream.Client) *ResultController {
	return &ResultController{API: api}
}

// 🧮 Calculate minta backend menghitung match untuk pasangan survey/user ini.
func (ctrl *ResultController) Calculate(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	if err := ctrl.API.CalculateResult(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(surveyID), userID); err != nil {
		log.Println("[ERROR] Calculate result gagal:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghitung hasil")
	}
	return helper.JsonOK(c, "Perhitungan hasil dimulai", nil)
}

// 📊 Get ambil hasil terhitung: dedupe per profesi, sort menurun,
// format persentase, plus payload chart bar & radar.
func (ctrl *ResultController) Get(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	result, status, err := ctrl.API.GetResult(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), int64(surveyID), userID)
	if err != nil {
		if status == fiber.StatusNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Hasil belum tersedia")
		}
		log.Println("[ERROR] Gagal ambil hasil:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat hasil")
	}

	return helper.JsonOK(c, "", buildResultResponse(int64(surveyID), result.Matches))
}

// 🗂 History semua hasil milik user untuk halaman riwayat.
func (ctrl *ResultController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	results, err := ctrl.API.ListUserResults(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), userID)
	if err != nil {
		log.Println("[ERROR] Gagal ambil riwayat hasil:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat riwayat hasil")
	}

	paging := helper.ResolvePaging(c, 10, 50)
	items := make([]dto.ResultHistoryItem, 0, len(results))
	for _, r := range results {
		matches := service.DedupeMatches(r.Matches)
		service.SortMatchesDesc(matches)
		if len(matches) > 3 {
			matches = matches[:3]
		}
		items = append(items, dto.ResultHistoryItem{
			ResultID:   r.ID,
			SurveyID:   r.SurveyID,
			TopMatches: toMatchItems(matches),
		})
	}

	total := int64(len(items))
	start := paging.Offset
	if start > len(items) {
		start = len(items)
	}
	end := start + paging.Limit
	if end > len(items) {
		end = len(items)
	}
	return helper.JsonList(c, "", items[start:end],
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func buildResultResponse(surveyID int64, raw []upstream.ProfessionMatch) dto.ResultResponse {
	matches := service.DedupeMatches(raw)
	service.SortMatchesDesc(matches)

	labels := make([]string, 0, len(matches))
	series := make([]float64, 0, len(matches))
	for _, m := range matches {
		labels = append(labels, m.ProfessionName)
		series = append(series, m.MatchPercentage)
	}
	chart := dto.ChartPayload{Labels: labels, Series: series}

	return dto.ResultResponse{
		SurveyID: surveyID,
		Matches:  toMatchItems(matches),
		Bar:      chart,
		Radar:    chart,
	}
}

func toMatchItems(matches []upstream.ProfessionMatch) []dto.MatchItem {
	items := make([]dto.MatchItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, dto.MatchItem{
			ProfessionID:   m.ProfessionID,
			ProfessionName: m.ProfessionName,
			Percentage:     m.MatchPercentage,
			PercentageText: service.FormatPercentage(m.MatchPercentage),
		})
	}
	return items
}
