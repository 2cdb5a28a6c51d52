package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch_backend/internals/features/results/dto"
	"skillmatch_backend/internals/upstream"
)

func TestBuildResultResponse(t *testing.T) {
	raw := []upstream.ProfessionMatch{
		{ProfessionID: 1, ProfessionName: "Backend Engineer", MatchPercentage: 50},
		{ProfessionID: 1, ProfessionName: "Backend Engineer", MatchPercentage: 80},
		{ProfessionID: 2, ProfessionName: "Data Analyst", MatchPercentage: 91.2},
	}
	resp := buildResultResponse(7, raw)

	assert.Equal(t, int64(7), resp.SurveyID)
	require.Len(t, resp.Matches, 2, "duplikat profesi dibuang")

	// urut menurun by persentase, format satu desimal
	assert.Equal(t, "Data Analyst", resp.Matches[0].ProfessionName)
	assert.Equal(t, "91.2", resp.Matches[0].PercentageText)
	assert.Equal(t, "Backend Engineer", resp.Matches[1].ProfessionName)
	assert.Equal(t, "50.0", resp.Matches[1].PercentageText)

	// chart mengikuti urutan matches; bar dan radar payload-nya sama
	assert.Equal(t, []string{"Data Analyst", "Backend Engineer"}, resp.Bar.Labels)
	assert.Equal(t, []float64{91.2, 50}, resp.Bar.Series)
	assert.Equal(t, resp.Bar, resp.Radar)
}

func newResultApp(t *testing.T, handler http.Handler) *fiber.App {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ctrl := NewResultController(upstream.NewClient(server.URL, 5*time.Second))
	userID := uuid.New()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("upstream_token", "upstream-token")
		return c.Next()
	})
	app.Get("/results", ctrl.History)
	app.Get("/results/:surveyId", ctrl.Get)
	app.Post("/results/:surveyId/calculate", ctrl.Calculate)
	return app
}

func TestGetResultNotReady(t *testing.T) {
	app := newResultApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	resp, err := app.Test(httptest.NewRequest("GET", "/results/7", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHistoryTopThreePerResult(t *testing.T) {
	app := newResultApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]upstream.SurveyResult{{
			ID:       11,
			SurveyID: 7,
			Matches: []upstream.ProfessionMatch{
				{ProfessionID: 1, ProfessionName: "A", MatchPercentage: 10},
				{ProfessionID: 2, ProfessionName: "B", MatchPercentage: 40},
				{ProfessionID: 3, ProfessionName: "C", MatchPercentage: 30},
				{ProfessionID: 4, ProfessionName: "D", MatchPercentage: 20},
			},
		}})
	}))

	resp, err := app.Test(httptest.NewRequest("GET", "/results", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []dto.ResultHistoryItem `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)

	item := body.Data[0]
	assert.Equal(t, int64(11), item.ResultID)
	require.Len(t, item.TopMatches, 3, "riwayat hanya menampilkan tiga match teratas")
	assert.Equal(t, "B", item.TopMatches[0].ProfessionName)
	assert.Equal(t, "C", item.TopMatches[1].ProfessionName)
	assert.Equal(t, "D", item.TopMatches[2].ProfessionName)
}

func TestCalculateUpstreamDown(t *testing.T) {
	app := newResultApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	resp, err := app.Test(httptest.NewRequest("POST", "/results/7/calculate", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
