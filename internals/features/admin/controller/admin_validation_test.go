package controller

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmatch_backend/internals/features/admin/dto"
	"skillmatch_backend/internals/upstream"
)

func validSurveyRequest() dto.SurveyRequest {
	return dto.SurveyRequest{
		Title: "Survey Skill Backend",
		Questions: []dto.SurveyQuestionRequest{{
			Content: "<p>SQL?</p>",
			Options: []dto.SurveyOptionRequest{
				{Level: 1, Description: "tidak bisa"},
				{Level: 3, Description: "cukup"},
				{Level: 5, Description: "mahir"},
			},
		}},
	}
}

func TestValidateSurvey(t *testing.T) {
	req := validSurveyRequest()
	assert.Nil(t, validateSurvey(&req))

	t.Run("level dobel di satu pertanyaan", func(t *testing.T) {
		req := validSurveyRequest()
		req.Questions[0].Options[2].Level = 3
		errs := validateSurvey(&req)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "questions[0].options")
	})

	t.Run("level sama di pertanyaan berbeda boleh", func(t *testing.T) {
		req := validSurveyRequest()
		req.Questions = append(req.Questions, dto.SurveyQuestionRequest{
			Content: "<p>Go?</p>",
			Options: []dto.SurveyOptionRequest{
				{Level: 1, Description: "tidak bisa"},
				{Level: 3, Description: "cukup"},
			},
		})
		assert.Nil(t, validateSurvey(&req))
	})

	t.Run("minimal dua opsi", func(t *testing.T) {
		req := validSurveyRequest()
		req.Questions[0].Options = req.Questions[0].Options[:1]
		assert.NotNil(t, validateSurvey(&req))
	})

	t.Run("tanpa pertanyaan", func(t *testing.T) {
		req := validSurveyRequest()
		req.Questions = nil
		assert.NotNil(t, validateSurvey(&req))
	})
}

func TestValidateProfession(t *testing.T) {
	req := dto.ProfessionRequest{
		Name:       "Backend Engineer",
		IndustryID: 1,
		Skills: []dto.ProfessionSkillRequest{
			{SkillID: 10, Level: 3},
			{SkillID: 11, Level: 5},
		},
	}
	assert.Nil(t, validateProfession(&req))

	t.Run("skill dobel", func(t *testing.T) {
		dup := req
		dup.Skills = []dto.ProfessionSkillRequest{
			{SkillID: 10, Level: 3},
			{SkillID: 10, Level: 5},
		}
		errs := validateProfession(&dup)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "skills")
	})

	t.Run("level di luar skala", func(t *testing.T) {
		bad := req
		bad.Skills = []dto.ProfessionSkillRequest{{SkillID: 10, Level: 9}}
		assert.NotNil(t, validateProfession(&bad))
	})
}

// Delete tanpa ?confirm=true tidak boleh sampai ke backend.
func TestDeleteRequiresConfirm(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	apiClient := upstream.NewClient(server.URL, 5*time.Second)

	app := fiber.New()
	app.Delete("/surveys/:id", NewSurveyAdminController(apiClient).Delete)
	app.Delete("/professions/:id", NewProfessionController(apiClient).Delete)

	for _, path := range []string{"/surveys/7", "/professions/7"} {
		resp, err := app.Test(httptest.NewRequest("DELETE", path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
	assert.Equal(t, int32(0), hits.Load())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/surveys/7?confirm=true", nil), 5000)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
}
