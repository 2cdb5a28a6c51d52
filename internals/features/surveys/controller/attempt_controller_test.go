package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skillmatch_backend/internals/configs"
	"skillmatch_backend/internals/features/surveys/route"
	"skillmatch_backend/internals/features/surveys/service"
	"skillmatch_backend/internals/upstream"
)

// backendStub meniru backend REST: satu survey dua pertanyaan, plus counter
// berapa kali POST /api/responses benar-benar sampai.
type backendStub struct {
	server      *httptest.Server
	submitCount atomic.Int32
	failSubmit  atomic.Bool
}

func newBackendStub(t *testing.T) *backendStub {
	t.Helper()
	stub := &backendStub{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/surveys/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(upstream.Survey{
			ID:    7,
			Title: "Survey Skill Backend",
			Questions: []upstream.Question{
				{ID: 101, Content: "<p>SQL?</p>", Options: []upstream.Option{
					{ID: 1, Level: 1, Description: "tidak bisa"},
					{ID: 2, Level: 3, Description: "cukup"},
					{ID: 3, Level: 5, Description: "mahir"},
				}},
				{ID: 102, Content: "<p>Go?</p>", Options: []upstream.Option{
					{ID: 4, Level: 1, Description: "tidak bisa"},
					{ID: 5, Level: 3, Description: "cukup"},
					{ID: 6, Level: 5, Description: "mahir"},
				}},
			},
		})
	})
	mux.HandleFunc("POST /api/responses", func(w http.ResponseWriter, r *http.Request) {
		if stub.failSubmit.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		stub.submitCount.Add(1)
		w.WriteHeader(http.StatusCreated)
	})
	stub.server = httptest.NewServer(mux)
	t.Cleanup(stub.server.Close)
	return stub
}

type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Redirect string          `json:"redirect"`
}

func newAttemptApp(t *testing.T, stub *backendStub) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.SubmitDelay = 0 // delay kosmetik dimatikan di test

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := service.NewAttemptStore(rdb, time.Hour)

	// Postgres di-mock: arsip attempt non-fatal, yang penting INSERT-nya jalan.
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "survey_attempt_archives"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	apiClient := upstream.NewClient(stub.server.URL, 5*time.Second)

	userID := uuid.New()
	app := fiber.New()
	// guard sudah dites terpisah; di sini identity langsung ditanam ke locals
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("user_role", "USER")
		c.Locals("user_name", "tester")
		c.Locals("upstream_token", "upstream-token")
		return c.Next()
	})
	route.SurveyUserRoutes(app.Group("/api/u"), gdb, store, apiClient)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

// Walkthrough lengkap dua pertanyaan: start → jawab → advance → mundur-maju →
// jawab → submit. Backend harus menerima tepat SATU POST /api/responses.
func TestAttemptWalkthrough(t *testing.T) {
	stub := newBackendStub(t)
	app := newAttemptApp(t, stub)

	status, _ := doJSON(t, app, "POST", "/api/u/attempts/7/start", nil)
	require.Equal(t, fiber.StatusCreated, status)

	// start kedua = resume, bukan attempt baru
	status, env := doJSON(t, app, "POST", "/api/u/attempts/7/start", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, env.Message, "dilanjutkan")

	// pertanyaan aktif pertama
	status, env = doJSON(t, app, "GET", "/api/u/attempts/7/current", nil)
	require.Equal(t, fiber.StatusOK, status)
	var current struct {
		CurrentIndex  int   `json:"current_index"`
		QuestionCount int   `json:"question_count"`
		QuestionID    int64             `json:"question_id"`
		Options       []upstream.Option `json:"options"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &current))
	assert.Equal(t, 0, current.CurrentIndex)
	assert.Equal(t, 2, current.QuestionCount)
	assert.Equal(t, int64(101), current.QuestionID)
	assert.Len(t, current.Options, 3)

	// maju tanpa jawab → ditolak
	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/advance", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// submit setengah jalan → ditolak, lock harus lepas lagi
	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/submit", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/answers",
		map[string]any{"question_id": 101, "level": 3})
	require.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/advance", nil)
	require.Equal(t, fiber.StatusOK, status)

	// mundur lalu maju lagi: jawaban tidak hilang
	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/retreat", nil)
	require.Equal(t, fiber.StatusOK, status)
	status, env = doJSON(t, app, "POST", "/api/u/attempts/7/advance", nil)
	require.Equal(t, fiber.StatusOK, status)
	var state struct {
		CurrentIndex  int `json:"current_index"`
		AnsweredCount int `json:"answered_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, 1, state.CurrentIndex)
	assert.Equal(t, 1, state.AnsweredCount)

	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/answers",
		map[string]any{"question_id": 102, "level": 5})
	require.Equal(t, fiber.StatusOK, status)

	status, env = doJSON(t, app, "POST", "/api/u/attempts/7/submit", nil)
	require.Equal(t, fiber.StatusOK, status)
	var submit struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &submit))
	assert.Equal(t, "/applysurvey/apply/7/result?new=true", submit.Redirect)

	assert.Equal(t, int32(1), stub.submitCount.Load(), "backend menerima tepat satu submit")

	// attempt selesai dibersihkan
	status, _ = doJSON(t, app, "GET", "/api/u/attempts/7", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/submit", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

// Backend gagal saat submit: jawaban TIDAK dibuang dan retry bisa jalan.
func TestSubmitUpstreamFailureKeepsAnswers(t *testing.T) {
	stub := newBackendStub(t)
	app := newAttemptApp(t, stub)

	status, _ := doJSON(t, app, "POST", "/api/u/attempts/7/start", nil)
	require.Equal(t, fiber.StatusCreated, status)
	for _, ans := range []map[string]any{
		{"question_id": 101, "level": 2},
		{"question_id": 102, "level": 4},
	} {
		status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/answers", ans)
		require.Equal(t, fiber.StatusOK, status)
	}

	stub.failSubmit.Store(true)
	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/submit", nil)
	assert.Equal(t, fiber.StatusBadGateway, status)

	// state masih utuh
	status, env := doJSON(t, app, "GET", "/api/u/attempts/7", nil)
	require.Equal(t, fiber.StatusOK, status)
	var state struct {
		AnsweredCount int `json:"answered_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, 2, state.AnsweredCount)

	// lock dilepas saat gagal, retry langsung sukses (bukan 409)
	stub.failSubmit.Store(false)
	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/submit", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, int32(1), stub.submitCount.Load())
}

func TestSelectOptionRejectsUnknownQuestion(t *testing.T) {
	stub := newBackendStub(t)
	app := newAttemptApp(t, stub)

	status, _ := doJSON(t, app, "POST", "/api/u/attempts/7/start", nil)
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/answers",
		map[string]any{"question_id": 999, "level": 3})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// level di luar 1..5 ditolak validator
	status, _ = doJSON(t, app, "POST", "/api/u/attempts/7/answers",
		map[string]any{"question_id": 101, "level": 9})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAttemptStartUnknownSurvey(t *testing.T) {
	stub := newBackendStub(t)
	app := newAttemptApp(t, stub)

	status, _ := doJSON(t, app, "POST", "/api/u/attempts/404/start", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
