package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skillmatch_backend/internals/configs"
	"skillmatch_backend/internals/features/surveys/dto"
	"skillmatch_backend/internals/features/surveys/model"
	"skillmatch_backend/internals/features/surveys/service"
	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"

	"github.com/bytedance/sonic"
)

type AttemptController struct {
	DB    *gorm.DB
	Store *service.AttemptStore
	API   *upstream.Client
}

func NewAttemptController(db *gorm.DB, store *service.AttemptStore, api *upstream.Client) *AttemptController {
	return &AttemptController{DB: db, Store: store, API: api}
}

// fetchSurvey ambil definisi survey dari backend (read-only untuk flow ini).
func (ctrl *AttemptController) fetchSurvey(c *fiber.Ctx, surveyID int64) (*upstream.Survey, error) {
	survey, status, err := ctrl.API.GetSurvey(c.UserContext(), helper.GetUpstreamTokenFromLocals(c), surveyID)
	if err != nil {
		if status == fiber.StatusNotFound {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Survey tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil survey dari backend:", err)
		return nil, helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat survey")
	}
	if len(survey.Questions) == 0 {
		return nil, helper.JsonError(c, fiber.StatusUnprocessableEntity, "Survey belum punya pertanyaan")
	}
	return survey, nil
}

func (ctrl *AttemptController) loadAttempt(c *fiber.Ctx, surveyID int64) (*service.Attempt, error) {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	a, err := ctrl.Store.Get(c.UserContext(), userID, surveyID)
	if errors.Is(err, service.ErrAttemptNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Attempt belum dimulai")
	}
	if err != nil {
		log.Println("[ERROR] Gagal baca attempt:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca state attempt")
	}
	return a, nil
}

// 🚀 Start membuat attempt baru, atau melanjutkan yang sudah ada (resume).
func (ctrl *AttemptController) Start(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	survey, err := ctrl.fetchSurvey(c, int64(surveyID))
	if err != nil {
		return err
	}

	a, err := ctrl.Store.Get(c.UserContext(), userID, int64(surveyID))
	if errors.Is(err, service.ErrAttemptNotFound) {
		a = service.NewAttempt(userID, int64(surveyID))
		if err := ctrl.Store.Save(c.UserContext(), a); err != nil {
			log.Println("[ERROR] Gagal simpan attempt baru:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai attempt")
		}
		return helper.JsonCreated(c, "Attempt dimulai", toStateResponse(a, survey))
	}
	if err != nil {
		log.Println("[ERROR] Gagal baca attempt:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca state attempt")
	}
	return helper.JsonOK(c, "Attempt dilanjutkan", toStateResponse(a, survey))
}

// 📋 State snapshot progres attempt.
func (ctrl *AttemptController) State(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	survey, err := ctrl.fetchSurvey(c, int64(surveyID))
	if err != nil {
		return err
	}
	a, err := ctrl.loadAttempt(c, int64(surveyID))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", toStateResponse(a, survey))
}

// ❓ Current pertanyaan aktif dengan opsi yang sudah di-shuffle stabil.
func (ctrl *AttemptController) Current(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	survey, err := ctrl.fetchSurvey(c, int64(surveyID))
	if err != nil {
		return err
	}
	a, err := ctrl.loadAttempt(c, int64(surveyID))
	if err != nil {
		return err
	}
	if a.CurrentIndex < 0 || a.CurrentIndex >= len(survey.Questions) {
		// definisi survey bisa berubah di backend sejak attempt dimulai
		a.CurrentIndex = 0
	}
	q := survey.Questions[a.CurrentIndex]

	resp := dto.CurrentQuestionResponse{
		CurrentIndex:  a.CurrentIndex,
		QuestionCount: len(survey.Questions),
		QuestionID:    q.ID,
		Content:       q.Content,
		Options:       service.ShuffledOptions(q.Content, q.Options),
	}
	if level, ok := a.Answers[q.ID]; ok {
		resp.SelectedLevel = &level
	}
	return helper.JsonOK(c, "", resp)
}

// ✅ SelectOption upsert jawaban; tidak memajukan index, tidak memvalidasi
// kelengkapan.
func (ctrl *AttemptController) SelectOption(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	var req dto.SelectOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	survey, err := ctrl.fetchSurvey(c, int64(surveyID))
	if err != nil {
		return err
	}
	a, err := ctrl.loadAttempt(c, int64(surveyID))
	if err != nil {
		return err
	}
	if err := a.SelectOption(survey, req.QuestionID, req.Level); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pertanyaan tidak ada di survey ini")
	}
	if err := ctrl.Store.Save(c.UserContext(), a); err != nil {
		log.Println("[ERROR] Gagal simpan jawaban:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jawaban")
	}
	return helper.JsonUpdated(c, "Jawaban tersimpan", toStateResponse(a, survey))
}

// ▶️ Advance maju satu pertanyaan; ditolak kalau yang aktif belum dijawab.
func (ctrl *AttemptController) Advance(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	survey, err := ctrl.fetchSurvey(c, int64(surveyID))
	if err != nil {
		return err
	}
	a, err := ctrl.loadAttempt(c, int64(surveyID))
	if err != nil {
		return err
	}
	if err := a.Advance(survey); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Jawab dulu pertanyaan ini sebelum lanjut")
	}
	if err := ctrl.Store.Save(c.UserContext(), a); err != nil {
		log.Println("[ERROR] Gagal simpan attempt:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan state attempt")
	}
	return helper.JsonUpdated(c, "", toStateResponse(a, survey))
}

// ◀️ Retreat mundur satu pertanyaan; selalu boleh, floor di 0.
func (ctrl *AttemptController) Retreat(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	survey, err := ctrl.fetchSurvey(c, int64(surveyID))
	if err != nil {
		return err
	}
	a, err := ctrl.loadAttempt(c, int64(surveyID))
	if err != nil {
		return err
	}
	a.Retreat()
	if err := ctrl.Store.Save(c.UserContext(), a); err != nil {
		log.Println("[ERROR] Gagal simpan attempt:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan state attempt")
	}
	return helper.JsonUpdated(c, "", toStateResponse(a, survey))
}

// 📩 Submit: single-flight, semua pertanyaan wajib terjawab, kirim ke
// backend, arsipkan, lalu kasih redirect halaman hasil. Kalau backend
// gagal, jawaban TIDAK dibuang supaya user bisa retry tanpa mengulang.
func (ctrl *AttemptController) Submit(c *fiber.Ctx) error {
	surveyID, err := c.ParamsInt("surveyId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Survey id tidak valid")
	}
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	survey, err := ctrl.fetchSurvey(c, int64(surveyID))
	if err != nil {
		return err
	}
	a, err := ctrl.loadAttempt(c, int64(surveyID))
	if err != nil {
		return err
	}

	ok, err := ctrl.Store.AcquireSubmitLock(c.UserContext(), userID, int64(surveyID))
	if err != nil {
		log.Println("[ERROR] Submit lock:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunci submit")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusConflict, "Submit sedang diproses, tunggu sebentar")
	}

	if err := a.ValidateComplete(survey); err != nil {
		ctrl.Store.ReleaseSubmitLock(c.UserContext(), userID, int64(surveyID))
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Masih ada pertanyaan yang belum dijawab")
	}

	if _, err := ctrl.API.SubmitResponses(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), a.ToResponsePayload(survey)); err != nil {
		ctrl.Store.ReleaseSubmitLock(c.UserContext(), userID, int64(surveyID))
		log.Println("[ERROR] Submit ke backend gagal:", err)
		return helper.JsonError(c, fiber.StatusBadGateway,
			"Gagal mengirim jawaban, coba lagi — jawaban kamu masih tersimpan")
	}

	// Delay kosmetik untuk pacing UI loading state; bukan correctness.
	if configs.SubmitDelay > 0 {
		time.Sleep(configs.SubmitDelay)
	}

	ctrl.archiveAttempt(a)
	if err := ctrl.Store.Delete(c.UserContext(), userID, int64(surveyID)); err != nil {
		log.Println("[WARN] Gagal hapus attempt selesai:", err)
	}
	ctrl.Store.ReleaseSubmitLock(c.UserContext(), userID, int64(surveyID))

	log.Printf("[SUCCESS] Attempt %s disubmit (survey %d)", a.AttemptID, surveyID)
	return helper.JsonOK(c, "Jawaban terkirim", dto.SubmitResponse{
		Redirect: fmt.Sprintf("/applysurvey/apply/%d/result?new=true", surveyID),
	})
}

// archiveAttempt simpan riwayat attempt ke Postgres; kegagalan hanya dicatat,
// submit ke backend sudah sukses dan itu yang dipedulikan user.
func (ctrl *AttemptController) archiveAttempt(a *service.Attempt) {
	raw, err := sonic.Marshal(a.Answers)
	if err != nil {
		log.Println("[ERROR] Marshal arsip attempt:", err)
		return
	}
	archive := model.SurveyAttemptArchive{
		SurveyAttemptID:       a.AttemptID,
		SurveyAttemptUserID:   a.UserID,
		SurveyAttemptSurveyID: a.SurveyID,
		SurveyAttemptAnswers:  raw,
		SurveyAttemptStartedAt: a.StartedAt,
	}
	if err := ctrl.DB.Create(&archive).Error; err != nil {
		log.Println("[ERROR] Gagal arsipkan attempt:", err)
	}
}

func toStateResponse(a *service.Attempt, survey *upstream.Survey) dto.AttemptStateResponse {
	return dto.AttemptStateResponse{
		AttemptID:     a.AttemptID.String(),
		SurveyID:      a.SurveyID,
		SurveyTitle:   survey.Title,
		CurrentIndex:  a.CurrentIndex,
		QuestionCount: len(survey.Questions),
		AnsweredCount: len(a.Answers),
		Answers:       a.Answers,
	}
}
