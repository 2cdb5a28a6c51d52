// file: internals/features/surveys/service/attempt.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"skillmatch_backend/internals/upstream"
)

// Attempt adalah state pengerjaan survey milik satu user, padanan state
// komponen halaman pengerjaan di frontend: index pertanyaan aktif + AnswerMap.
type Attempt struct {
	AttemptID    uuid.UUID       `json:"attempt_id"`
	UserID       uuid.UUID       `json:"user_id"`
	SurveyID     int64           `json:"survey_id"`
	CurrentIndex int             `json:"current_index"`
	Answers      map[int64]int   `json:"answers"` // question id → option level
	StartedAt    time.Time       `json:"started_at"`
}

var (
	ErrQuestionUnanswered = errors.New("pertanyaan aktif belum dijawab")
	ErrAttemptIncomplete  = errors.New("masih ada pertanyaan yang belum dijawab")
	ErrSubmitInFlight     = errors.New("submit sedang berjalan")
	ErrUnknownQuestion    = errors.New("pertanyaan tidak ada di survey ini")
)

func NewAttempt(userID uuid.UUID, surveyID int64) *Attempt {
	return &Attempt{
		AttemptID: uuid.New(),
		UserID:    userID,
		SurveyID:  surveyID,
		Answers:   map[int64]int{},
		StartedAt: time.Now(),
	}
}

// SelectOption upsert jawaban. Tidak memajukan index dan tidak memvalidasi
// kelengkapan — persis perilaku klik opsi di UI. Hanya question id yang
// memang ada di survey yang diterima.
func (a *Attempt) SelectOption(survey *upstream.Survey, questionID int64, level int) error {
	for _, q := range survey.Questions {
		if q.ID == questionID {
			a.Answers[questionID] = level
			return nil
		}
	}
	return ErrUnknownQuestion
}

// Advance maju satu pertanyaan. Ditolak kalau pertanyaan aktif belum
// dijawab (index tidak berubah); mentok di pertanyaan terakhir.
func (a *Attempt) Advance(survey *upstream.Survey) error {
	if a.CurrentIndex < 0 || a.CurrentIndex >= len(survey.Questions) {
		a.clampIndex(survey)
	}
	current := survey.Questions[a.CurrentIndex]
	if _, ok := a.Answers[current.ID]; !ok {
		return ErrQuestionUnanswered
	}
	if a.CurrentIndex < len(survey.Questions)-1 {
		a.CurrentIndex++
	}
	return nil
}

// Retreat mundur satu pertanyaan, floor di 0. Selalu boleh.
func (a *Attempt) Retreat() {
	if a.CurrentIndex > 0 {
		a.CurrentIndex--
	}
}

// ValidateComplete memeriksa precondition submit: setiap pertanyaan survey
// punya tepat satu entri jawaban, tidak kurang dan tidak ada entri nyasar.
func (a *Attempt) ValidateComplete(survey *upstream.Survey) error {
	if len(a.Answers) != len(survey.Questions) {
		return ErrAttemptIncomplete
	}
	for _, q := range survey.Questions {
		if _, ok := a.Answers[q.ID]; !ok {
			return ErrAttemptIncomplete
		}
	}
	return nil
}

// ToResponsePayload bentuk AnswerMap jadi payload submit backend,
// urut mengikuti urutan pertanyaan survey.
func (a *Attempt) ToResponsePayload(survey *upstream.Survey) upstream.ResponsePayload {
	answers := make([]upstream.Answer, 0, len(survey.Questions))
	for _, q := range survey.Questions {
		if level, ok := a.Answers[q.ID]; ok {
			answers = append(answers, upstream.Answer{QuestionID: q.ID, Level: level})
		}
	}
	return upstream.ResponsePayload{
		SurveyID: a.SurveyID,
		UserID:   a.UserID,
		Answers:  answers,
	}
}

func (a *Attempt) clampIndex(survey *upstream.Survey) {
	if a.CurrentIndex < 0 {
		a.CurrentIndex = 0
	}
	if max := len(survey.Questions) - 1; a.CurrentIndex > max && max >= 0 {
		a.CurrentIndex = max
	}
}
