package dto

import "skillmatch_backend/internals/upstream"

type SelectOptionRequest struct {
	QuestionID int64 `json:"question_id" validate:"required"`
	Level      int   `json:"level" validate:"required,min=1,max=5"`
}

// AttemptStateResponse snapshot attempt untuk header/progress bar halaman.
type AttemptStateResponse struct {
	AttemptID     string        `json:"attempt_id"`
	SurveyID      int64         `json:"survey_id"`
	SurveyTitle   string        `json:"survey_title"`
	CurrentIndex  int           `json:"current_index"`
	QuestionCount int           `json:"question_count"`
	AnsweredCount int           `json:"answered_count"`
	Answers       map[int64]int `json:"answers"`
}

// CurrentQuestionResponse pertanyaan aktif + opsi yang sudah di-shuffle.
type CurrentQuestionResponse struct {
	CurrentIndex  int               `json:"current_index"`
	QuestionCount int               `json:"question_count"`
	QuestionID    int64             `json:"question_id"`
	Content       string            `json:"content"`
	Options       []upstream.Option `json:"options"`
	SelectedLevel *int              `json:"selected_level,omitempty"`
}

type SubmitResponse struct {
	Redirect string `json:"redirect"`
}
