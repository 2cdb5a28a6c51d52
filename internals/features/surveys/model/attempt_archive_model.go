package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SurveyAttemptArchive adalah arsip attempt yang sudah berhasil disubmit.
// State attempt yang masih berjalan hidup di Redis, bukan di tabel ini.
type SurveyAttemptArchive struct {
	SurveyAttemptID       uuid.UUID      `gorm:"column:survey_attempt_id;primaryKey;type:uuid" json:"survey_attempt_id"`
	SurveyAttemptUserID   uuid.UUID      `gorm:"column:survey_attempt_user_id;type:uuid;not null;index" json:"survey_attempt_user_id"`
	SurveyAttemptSurveyID int64          `gorm:"column:survey_attempt_survey_id;not null;index" json:"survey_attempt_survey_id"`
	SurveyAttemptAnswers  datatypes.JSON `gorm:"column:survey_attempt_answers;type:jsonb;not null" json:"survey_attempt_answers"`

	SurveyAttemptStartedAt   time.Time `gorm:"column:survey_attempt_started_at;not null" json:"survey_attempt_started_at"`
	SurveyAttemptSubmittedAt time.Time `gorm:"column:survey_attempt_submitted_at;autoCreateTime" json:"survey_attempt_submitted_at"`
}

func (SurveyAttemptArchive) TableName() string {
	return "survey_attempt_archives"
}
