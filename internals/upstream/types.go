// file: internals/upstream/types.go
package upstream

import "github.com/google/uuid"

// Tipe-tipe di file ini adalah representasi transien dari entitas yang
// disimpan backend; BFF tidak pernah jadi source of truth untuk data ini.

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ProfileImage *string   `json:"profileImage,omitempty"`
}

type Option struct {
	ID          int64  `json:"id"`
	Level       int    `json:"level"` // skala ordinal 1..5, unik per pertanyaan
	Description string `json:"description"`
}

type Question struct {
	ID      int64    `json:"id"`
	Content string   `json:"content"` // rich HTML
	Options []Option `json:"options"`
}

type Survey struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Answer adalah satu entri AnswerMap yang dikirim ke backend saat submit.
type Answer struct {
	QuestionID int64 `json:"questionId"`
	Level      int   `json:"level"`
}

type ResponsePayload struct {
	SurveyID int64     `json:"surveyId"`
	UserID   uuid.UUID `json:"userId"`
	Answers  []Answer  `json:"answers"`
}

type ProfessionMatch struct {
	ProfessionID    int64   `json:"professionId"`
	ProfessionName  string  `json:"professionName"`
	MatchPercentage float64 `json:"matchPercentage"`
}

type SurveyResult struct {
	ID       int64             `json:"id"`
	UserID   uuid.UUID         `json:"userId"`
	SurveyID int64             `json:"surveyId"`
	Matches  []ProfessionMatch `json:"matches"`
}

type Industry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Skill struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IndustryID int64  `json:"industryId"`
}

// SkillRequirement level skill yang disyaratkan sebuah profesi.
type SkillRequirement struct {
	SkillID int64 `json:"skillId"`
	Level   int   `json:"level"`
}

type Profession struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	IndustryID int64              `json:"industryId"`
	Skills     []SkillRequirement `json:"skills"`
}

type Company struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

// CompanySkillGap satu baris analisis skill perusahaan vs hasil survey.
type CompanySkillGap struct {
	SkillID      int64   `json:"skillId"`
	SkillName    string  `json:"skillName"`
	AverageLevel float64 `json:"averageLevel"`
	TargetLevel  float64 `json:"targetLevel"`
}
