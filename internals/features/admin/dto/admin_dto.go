package dto

// === Skills ===

type SkillRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	IndustryID int64  `json:"industry_id" validate:"required"`
}

// === Professions ===

type ProfessionSkillRequest struct {
	SkillID int64 `json:"skill_id" validate:"required"`
	Level   int   `json:"level" validate:"required,min=1,max=5"`
}

type ProfessionRequest struct {
	Name       string                   `json:"name" validate:"required,min=2,max=100"`
	IndustryID int64                    `json:"industry_id" validate:"required"`
	Skills     []ProfessionSkillRequest `json:"skills" validate:"required,min=1,dive"`
}

// === Surveys ===

type SurveyOptionRequest struct {
	Level       int    `json:"level" validate:"required,min=1,max=5"`
	Description string `json:"description" validate:"required"`
}

type SurveyQuestionRequest struct {
	Content string                `json:"content" validate:"required"`
	Options []SurveyOptionRequest `json:"options" validate:"required,min=2,dive"`
}

type SurveyRequest struct {
	Title     string                  `json:"title" validate:"required,min=3,max=200"`
	Questions []SurveyQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

// === Users ===

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN USER"`
}
