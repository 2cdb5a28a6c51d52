package dto

// MatchItem satu baris detail list hasil.
type MatchItem struct {
	ProfessionID   int64   `json:"profession_id"`
	ProfessionName string  `json:"profession_name"`
	Percentage     float64 `json:"percentage"`
	PercentageText string  `json:"percentage_text"` // satu desimal
}

// ChartPayload data siap-render untuk bar & radar chart.
type ChartPayload struct {
	Labels []string  `json:"labels"`
	Series []float64 `json:"series"`
}

type ResultResponse struct {
	SurveyID int64        `json:"survey_id"`
	Matches  []MatchItem  `json:"matches"`
	Bar      ChartPayload `json:"bar"`
	Radar    ChartPayload `json:"radar"`
}

type ResultHistoryItem struct {
	ResultID   int64      `json:"result_id"`
	SurveyID   int64      `json:"survey_id"`
	TopMatches []MatchItem `json:"top_matches"`
}
