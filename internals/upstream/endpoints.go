// file: internals/upstream/endpoints.go
package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

/* ===============================
   Identity
=================================*/

func (c *Client) CurrentUser(ctx context.Context, bearer string) (*User, int, error) {
	var u User
	status, err := c.doJSON(ctx, http.MethodGet, "/api/users/me", bearer, nil, &u)
	if err != nil {
		return nil, status, err
	}
	return &u, status, nil
}

func (c *Client) ListUsers(ctx context.Context, bearer string) ([]User, error) {
	var users []User
	_, err := c.doJSON(ctx, http.MethodGet, "/api/users", bearer, nil, &users)
	return users, err
}

func (c *Client) UpdateUserRole(ctx context.Context, bearer string, userID uuid.UUID, role string) error {
	body := map[string]string{"role": role}
	_, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%s/role", userID), bearer, body, nil)
	return err
}

func (c *Client) UpdateUser(ctx context.Context, bearer string, userID uuid.UUID, body any) (*User, error) {
	var u User
	_, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%s", userID), bearer, body, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

/* ===============================
   Surveys
=================================*/

func (c *Client) ListSurveys(ctx context.Context, bearer string) ([]Survey, error) {
	var surveys []Survey
	_, err := c.doJSON(ctx, http.MethodGet, "/api/surveys", bearer, nil, &surveys)
	return surveys, err
}

func (c *Client) GetSurvey(ctx context.Context, bearer string, id int64) (*Survey, int, error) {
	var s Survey
	status, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/surveys/%d", id), bearer, nil, &s)
	if err != nil {
		return nil, status, err
	}
	return &s, status, nil
}

func (c *Client) CreateSurvey(ctx context.Context, bearer string, body any) (*Survey, error) {
	var s Survey
	_, err := c.doJSON(ctx, http.MethodPost, "/api/surveys", bearer, body, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateSurvey(ctx context.Context, bearer string, id int64, body any) (*Survey, error) {
	var s Survey
	_, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/surveys/%d", id), bearer, body, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteSurvey(ctx context.Context, bearer string, id int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/surveys/%d", id), bearer, nil, nil)
	return err
}

/* ===============================
   Responses & results
=================================*/

func (c *Client) SubmitResponses(ctx context.Context, bearer string, payload ResponsePayload) (int, error) {
	return c.doJSON(ctx, http.MethodPost, "/api/responses", bearer, payload, nil)
}

func (c *Client) CalculateResult(ctx context.Context, bearer string, surveyID int64, userID uuid.UUID) error {
	path := fmt.Sprintf("/api/surveys/%d/results/%s/calculate", surveyID, userID)
	_, err := c.doJSON(ctx, http.MethodPost, path, bearer, nil, nil)
	return err
}

func (c *Client) GetResult(ctx context.Context, bearer string, surveyID int64, userID uuid.UUID) (*SurveyResult, int, error) {
	var r SurveyResult
	path := fmt.Sprintf("/api/surveys/%d/results/%s", surveyID, userID)
	status, err := c.doJSON(ctx, http.MethodGet, path, bearer, nil, &r)
	if err != nil {
		return nil, status, err
	}
	return &r, status, nil
}

func (c *Client) ListUserResults(ctx context.Context, bearer string, userID uuid.UUID) ([]SurveyResult, error) {
	var rs []SurveyResult
	_, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/surveys/results/user/%s", userID), bearer, nil, &rs)
	return rs, err
}

/* ===============================
   Industries, skills, professions
=================================*/

func (c *Client) ListIndustries(ctx context.Context, bearer string) ([]Industry, error) {
	var xs []Industry
	_, err := c.doJSON(ctx, http.MethodGet, "/api/industries", bearer, nil, &xs)
	return xs, err
}

func (c *Client) SkillsByIndustry(ctx context.Context, bearer string, industryID int64) ([]Skill, error) {
	var xs []Skill
	_, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/skills/industry/%d", industryID), bearer, nil, &xs)
	return xs, err
}

func (c *Client) CreateSkill(ctx context.Context, bearer string, body any) (*Skill, error) {
	var s Skill
	_, err := c.doJSON(ctx, http.MethodPost, "/api/skills", bearer, body, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateSkill(ctx context.Context, bearer string, id int64, body any) (*Skill, error) {
	var s Skill
	_, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/skills/%d", id), bearer, body, &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteSkill(ctx context.Context, bearer string, id int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/skills/%d", id), bearer, nil, nil)
	return err
}

func (c *Client) ListProfessions(ctx context.Context, bearer string) ([]Profession, error) {
	var xs []Profession
	_, err := c.doJSON(ctx, http.MethodGet, "/api/professions", bearer, nil, &xs)
	return xs, err
}

func (c *Client) CreateProfession(ctx context.Context, bearer string, body any) (*Profession, error) {
	var p Profession
	_, err := c.doJSON(ctx, http.MethodPost, "/api/professions", bearer, body, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProfession(ctx context.Context, bearer string, id int64, body any) (*Profession, error) {
	var p Profession
	_, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/professions/%d", id), bearer, body, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProfession(ctx context.Context, bearer string, id int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/professions/%d", id), bearer, nil, nil)
	return err
}

/* ===============================
   Companies & analysis
=================================*/

func (c *Client) ListCompanies(ctx context.Context, bearer string) ([]Company, error) {
	var xs []Company
	_, err := c.doJSON(ctx, http.MethodGet, "/api/companies", bearer, nil, &xs)
	return xs, err
}

func (c *Client) GetCompany(ctx context.Context, bearer string, id int64) (*Company, int, error) {
	var co Company
	status, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/companies/%d", id), bearer, nil, &co)
	if err != nil {
		return nil, status, err
	}
	return &co, status, nil
}

func (c *Client) CompanySkillAnalysis(ctx context.Context, bearer string, companyID, surveyID int64) ([]CompanySkillGap, error) {
	var xs []CompanySkillGap
	path := fmt.Sprintf("/api/analysis/company/%d/survey/%d/skills", companyID, surveyID)
	_, err := c.doJSON(ctx, http.MethodGet, path, bearer, nil, &xs)
	return xs, err
}

/* ===============================
   Auth flows (verify / reset)
=================================*/

func (c *Client) VerifyEmail(ctx context.Context, token string) (int, error) {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/verify/"+token, "", nil, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) (int, error) {
	body := map[string]string{"password": password}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password/"+token, "", body, nil)
}
