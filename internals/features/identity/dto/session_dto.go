package dto

import "skillmatch_backend/internals/upstream"

type ResolveSessionRequest struct {
	// Bearer token upstream hasil login user di backend.
	// Boleh kosong di dev mode (identity di-mock).
	Token string `json:"token"`
}

type SessionResponse struct {
	User         *upstream.User `json:"user"`
	SessionToken string         `json:"session_token"`
}

type MeResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type DevSwitchRoleRequest struct {
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
}
