// file: internals/features/identity/service/session_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"skillmatch_backend/internals/configs"
	"skillmatch_backend/internals/constants"
	"skillmatch_backend/internals/upstream"
)

const SessionTTL = 24 * time.Hour

// MintSessionToken menerbitkan session JWT BFF setelah identity berhasil
// di-resolve dari backend. Bearer token upstream dititipkan di klaim supaya
// request berikutnya bisa diteruskan atas nama user.
func MintSessionToken(user *upstream.User, upstreamToken string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":        user.ID.String(),
		"user_name":      user.Username,
		"role":           user.Role,
		"upstream_token": upstreamToken,
		"iat":            now.Unix(),
		"exp":            now.Add(SessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// Identitas mock untuk dev mode: user tetap dengan uuid deterministik,
// role diambil dari preference tersimpan (padanan localStorage dev key).
var devUserID = uuid.MustParse("00000000-0000-0000-0000-0000000000d1")

func DevMockUser(role constants.Role) *upstream.User {
	return &upstream.User{
		ID:       devUserID,
		Username: "dev",
		Email:    "dev@localhost",
		Role:     string(role),
	}
}
