// internals/middlewares/auth/session_check.go
package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"skillmatch_backend/internals/configs"
)

// hasValidSession cek cepat: token ter-parse dengan secret kita dan belum expired.
// Dipakai GuestOnly; tidak menyimpan apa pun ke locals.
func hasValidSession(c *fiber.Ctx) bool {
	tokenString, err := extractBearerToken(c)
	if err != nil {
		return false
	}
	if configs.JWTSecret == "" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return false
	}
	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return false
	}
	if _, err := extractUserID(claims); err != nil {
		return false
	}
	return true
}
