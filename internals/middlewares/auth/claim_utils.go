// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// extractBearerToken ambil token dari header Authorization atau cookie session.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tok != "" {
			return tok, nil
		}
	}
	if tok := c.Cookies("sm_session"); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - missing token")
}

// validateTokenExpiry cek klaim exp dengan toleransi clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

// extractUserID ambil user_id (uuid) dari klaim.
func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user_id claim")
	}
	return uuid.Parse(raw)
}

// storeBasicClaimsToLocals simpan klaim standar ke context request.
func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["role"].(string); ok {
		c.Locals("user_role", v)
	}
	if v, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", v)
	}
	if v, ok := claims["upstream_token"].(string); ok {
		c.Locals("upstream_token", v)
	}
}
