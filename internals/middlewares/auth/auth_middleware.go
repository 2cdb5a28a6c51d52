// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"

	"skillmatch_backend/internals/configs"
	"skillmatch_backend/internals/constants"
	helper "skillmatch_backend/internals/helpers"
)

// BlacklistKey key Redis untuk session JWT yang sudah di-logout.
func BlacklistKey(token string) string {
	return "session:blacklist:" + token
}

// AuthMiddleware memvalidasi session JWT yang di-mint BFF ini sendiri.
// Sesi tidak valid → 401 + redirect "/login" (guard state REDIRECT_LOGIN).
func AuthMiddleware(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonRedirect(c, fiber.StatusUnauthorized,
				"Unauthorized - silakan login dulu", constants.RedirectLogin)
		}

		// 2) Cek blacklist (sekali per request)
		if rdb != nil && c.Locals("token_checked") == nil {
			n, err := rdb.Exists(c.UserContext(), BlacklistKey(tokenString)).Result()
			if err != nil {
				log.Println("[ERROR] Redis error saat cek blacklist:", err)
				// Redis mati bukan alasan mengunci seluruh app; lanjut verifikasi JWT
			} else if n > 0 {
				log.Println("[WARNING] Session token ditemukan di blacklist")
				return helper.JsonRedirect(c, fiber.StatusUnauthorized,
					"Unauthorized - session sudah logout", constants.RedirectLogin)
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse session token:", err)
			return helper.JsonRedirect(c, fiber.StatusUnauthorized,
				"Unauthorized - token parse error", constants.RedirectLogin)
		}

		// 4) Validasi exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return helper.JsonRedirect(c, fiber.StatusUnauthorized,
				"Unauthorized - session expired", constants.RedirectLogin)
		}

		// 5) Ambil user_id
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return helper.JsonRedirect(c, fiber.StatusUnauthorized,
				"Unauthorized - invalid or missing user ID", constants.RedirectLogin)
		}
		c.Locals("user_id", userID.String())
		c.Locals("session_token", tokenString)

		// 6) Simpan klaim lain (role, user_name, upstream_token)
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}
