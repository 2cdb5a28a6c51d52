package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"skillmatch_backend/internals/constants"
	helper "skillmatch_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError validasi role + custom error message.
// Dipasang SETELAH AuthMiddleware: state LOADING sudah selesai di sana,
// di sini tinggal {REDIRECT_UNAUTHORIZED | RENDER}.
func RoleMiddlewareWithCustomError(allowedRoles []constants.Role, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := helper.GetRoleFromLocals(c)
		if !ok {
			return helper.JsonRedirect(c, fiber.StatusUnauthorized,
				"Unauthorized: missing role information", constants.RedirectLogin)
		}

		log.Printf("[DEBUG] Role pengguna: %s\n", role)

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonRedirect(c, fiber.StatusForbidden,
			customForbiddenMessage, constants.RedirectUnauthorized)
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...constants.Role) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// GuestOnly untuk halaman login/register-equivalent: session valid justru
// diarahkan pulang. Dipasang TANPA AuthMiddleware di depannya.
func GuestOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := extractBearerToken(c); err != nil {
			return c.Next() // anonymous → render
		}
		// Token ada tapi belum tentu valid; cukup adanya session yang valid
		// yang memblokir. Parse ringan tanpa verifikasi penuh tidak cukup,
		// jadi delegasikan: kalau parse gagal, anggap guest.
		if !hasValidSession(c) {
			return c.Next()
		}
		return helper.JsonRedirect(c, fiber.StatusForbidden,
			"Sudah login, kembali ke beranda", constants.RedirectHome)
	}
}
