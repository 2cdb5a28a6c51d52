// file: internals/helpers/claims.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillmatch_backend/internals/constants"
)

// GetUserIDFromLocals mengambil user_id yang sudah disimpan auth middleware.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}

// GetRoleFromLocals mengambil role (tipe tertutup) dari context.
func GetRoleFromLocals(c *fiber.Ctx) (constants.Role, bool) {
	raw, ok := c.Locals("user_role").(string)
	if !ok {
		return "", false
	}
	return constants.ParseRole(raw)
}

// GetUserNameFromLocals ambil user_name; kosong kalau tidak ada.
func GetUserNameFromLocals(c *fiber.Ctx) string {
	name, _ := c.Locals("user_name").(string)
	return name
}

// GetUpstreamTokenFromLocals ambil bearer token upstream yang dititipkan di session.
func GetUpstreamTokenFromLocals(c *fiber.Ctx) string {
	tok, _ := c.Locals("upstream_token").(string)
	return tok
}
