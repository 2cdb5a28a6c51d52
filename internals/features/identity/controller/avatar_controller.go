package controller

import (
	"encoding/base64"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "skillmatch_backend/internals/helpers"
)

const maxAvatarUpload = 2 << 20 // 2MB sebelum normalisasi

// 🖼 UploadAvatar normalisasi avatar (downscale + webp) lalu teruskan ke
// backend sebagai data URL di field profileImage.
func (ctrl *SessionController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File avatar wajib diunggah")
	}
	if fh.Size > maxAvatarUpload {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran avatar maksimal 2MB")
	}

	webpBytes, err := helper.NormalizeAvatarToWebP(fh)
	if err != nil {
		log.Println("[ERROR] Normalisasi avatar gagal:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "File avatar tidak bisa diproses")
	}

	dataURL := "data:image/webp;base64," + base64.StdEncoding.EncodeToString(webpBytes)
	user, err := ctrl.API.UpdateUser(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), userID,
		fiber.Map{"profileImage": dataURL})
	if err != nil {
		log.Println("[ERROR] Update avatar gagal:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan avatar")
	}
	return helper.JsonUpdated(c, "Avatar tersimpan", user)
}
