package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skillmatch_backend/internals/features/authflow/dto"
	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"
)

// AuthFlowController meneruskan verifikasi email & reset password ke backend.
// Validasi sinkron (password match, panjang minimal) dilakukan di sini dulu,
// tanpa menyentuh network kalau gagal.
type AuthFlowController struct {
	API *upstream.Client
}

func NewAuthFlowController(api *upstream.Client) *AuthFlowController {
	return &AuthFlowController{API: api}
}

// ✉️ VerifyEmail konfirmasi token verifikasi dari link email.
func (ctrl *AuthFlowController) VerifyEmail(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token verifikasi wajib ada")
	}
	status, err := ctrl.API.VerifyEmail(c.UserContext(), token)
	if err != nil {
		if status == fiber.StatusNotFound || status == fiber.StatusBadRequest {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token verifikasi tidak valid atau kedaluwarsa")
		}
		log.Println("[ERROR] Verifikasi email gagal:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memverifikasi email")
	}
	return helper.JsonOK(c, "Email terverifikasi", nil)
}

// 🔒 ResetPassword set password baru lewat token reset.
func (ctrl *AuthFlowController) ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token reset wajib ada")
	}
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Password != req.ConfirmPassword {
		return helper.JsonValidationError(c, map[string][]string{
			"confirm_password": {"konfirmasi password tidak sama"},
		})
	}

	status, err := ctrl.API.ResetPassword(c.UserContext(), token, req.Password)
	if err != nil {
		if status == fiber.StatusNotFound || status == fiber.StatusBadRequest {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token reset tidak valid atau kedaluwarsa")
		}
		log.Println("[ERROR] Reset password gagal:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mereset password")
	}
	return helper.JsonOK(c, "Password berhasil direset", nil)
}
