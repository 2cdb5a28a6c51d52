package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skillmatch_backend/internals/configs"
	"skillmatch_backend/internals/constants"
	"skillmatch_backend/internals/features/identity/dto"
	"skillmatch_backend/internals/features/identity/service"
	prefModel "skillmatch_backend/internals/features/preferences/model"
	helper "skillmatch_backend/internals/helpers"
	authMiddleware "skillmatch_backend/internals/middlewares/auth"
	"skillmatch_backend/internals/upstream"
)

type SessionController struct {
	DB    *gorm.DB
	Redis *redis.Client
	API   *upstream.Client
}

func NewSessionController(db *gorm.DB, rdb *redis.Client, api *upstream.Client) *SessionController {
	return &SessionController{DB: db, Redis: rdb, API: api}
}

// 🔑 Resolve tukar bearer token upstream dengan session BFF.
// Kegagalan resolve identity SELALU jadi 401 "tanpa user" — tidak pernah
// dibocorkan sebagai 5xx ke guard; tidak ada retry, halaman harus redirect.
func (ctrl *SessionController) Resolve(c *fiber.Ctx) error {
	var req dto.ResolveSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var user *upstream.User
	if configs.DevMode && req.Token == "" {
		user = service.DevMockUser(ctrl.devRole(c))
		log.Printf("[INFO] Dev session: role=%s", user.Role)
	} else {
		u, _, err := ctrl.API.CurrentUser(c.UserContext(), req.Token)
		if err != nil {
			log.Println("[WARN] Identity resolve gagal:", err)
			return helper.JsonRedirect(c, fiber.StatusUnauthorized,
				"Login gagal atau sesi backend tidak valid", constants.RedirectLogin)
		}
		if _, ok := constants.ParseRole(u.Role); !ok {
			log.Printf("[WARN] Role tidak dikenal dari backend: %q", u.Role)
			return helper.JsonRedirect(c, fiber.StatusUnauthorized,
				"Role tidak dikenal", constants.RedirectLogin)
		}
		user = u
	}

	sessionToken, err := service.MintSessionToken(user, req.Token)
	if err != nil {
		log.Println("[ERROR] Gagal mint session token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "sm_session",
		Value:    sessionToken,
		Expires:  time.Now().Add(service.SessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Session dibuat", dto.SessionResponse{
		User:         user,
		SessionToken: sessionToken,
	})
}

// 👤 Me echo identitas dari klaim session (authed).
func (ctrl *SessionController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	role, _ := helper.GetRoleFromLocals(c)
	return helper.JsonOK(c, "", dto.MeResponse{
		UserID:   userID.String(),
		Username: helper.GetUserNameFromLocals(c),
		Role:     string(role),
	})
}

// 🚪 Logout blacklist session token sampai masa berlakunya habis.
func (ctrl *SessionController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("session_token").(string)
	if token != "" && ctrl.Redis != nil {
		if err := ctrl.Redis.Set(c.UserContext(),
			authMiddleware.BlacklistKey(token), "1", service.SessionTTL).Err(); err != nil {
			log.Println("[ERROR] Gagal blacklist session:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}
	c.Cookie(&fiber.Cookie{Name: "sm_session", Value: "", Expires: time.Now().Add(-time.Hour)})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🧪 DevSwitchRole toggle role mock (dev mode saja, dilindungi password).
func (ctrl *SessionController) DevSwitchRole(c *fiber.Ctx) error {
	if !configs.DevMode {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	var req dto.DevSwitchRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(configs.DevToolsPasswordHash), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Password dev tools salah")
	}

	next := constants.RoleAdmin
	if ctrl.devRole(c) == constants.RoleAdmin {
		next = constants.RoleUser
	}
	if err := ctrl.saveDevRole(next); err != nil {
		log.Println("[ERROR] Gagal simpan dev role:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal switch role")
	}
	return helper.JsonUpdated(c, "Role di-switch", fiber.Map{"role": next})
}

// 📝 UpdateProfile teruskan perubahan profil ke backend.
func (ctrl *SessionController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	user, err := ctrl.API.UpdateUser(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), userID, req)
	if err != nil {
		log.Println("[ERROR] Update profil gagal:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan profil")
	}
	return helper.JsonUpdated(c, "Profil tersimpan", user)
}

// devRole baca mocked role dari preference tersimpan; default USER.
func (ctrl *SessionController) devRole(c *fiber.Ctx) constants.Role {
	var pref prefModel.UserPreference
	err := ctrl.DB.
		Where("user_preference_key = ?", prefModel.DevRoleKey).
		First(&pref).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[WARN] Gagal baca dev role:", err)
		}
		return constants.RoleUser
	}
	if role, ok := constants.ParseRole(string(trimJSONString(pref.UserPreferenceValue))); ok {
		return role
	}
	return constants.RoleUser
}

func (ctrl *SessionController) saveDevRole(role constants.Role) error {
	pref := prefModel.UserPreference{
		UserPreferenceUserID: service.DevMockUser(role).ID,
		UserPreferenceKey:    prefModel.DevRoleKey,
		UserPreferenceValue:  []byte(`"` + string(role) + `"`),
	}
	return ctrl.DB.
		Where("user_preference_key = ?", prefModel.DevRoleKey).
		Assign(map[string]any{"user_preference_value": pref.UserPreferenceValue}).
		FirstOrCreate(&pref).Error
}

// trimJSONString buka blob `"ADMIN"` jadi ADMIN tanpa full unmarshal.
func trimJSONString(raw []byte) []byte {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}
	return raw
}
