package controller

import (
	"errors"
	"log"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skillmatch_backend/internals/features/preferences/model"
	helper "skillmatch_backend/internals/helpers"
)

type UserPreferenceController struct {
	DB *gorm.DB
}

func NewUserPreferenceController(db *gorm.DB) *UserPreferenceController {
	return &UserPreferenceController{DB: db}
}

// key preferensi: huruf kecil, angka, underscore, dash; maks 64
var prefKeyPattern = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ✅ Get ambil satu blob preferensi; 404 kalau belum pernah diset.
func (ctrl *UserPreferenceController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	key := c.Params("key")
	if !prefKeyPattern.MatchString(key) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Key preferensi tidak valid")
	}

	var pref model.UserPreference
	if err := ctrl.DB.
		Where("user_preference_user_id = ? AND user_preference_key = ?", userID, key).
		First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Preferensi belum diset")
		}
		log.Println("[ERROR] Gagal baca preferensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca preferensi")
	}
	return helper.JsonOK(c, "", pref)
}

// 💾 Put upsert blob preferensi (last write wins per user+key).
func (ctrl *UserPreferenceController) Put(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	key := c.Params("key")
	if !prefKeyPattern.MatchString(key) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Key preferensi tidak valid")
	}
	if key == model.DevRoleKey {
		// reserved, hanya boleh lewat endpoint dev switch-role
		return helper.JsonError(c, fiber.StatusForbidden, "Key ini reserved")
	}

	body := c.Body()
	if len(body) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body kosong")
	}

	pref := model.UserPreference{
		UserPreferenceUserID: userID,
		UserPreferenceKey:    key,
		UserPreferenceValue:  body,
	}
	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_preference_user_id"}, {Name: "user_preference_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_preference_value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// dua PUT bersamaan: konflik unik masih bisa lolos upsert; aman di-retry
			return helper.JsonError(c, fiber.StatusConflict, "Preferensi sedang diupdate, coba lagi")
		}
		log.Println("[ERROR] Gagal simpan preferensi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan preferensi")
	}
	return helper.JsonUpdated(c, "Preferensi tersimpan", pref)
}
