package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserPreference blob preferensi UI per user+key (theme color, layout, dsb).
// Isinya opaque bagi BFF — padanan localStorage di versi browser.
type UserPreference struct {
	UserPreferenceID     int64          `gorm:"column:user_preference_id;primaryKey" json:"user_preference_id"`
	UserPreferenceUserID uuid.UUID      `gorm:"column:user_preference_user_id;type:uuid;not null;uniqueIndex:idx_user_pref_key" json:"user_preference_user_id"`
	UserPreferenceKey    string         `gorm:"column:user_preference_key;size:64;not null;uniqueIndex:idx_user_pref_key" json:"user_preference_key"`
	UserPreferenceValue  datatypes.JSON `gorm:"column:user_preference_value;type:jsonb;not null" json:"user_preference_value"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

// Key reserved untuk mocked role di dev mode.
const DevRoleKey = "dev_role"
