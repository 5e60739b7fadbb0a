package models

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type NotificationSettings struct {
	EmailUpdates    bool `json:"email_updates"`
	PromptReminders bool `json:"prompt_reminders"`
	WeeklyDigest    bool `json:"weekly_digest"`
}

type PreferenceSettings struct {
	Theme         Theme  `gorm:"not null;default:'light'" json:"theme" validate:"oneof=light dark"`
	DefaultFormat string `gorm:"not null;default:'paragraph'" json:"default_format" validate:"oneof=paragraph bullet-points numbered-list json table"`
	AutoSave      bool   `json:"auto_save"`
}

// Settings is the single account-level settings record
type Settings struct {
	ID            uint                 `gorm:"primarykey" json:"-"`
	Email         string               `gorm:"not null" json:"email" validate:"required,email"`
	DisplayName   string               `json:"display_name" validate:"max=80"`
	Notifications NotificationSettings `gorm:"embedded;embeddedPrefix:notify_" json:"notifications"`
	Preferences   PreferenceSettings   `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// DefaultSettings returns the settings a fresh account starts with.
func DefaultSettings() Settings {
	return Settings{
		ID:          1,
		Email:       "user@example.com",
		DisplayName: "John Doe",
		Notifications: NotificationSettings{
			EmailUpdates: true,
			WeeklyDigest: true,
		},
		Preferences: PreferenceSettings{
			Theme:         ThemeLight,
			DefaultFormat: "paragraph",
			AutoSave:      true,
		},
	}
}
