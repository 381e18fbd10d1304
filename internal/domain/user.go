package domain

import "time"

// User represents a registered application user.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserSettings holds per-user draw and display preferences.
type UserSettings struct {
	IncludeWatchedInDraw bool `json:"includeWatchedInDraw"`
	DarkMode             bool `json:"darkMode"`
}

// DefaultUserSettings returns the settings a new user starts with.
func DefaultUserSettings() UserSettings {
	return UserSettings{}
}

// SettingsPatch is a partial settings update. Nil fields are left as-is.
type SettingsPatch struct {
	IncludeWatchedInDraw *bool `json:"includeWatchedInDraw"`
	DarkMode             *bool `json:"darkMode"`
}

// Merge returns s with every present field of p applied.
func (s UserSettings) Merge(p SettingsPatch) UserSettings {
	if p.IncludeWatchedInDraw != nil {
		s.IncludeWatchedInDraw = *p.IncludeWatchedInDraw
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	return s
}
