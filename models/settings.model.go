package models

// Setting holds one row of per-user display and notification
// preferences. Column names keep the legacy camelCase spelling.
type Setting struct {
	ID                        uint    `gorm:"primaryKey" json:"id"`
	UserID                    uint    `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	NotificationsEnabled      bool    `gorm:"column:notificationsEnabled;default:true" json:"notificationsEnabled"`
	EmailNotificationsEnabled bool    `gorm:"column:emailNotificationsEnabled;default:true" json:"emailNotificationsEnabled"`
	DarkModeEnabled           bool    `gorm:"column:darkModeEnabled;default:false" json:"darkModeEnabled"`
	SelectedLanguage          string  `gorm:"column:selectedLanguage;default:'English'" json:"selectedLanguage"`
	TextSize                  float64 `gorm:"column:textSize;default:1" json:"textSize"`
}

func (Setting) TableName() string {
	return "settings"
}
