package model

// FavoriteTheme is a color theme saved by a user. Colors are hex strings
// such as "#A1B2C3".
type FavoriteTheme struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"not null;index"`
	ThemeName    string `json:"theme_name" gorm:"size:100;not null"`
	PrimaryColor string `json:"primary_color" gorm:"size:7"`
	AccentColor  string `json:"accent_color" gorm:"size:7"`
}
