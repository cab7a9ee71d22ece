package model

// DefaultThemeName is the theme every new profile starts with.
const DefaultThemeName = "Paz"

// UserProfile is the one-to-one extension of User.
type UserProfile struct {
	ID               uint   `json:"id" gorm:"primaryKey"`
	UserID           uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	ActiveThemeName  string `json:"active_theme_name" gorm:"size:50;default:'Paz'"`
	Points           int    `json:"points" gorm:"not null;default:0"`
	TimeSpentSeconds int64  `json:"time_spent_seconds" gorm:"not null;default:0"`
}

// NewUserProfile returns a profile carrying the registration defaults.
func NewUserProfile() *UserProfile {
	return &UserProfile{
		ActiveThemeName: DefaultThemeName,
	}
}
