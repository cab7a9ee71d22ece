package model

import "time"

// User is the identity record. Profile, playlist videos and favorite themes
// are owned children and go away with the user; unlocked items are links to
// the shared catalog.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Profile        *UserProfile    `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PlaylistVideos []PlaylistVideo `json:"playlist_videos,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FavoriteThemes []FavoriteTheme `json:"favorite_themes,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	UnlockedItems  []Unlockable    `json:"unlocked_items,omitempty" gorm:"many2many:user_unlocks"`
}
