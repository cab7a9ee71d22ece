package model

// PlaylistVideo is an entry of a user's video playlist.
type PlaylistVideo struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	UserID         uint   `json:"user_id" gorm:"not null;index"`
	YoutubeVideoID string `json:"youtube_video_id" gorm:"size:50;not null"`
	Title          string `json:"title" gorm:"size:200;not null"`
	ThumbnailURL   string `json:"thumbnail_url" gorm:"size:255"`
	IsFavorite     bool   `json:"is_favorite" gorm:"not null;default:false"`
}
