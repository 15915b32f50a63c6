package db

import "gorm.io/gorm"

// GalleryVideo is one entry in the video gallery. Exactly one of VideoURL
// (uploaded file) or EmbedURL (external embed, e.g. YouTube) is set.
type GalleryVideo struct {
	gorm.Model
	Title         string `gorm:"size:255;not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	VideoURL      string `gorm:"size:500" json:"video_url"`
	EmbedURL      string `gorm:"size:500" json:"embed_url"`
	ThumbnailURL  string `gorm:"size:500" json:"thumbnail_url"`
	OrderPosition int    `gorm:"default:0" json:"order_position"`
}
