package db

import (
	"time"

	"gorm.io/gorm"
)

// News is an article shown on the site, newest published date first.
// Content is markdown; rendering happens at the edge, not here.
type News struct {
	gorm.Model
	Title         string    `gorm:"size:255;not null" json:"title"`
	Content       string    `gorm:"type:text" json:"content"`
	ThumbnailURL  string    `gorm:"size:500" json:"thumbnail_url"`
	PublishedDate time.Time `json:"published_date"`
	Author        string    `gorm:"size:120" json:"author"`
}

func (News) TableName() string {
	return "news"
}
