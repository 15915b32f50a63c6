package db

import "gorm.io/gorm"

// Achievement is a school or student award, listed newest year first.
type Achievement struct {
	gorm.Model
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Year        int    `gorm:"not null" json:"year"`
	ImageURL    string `gorm:"size:500" json:"image_url"`
}
