package db

import "gorm.io/gorm"

// GalleryPhoto is one image in the public photo gallery.
type GalleryPhoto struct {
	gorm.Model
	ImageURL      string `gorm:"size:500;not null" json:"image_url"`
	Caption       string `gorm:"size:255" json:"caption"`
	OrderPosition int    `gorm:"default:0" json:"order_position"`
}
