package db

import "gorm.io/gorm"

// Facility is a campus facility card, ordered by editor-assigned position.
type Facility struct {
	gorm.Model
	Name          string `gorm:"size:255;not null" json:"name"`
	Description   string `gorm:"type:text" json:"description"`
	ImageURL      string `gorm:"size:500" json:"image_url"`
	Icon          string `gorm:"size:50" json:"icon"`
	OrderPosition int    `gorm:"default:0" json:"order_position"`
}
