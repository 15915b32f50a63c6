package db

import "gorm.io/gorm"

// TentangKamiPhoto is a photo on the "tentang kami" (about us) page with a
// visibility toggle so editors can stage photos before showing them.
type TentangKamiPhoto struct {
	gorm.Model
	ImageURL      string `gorm:"size:500;not null" json:"image_url"`
	Title         string `gorm:"size:255" json:"title"`
	Caption       string `gorm:"size:255" json:"caption"`
	OrderPosition int    `gorm:"default:0" json:"order_position"`
	IsActive      bool   `gorm:"default:true" json:"is_active"`
}

func (TentangKamiPhoto) TableName() string {
	return "tentang_kami_photos"
}
