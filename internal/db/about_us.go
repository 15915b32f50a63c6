package db

import "gorm.io/gorm"

// AboutUs holds the site-wide profile text. The table keeps at most one row.
type AboutUs struct {
	gorm.Model
	Vision      string `gorm:"type:text" json:"vision"`
	Mission     string `gorm:"type:text" json:"mission"`
	Description string `gorm:"type:text" json:"description"`
}

func (AboutUs) TableName() string {
	return "about_us"
}
