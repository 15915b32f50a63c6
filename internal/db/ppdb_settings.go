package db

import "gorm.io/gorm"

// PPDBSettings holds the external registration form link (PPDB = new student
// admission). Singleton table.
type PPDBSettings struct {
	gorm.Model
	GoogleFormURL string `gorm:"size:500" json:"google_form_url"`
}

func (PPDBSettings) TableName() string {
	return "ppdb_settings"
}
