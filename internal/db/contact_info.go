package db

import "gorm.io/gorm"

// ContactInfo holds the school's contact details. Singleton table.
type ContactInfo struct {
	gorm.Model
	AddressLine1          string `gorm:"size:255" json:"address_line1"`
	AddressLine2          string `gorm:"size:255" json:"address_line2"`
	Phone                 string `gorm:"size:50" json:"phone"`
	Email1                string `gorm:"size:120" json:"email1"`
	Email2                string `gorm:"size:120" json:"email2"`
	OperatingHours        string `gorm:"size:255" json:"operating_hours"`
	OperatingHoursSubtext string `gorm:"size:255" json:"operating_hours_subtext"`
}

func (ContactInfo) TableName() string {
	return "contact_info"
}
