package db

import "gorm.io/gorm"

// ContactMessage is a message sent by a site visitor. Append-only from the
// visitor side; admins may only flag it replied or delete it.
type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"size:120;not null" json:"name"`
	Email   string `gorm:"size:120;not null" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`
	Replied bool   `gorm:"default:false" json:"replied"`
}
