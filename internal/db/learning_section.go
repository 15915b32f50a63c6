package db

import "gorm.io/gorm"

// LearningSection describes the "how we teach" block on the homepage.
// Singleton table; at most 4 unique tags and 2 images.
type LearningSection struct {
	gorm.Model
	Title       string     `gorm:"size:255" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	Images      StringList `gorm:"type:text" json:"images"`
}

func (LearningSection) TableName() string {
	return "learning_section"
}
