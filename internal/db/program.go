package db

import "gorm.io/gorm"

// Program categories shown on the site.
const (
	ProgramCategoryAcademic        = "academic"
	ProgramCategoryExtracurricular = "extracurricular"
	ProgramCategoryCharacter       = "character"
	ProgramCategoryTour            = "tour"
)

// MaxPrograms caps the programs table; the homepage layout fits four cards.
const MaxPrograms = 4

// Program is a featured school program.
type Program struct {
	gorm.Model
	Name          string `gorm:"size:255;not null" json:"name"`
	Description   string `gorm:"type:text" json:"description"`
	IconURL       string `gorm:"size:500" json:"icon_url"`
	ImageURL      string `gorm:"size:500" json:"image_url"`
	Category      string `gorm:"size:30;default:academic" json:"category"`
	OrderPosition int    `gorm:"default:0" json:"order_position"`
}
