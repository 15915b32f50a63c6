package db

import "gorm.io/gorm"

// HomepageSettings drives the landing page hero section. Singleton table.
// HeroImages keeps the carousel URLs in display order.
type HomepageSettings struct {
	gorm.Model
	WelcomeTitle       string     `gorm:"size:255" json:"welcome_title"`
	WelcomeDescription string     `gorm:"type:text" json:"welcome_description"`
	HeroImages         StringList `gorm:"type:text" json:"hero_images"`
}

func (HomepageSettings) TableName() string {
	return "homepage_settings"
}
