package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle, opened once at startup.
var DB *gorm.DB

// Init opens the database and runs auto migration for every content model.
// An empty databasePath falls back to the default sekolahku.db.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "sekolahku.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	return AutoMigrate(DB)
}

// AutoMigrate creates or updates the tables for every model. Exposed so test
// fixtures can migrate an in-memory database the same way the server does.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&AboutUs{},
		&ContactInfo{},
		&HomepageSettings{},
		&PPDBSettings{},
		&LearningSection{},
		&Achievement{},
		&Facility{},
		&Program{},
		&News{},
		&GalleryPhoto{},
		&GalleryVideo{},
		&TentangKamiPhoto{},
		&ContactMessage{},
	)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
