package repository

import "gorm.io/gorm"

// Migrate ensures the users and booking tables exist. Idempotent, safe to
// run on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{}, &bookingModel{})
}
