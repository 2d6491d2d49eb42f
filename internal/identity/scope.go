package identity

import "gorm.io/gorm"

// OwnedBy returns a GORM scope that filters by user_id.
func OwnedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
