package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all persisted models.
// PreviewEntry is deliberately absent: previews are ephemeral and never
// touch the database.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Club{},
		&Banner{},
		&BannerDisplaySettings{},
	); err != nil {
		return err
	}

	// Banner lists are always read in sort order.
	return db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_banners_category_sort_order " +
			"ON banners (category, sort_order)",
	).Error
}
