package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models in dependency order.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		&Taxon{},
		&Sighting{},
	}
}

// Migrate runs GORM AutoMigrate to create or update tables and then adds
// natural key indexes that GORM tags cannot express.
func Migrate(db *gorm.DB) error {
	models := AllModels()
	gormModels := make([]any, len(models))
	for i := range models {
		gormModels[i] = models[i]
	}
	if err := db.AutoMigrate(gormModels...); err != nil {
		return err
	}
	for _, m := range models {
		for _, idx := range m.IndexDDL() {
			if err := db.Exec(idx).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// Statements returns DDL for every table followed by its indexes.
func Statements() []string {
	var res []string
	for _, m := range AllModels() {
		res = append(res, m.TableDDL())
		res = append(res, m.IndexDDL()...)
	}
	return res
}
