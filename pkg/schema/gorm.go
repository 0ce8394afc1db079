package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Verse{},
		&Word{},
		&ImportRun{},
	}
}

// Generators returns all models as DDL generators, in creation order.
func Generators() []DDLGenerator {
	return []DDLGenerator{
		Verse{},
		Word{},
		ImportRun{},
	}
}

// TableNames returns the names of all corpus tables.
func TableNames() []string {
	gens := Generators()
	res := make([]string, len(gens))
	for i, g := range gens {
		res[i] = g.TableName()
	}
	return res
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
