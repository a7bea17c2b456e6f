package configs

import (
	"gofood/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// Open connects to a sqlite database. Use "file::memory:?cache=shared" in tests.
func Open(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func ConnectionDB(source string) {
	database, err := Open(source)
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {
	return Migrate(db)
}

// Migrate the schema
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&entity.User{},
		&entity.Food{}, &entity.Extra{},
		&entity.Favorite{},
		&entity.Order{}, &entity.OrderExtra{},
	)
}
