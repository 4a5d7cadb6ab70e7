package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/config"
	"github.com/lankipolo123/styleHive-server/models"
)

// Connect opens the Postgres connection and migrates the schema. References
// between entities are lookup-only, so migration skips foreign key
// constraints: an order item may point at a product that no longer exists.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection successfully opened.")

	log.Println("Running database migrations...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return nil, err
	}
	log.Println("Database migrated successfully.")

	return db, nil
}
