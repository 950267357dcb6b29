package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sreeraksha0123/campus-sync/config"
	"github.com/sreeraksha0123/campus-sync/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Notice{},
		&models.ClubProfile{},
		&models.ClubEvent{},
		&models.Competition{},
		&models.Placement{},
		&models.Setting{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
