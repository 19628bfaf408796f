package database

import (
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"finance-assistant-go-be/models"
)

// Connect opens the Postgres connection and runs migrations.
func Connect(dsn string, log zerolog.Logger) *gorm.DB {
	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL environment variable not set")
	}
	if !strings.Contains(dsn, "sslmode") {
		dsn += "?sslmode=require" // Fixes Supabase connection refusal
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	log.Info().Msg("Connected to database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.RecurringTemplate{},
		&models.Budget{},
		&models.Alert{},
		&models.CareerProfile{},
		&models.SalaryEntry{},
		&models.IncomeGoal{},
		&models.CareerExpense{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	log.Info().Msg("Database migrated")

	return db
}
