package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/campusdesk/campusdesk-api/internal/models"
)

// ConnectPostgres establishes a connection to the PostgreSQL store using the provided DSN.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn must not be empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, nil
}

// Migrate creates the schema tables. The order follows the foreign-key
// direction: users before role profiles, courses before the ledgers.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Professor{},
		&models.Student{},
		&models.Course{},
		&models.CourseProfessor{},
		&models.Enrollment{},
		&models.Grade{},
		&models.CourseRequest{},
	)
}
