package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ainexus_backend/internals/configs"
	annModel "ainexus_backend/internals/features/announcements/model"
	clubModel "ainexus_backend/internals/features/clubs/model"
	collegeModel "ainexus_backend/internals/features/colleges/model"
	coordModel "ainexus_backend/internals/features/coordinators/model"
	eventModel "ainexus_backend/internals/features/events/model"
	memberModel "ainexus_backend/internals/features/members/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ainexus",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates the schema plus the uniqueness backstops the application
// pre-checks rely on. The name checks in the controllers are advisory only;
// these partial indexes close the race between two simultaneous creates.
func Migrate() {
	if err := DB.AutoMigrate(
		&collegeModel.CollegeModel{},
		&clubModel.ClubModel{},
		&coordModel.CoordinatorModel{},
		&eventModel.EventModel{},
		&memberModel.MemberModel{},
		&memberModel.MemberClubModel{},
		&annModel.AnnouncementModel{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_clubs_name_live
			ON clubs (LOWER(club_name)) WHERE NOT is_deleted`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_colleges_name_live
			ON colleges (LOWER(college_name)) WHERE NOT is_deleted`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Fatalf("[ERROR] index creation failed: %v", err)
		}
	}
}
