package db

import (
	"errors"
	"os"

	"portfolio-backend/models"
	"portfolio-backend/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the process-wide database handle and runs migrations.
// A failed initial connection is fatal.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, reading configuration from the system environment")
	}

	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		utils.LogError(nil, "DB_URL is not defined")
		panic("database URL not configured")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		panic("could not connect to the database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Project{},
		&models.TechStack{},
		&models.Personal{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		panic("could not migrate database")
	}

	utils.LogSuccess("Database connection successful")
}

// CloseDB releases the underlying connection pool on shutdown
func CloseDB() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		utils.LogError(err, "Error fetching the SQL connection for close")
		return
	}
	if err := sqlDB.Close(); err != nil {
		utils.LogError(err, "Error closing the database connection")
		return
	}
	utils.LogInfo("Database connection closed")
}

// SeedAdminUser creates the admin identity from ADMIN_EMAIL/ADMIN_PASSWORD
// when no user exists yet. Without credentials configured the panel simply
// has no account to log into.
func SeedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.LogInfo("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seeding")
		return
	}

	var existing models.User
	err := DB.Where("email = ?", utils.NormalizeEmail(email)).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error checking for an existing admin user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError(err, "Error hashing the admin password")
		return
	}

	admin := models.User{
		Email:    utils.NormalizeEmail(email),
		Password: string(hash),
		Role:     models.AdminRole,
	}
	if err := DB.Create(&admin).Error; err != nil {
		utils.LogError(err, "Error seeding the admin user")
		return
	}
	utils.LogSuccess("Admin user seeded")
}
