package database

import (
	"fmt"
	"log"
	"os"

	"github.com/codesmentors/codesmentors-api/model"
	"github.com/codesmentors/codesmentors-api/utils/auth"
	"github.com/codesmentors/codesmentors-api/utils/seo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// RunSeeds runs all seed functions
func RunSeeds(db *gorm.DB) error {
	return NewSeeder(db).SeedAll()
}

// SeedAll runs all seed functions in dependency order
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin user from ADMIN_EMAIL and
// ADMIN_PASSWORD; skipped when either is unset or an admin already exists.
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already exists, skipping...")
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL and ADMIN_PASSWORD not set, skipping admin user creation")
		return nil
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		Name:       "System Administrator",
		Email:      adminEmail,
		Username:   "admin",
		Password:   hashedPassword,
		Role:       model.RoleAdmin,
		Status:     model.StatusActive,
		IsVerified: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user created: %s", adminEmail)
	return nil
}

// SeedCategories creates the starter navigation categories
func (s *Seeder) SeedCategories() error {
	var count int64
	if err := s.db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Categories already exist, skipping...")
		return nil
	}

	names := []string{"Frontend", "Backend", "Databases", "DevOps"}
	for _, name := range names {
		category := model.Category{
			Name: name,
			Slug: seo.Slugify(name),
			Icon: datatypes.NewJSONType(model.Icon{
				URL:     fmt.Sprintf("/icons/%s.svg", seo.Slugify(name)),
				AltText: name + " icon",
			}),
			IsPublished: true,
		}
		if err := s.db.Create(&category).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d categories", len(names))
	return nil
}
