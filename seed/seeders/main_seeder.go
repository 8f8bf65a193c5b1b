package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	scentSeeder := NewScentSeeder(s.db)
	if err := scentSeeder.SeedScents(); err != nil {
		log.Printf("Scent seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedScentsOnly seeds only the scent catalog
func (s *MainSeeder) SeedScentsOnly() error {
	scentSeeder := NewScentSeeder(s.db)
	return scentSeeder.SeedScents()
}
