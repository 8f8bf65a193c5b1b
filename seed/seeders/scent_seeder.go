package seeders

import (
	"log"
	"time"

	"github.com/aroma-labs/aroma_api/model"
	"github.com/aroma-labs/aroma_api/shared"
	"gorm.io/gorm"
)

// ScentSeeder handles seeding the scent catalog
type ScentSeeder struct {
	db *gorm.DB
}

// NewScentSeeder creates a new scent seeder
func NewScentSeeder(db *gorm.DB) *ScentSeeder {
	return &ScentSeeder{db: db}
}

// SeedScents seeds the database with the trainable scent catalog
func (s *ScentSeeder) SeedScents() error {
	scents := s.getCatalogScents()

	for _, scent := range scents {
		// Check if scent already exists
		var existing model.Scent
		if err := s.db.Where("id = ?", scent.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&scent).Error; err != nil {
					log.Printf("Error creating scent %s: %v", scent.Name, err)
					return err
				}
				log.Printf("Created scent: %s", scent.Name)
			} else {
				log.Printf("Error checking scent %s: %v", scent.Name, err)
				return err
			}
		} else {
			log.Printf("Scent %s already exists, skipping", scent.Name)
		}
	}

	log.Println("Scent seeding completed successfully")
	return nil
}

// getCatalogScents returns the classic smell-training set plus extensions
func (s *ScentSeeder) getCatalogScents() []model.Scent {
	now := time.Now()

	scents := []model.Scent{
		{
			ID:          "scent_rose",
			Name:        "Rose",
			Family:      shared.ScentFamilyFloral,
			Description: "A soft, sweet floral. One of the four classic training scents; most people find it the easiest to recover.",
			ImageURL:    "/assets/scents/rose.jpg",
		},
		{
			ID:          "scent_lemon",
			Name:        "Lemon",
			Family:      shared.ScentFamilyFruity,
			Description: "Bright and sharp citrus. Its high volatility makes it a good early benchmark.",
			ImageURL:    "/assets/scents/lemon.jpg",
		},
		{
			ID:          "scent_clove",
			Name:        "Clove",
			Family:      shared.ScentFamilySpicy,
			Description: "Warm and pungent spice with a slight numbing edge. Strong trigeminal component.",
			ImageURL:    "/assets/scents/clove.jpg",
		},
		{
			ID:          "scent_eucalyptus",
			Name:        "Eucalyptus",
			Family:      shared.ScentFamilyResinous,
			Description: "Cool, camphorous, and penetrating. The fourth of the classic training set.",
			ImageURL:    "/assets/scents/eucalyptus.jpg",
		},
		{
			ID:          "scent_lavender",
			Name:        "Lavender",
			Family:      shared.ScentFamilyFloral,
			Description: "Herbaceous floral with a calming, slightly powdery finish.",
			ImageURL:    "/assets/scents/lavender.jpg",
		},
		{
			ID:          "scent_orange",
			Name:        "Sweet Orange",
			Family:      shared.ScentFamilyFruity,
			Description: "Round, juicy citrus. Gentler than lemon and easy to hold in memory.",
			ImageURL:    "/assets/scents/orange.jpg",
		},
		{
			ID:          "scent_cinnamon",
			Name:        "Cinnamon",
			Family:      shared.ScentFamilySpicy,
			Description: "Sweet, woody spice. Often confused with clove in early training weeks.",
			ImageURL:    "/assets/scents/cinnamon.jpg",
		},
		{
			ID:          "scent_pine",
			Name:        "Pine",
			Family:      shared.ScentFamilyResinous,
			Description: "Fresh forest resin, green and slightly sharp.",
			ImageURL:    "/assets/scents/pine.jpg",
		},
		{
			ID:          "scent_peppermint",
			Name:        "Peppermint",
			Family:      shared.ScentFamilySpicy,
			Description: "Sharp menthol coolness with a sweet undertone.",
			ImageURL:    "/assets/scents/peppermint.jpg",
		},
		{
			ID:          "scent_jasmine",
			Name:        "Jasmine",
			Family:      shared.ScentFamilyFloral,
			Description: "Heady, rich white floral. A later-stage scent for refining discrimination.",
			ImageURL:    "/assets/scents/jasmine.jpg",
		},
		{
			ID:          "scent_vanilla",
			Name:        "Vanilla",
			Family:      shared.ScentFamilyResinous,
			Description: "Warm, sweet balsamic. Low volatility; useful for testing persistence.",
			ImageURL:    "/assets/scents/vanilla.jpg",
		},
		{
			ID:          "scent_grapefruit",
			Name:        "Grapefruit",
			Family:      shared.ScentFamilyFruity,
			Description: "Bitter-edged citrus, livelier than orange but less aggressive than lemon.",
			ImageURL:    "/assets/scents/grapefruit.jpg",
		},
	}

	for i := range scents {
		scents[i].IsActive = true
		scents[i].CreatedAt = now
		scents[i].UpdatedAt = now
	}

	return scents
}
