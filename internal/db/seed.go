package db

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/store"
)

// Demo admin credentials for local mode. The password is hashed at seed
// time; the store only ever holds the hash.
const (
	SeedAdminEmail    = "admin@pitlane.com"
	SeedAdminPassword = "Admin123!"

	seedBcryptCost = 12
)

func ptr[T any](v T) *T { return &v }

// seedProducts is the demo catalog. IDs are fixed so the frontend and the
// tests can reference them. CreatedAt is staggered one hour apart,
// prod_1 newest, to keep the default "newest" sort deterministic.
func seedProducts(base time.Time) []*models.Product {
	products := []*models.Product{
		{
			ID:          "prod_1",
			Name:        "Casquette Red Bull Racing",
			Category:    "Casquettes",
			Description: "Casquette officielle Red Bull Racing collection 2025. Tissu respirant et ajustement réglable.",
			Price:       45,
			Rating:      5,
			Reviews:     234,
			Badge:       ptr("NOUVEAU"),
			Stock:       150,
		},
		{
			ID:          "prod_2",
			Name:        "T-Shirt Mercedes AMG",
			Category:    "Vêtements",
			Description: "T-shirt premium Mercedes AMG en coton bio. Coupe moderne et confortable.",
			Price:       65,
			OldPrice:    ptr(85.0),
			Rating:      4,
			Reviews:     189,
			Badge:       ptr("-23%"),
			Stock:       200,
		},
		{
			ID:          "prod_3",
			Name:        "Veste Ferrari Racing",
			Category:    "Vêtements",
			Description: "Veste coupe-vent imperméable Ferrari Racing. Parfaite pour toutes conditions météo.",
			Price:       199,
			Rating:      5,
			Reviews:     456,
			Stock:       75,
		},
		{
			ID:          "prod_4",
			Name:        "Montre McLaren Limited",
			Category:    "Accessoires",
			Description: "Édition limitée chronographe McLaren. Mouvement suisse et design exclusif.",
			Price:       599,
			Rating:      5,
			Reviews:     67,
			Badge:       ptr("EXCLUSIF"),
			Stock:       25,
		},
		{
			ID:          "prod_5",
			Name:        "Modèle réduit F1 2025",
			Category:    "Modèles réduits",
			Description: "Réplique détaillée 1:18 de la monoplace championne 2025.",
			Price:       129,
			Rating:      5,
			Reviews:     342,
			Stock:       100,
		},
		{
			ID:          "prod_6",
			Name:        "Poster Vintage Monaco GP",
			Category:    "Posters",
			Description: "Poster rétro du Grand Prix de Monaco. Impression haute qualité sur papier premium.",
			Price:       35,
			Rating:      4,
			Reviews:     156,
			Stock:       300,
		},
		{
			ID:          "prod_7",
			Name:        "Livre Histoire de la F1",
			Category:    "Livres",
			Description: "Encyclopédie complète de l'histoire de la Formule 1. Plus de 400 pages illustrées.",
			Price:       49,
			Rating:      5,
			Reviews:     89,
			Stock:       120,
		},
		{
			ID:          "prod_8",
			Name:        "Casquette Alpine F1",
			Category:    "Casquettes",
			Description: "Casquette officielle Alpine F1 Team. Design français élégant.",
			Price:       42,
			Rating:      4,
			Reviews:     178,
			Stock:       180,
		},
	}
	for i, p := range products {
		p.Images = []string{}
		p.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
		p.UpdatedAt = p.CreatedAt
	}
	return products
}

// SeedDemoData populates a fresh local-mode store with the demo catalog
// and the admin user.
func SeedDemoData(ctx context.Context, s store.Store) error {
	now := time.Now().UTC()

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), seedBcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	admin := s.Collection(usersCollection).Doc("admin_1")
	err = admin.Set(ctx, map[string]any{
		"email":     SeedAdminEmail,
		"password":  string(hash),
		"firstName": "Admin",
		"lastName":  "PitLane",
		"role":      models.RoleAdmin,
		"createdAt": now,
		"updatedAt": now,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	for _, p := range seedProducts(now) {
		if err := s.Collection(productsCollection).Doc(p.ID).Set(ctx, ProductData(p)); err != nil {
			return fmt.Errorf("failed to seed product '%s': %w", p.ID, err)
		}
	}
	return nil
}
