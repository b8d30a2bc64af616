package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries fills the dependency-free reference tables: brands and
// location types. Every insert is idempotent, so reruns are safe.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding reference dictionaries...")

	if err := seedBrands(ctx, db); err != nil {
		log.Fatalf("seed brands: %v", err)
	}
	if err := seedLocationTypes(ctx, db); err != nil {
		log.Fatalf("seed location types: %v", err)
	}
	log.Println("reference dictionaries seeded")
}

// SeedLocations builds the initial location tree: the campus root plus one
// building and one floor hanging off it. Requires the dictionaries.
func SeedLocations(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding location tree...")

	if err := seedLocationTree(ctx, db); err != nil {
		log.Fatalf("seed locations: %v", err)
	}
	log.Println("location tree seeded")
}

// SeedAdmin creates the initial administrator account.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding administrator...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	log.Println("administrator seeded")
}
