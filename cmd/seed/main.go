package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/creatorbridge/api/config"
	"github.com/creatorbridge/api/pkg/database"
	"github.com/creatorbridge/api/pkg/testdata"
)

// Seeds the development database with fake leads, clients, and
// applications. Not for production use.
func main() {
	leadCount := flag.Int("leads", 40, "number of leads to create")
	clientCount := flag.Int("clients", 12, "number of clients to create")
	applicationCount := flag.Int("applications", 20, "number of applications to create")
	all := flag.Bool("all", false, "seed default counts of everything")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	if *all {
		if err := testdata.SeedAll(ctx, db.Ent); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	} else {
		if err := testdata.SeedLeads(ctx, db.Ent, *leadCount); err != nil {
			log.Fatalf("❌ Seeding leads failed: %v", err)
		}
		if err := testdata.SeedClients(ctx, db.Ent, *clientCount); err != nil {
			log.Fatalf("❌ Seeding clients failed: %v", err)
		}
		if err := testdata.SeedApplications(ctx, db.Ent, *applicationCount); err != nil {
			log.Fatalf("❌ Seeding applications failed: %v", err)
		}
	}

	log.Printf("✅ Seeding complete in %s", time.Since(start).Round(time.Millisecond))
}
