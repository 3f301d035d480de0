package main

import (
	"log"

	"go-retail-crm/internal/repository"
	"go-retail-crm/pkg/config"
	"go-retail-crm/pkg/database"
)

// Maintenance tool: wipe the local snapshot store and re-seed the demo
// collections. Useful after a crash left a partially committed state behind
// (the local path has no recovery mechanism by design).
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}

	if err := db.Exec("DROP TABLE IF EXISTS collections").Error; err != nil {
		log.Fatalf("❌ Failed to drop snapshot table: %v", err)
	}

	local := repository.NewLocalStore(db)
	if err := local.Migrate(); err != nil {
		log.Fatalf("❌ Failed to re-seed local store: %v", err)
	}

	log.Printf("✅ Success! Local store at %q reset to seed data", cfg.DB.DSN)
}
