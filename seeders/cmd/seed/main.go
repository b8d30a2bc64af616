package main

import (
	"flag"
	"log"

	"gema-backend/pkg/config"
	"gema-backend/pkg/database/postgresql"
	"gema-backend/seeders"
)

func main() {
	runDictionaries := flag.Bool("dictionaries", false, "seed brands and location types")
	runLocations := flag.Bool("locations", false, "seed the initial location tree")
	runAdmin := flag.Bool("admin", false, "seed the administrator account")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runDictionaries && !*runLocations && !*runAdmin && !*runAll {
		flag.Usage()
		log.Fatal("no seeder selected")
	}

	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(db)
	}
	if *runAll || *runLocations {
		seeders.SeedLocations(db)
	}
	if *runAll || *runAdmin {
		seeders.SeedAdmin(db)
	}
}
