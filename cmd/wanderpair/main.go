package main

import (
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"github.com/wanderpair/wanderpair/internal/db"
	"github.com/wanderpair/wanderpair/internal/services"
	"github.com/wanderpair/wanderpair/internal/storage"
)

type appConfig struct {
	DBPath   string `env:"DB_PATH" envDefault:"data/wanderpair.db"`
	Timezone string `env:"TZ" envDefault:"UTC"`
}

var config appConfig

var rootCmd = &cobra.Command{
	Use:           "wanderpair",
	Short:         "Shared travel map for two",
	Long:          "wanderpair keeps a couple's travel map: destinations, plans, wishlists and the little insights derived from them.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := env.Parse(&config); err != nil {
		log.Fatalf("parse environment: %v", err)
	}
	time.Local = mustLoadLocation(config.Timezone)

	if err := rootCmd.Execute(); err != nil {
		log.Printf("wanderpair: %v", err)
		os.Exit(1)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

// openWorkspace opens the local database and restores whatever session the
// last run left active.
func openWorkspace() (*services.Workspace, error) {
	database, err := db.OpenSQLite(config.DBPath)
	if err != nil {
		return nil, err
	}
	adapter := storage.NewDatabaseAdapter(db.NewKVRepository(database))
	return services.NewWorkspace(adapter), nil
}
