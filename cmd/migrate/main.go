package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/pkg/database"
)

// migratedModels is every table of the portal schema, in FK order.
var migratedModels = []interface{}{
	&model.Allocation{},
	&model.Staff{},
	&model.TempStaffRecord{},
	&model.Package{},
	&model.Contract{},
	&model.HandsetRequest{},
	&model.Notification{},
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tool for the staff portal schema",
	}

	rootCmd.AddCommand(upCmd(), statusCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func connect() *gorm.DB {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal(color.RedString("Error: DB_CONNECTION_STRING is not set"))
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal(color.RedString("Error: failed to connect to database: %v", err))
	}
	return db
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run AutoMigrate for all portal tables",
		Run: func(cmd *cobra.Command, args []string) {
			db := connect()

			color.Cyan("Running AutoMigrate for %d tables...", len(migratedModels))
			if err := db.AutoMigrate(migratedModels...); err != nil {
				log.Fatal(color.RedString("Migration failed: %v", err))
			}
			color.Green("Migration complete.")
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which portal tables exist",
		Run: func(cmd *cobra.Command, args []string) {
			db := connect()

			migrator := db.Migrator()
			for _, m := range migratedModels {
				if migrator.HasTable(m) {
					color.Green("ok      %T", m)
				} else {
					color.Yellow("missing %T", m)
				}
			}
		},
	}
}
