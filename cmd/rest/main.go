package main

import (
	"context"
	"log"
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/bootstrap"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/config"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/server"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/tracer"
	"github.com/TopNotch-Solutions/ambasphere-backend/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background workers: email delivery and the daily renewal scan.
	ctx := context.Background()
	if err := container.MailConsumerService.Consume(ctx); err != nil {
		log.Printf("Background: mail consumer failed to start: %v", err)
	}
	container.RenewalReminderService.Start(ctx, 24*time.Hour)

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
