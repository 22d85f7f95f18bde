package main

import (
	"log"
	"time"

	"github.com/getsentry/sentry-go"

	"nutritrack/config"
	"nutritrack/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Fatalf("sentry init: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	r := routes.SetupRouter(cfg, db)
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
