package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dojo-secrets/dojosecrets/db"
	"github.com/dojo-secrets/dojosecrets/internal/handlers"
	"github.com/dojo-secrets/dojosecrets/internal/router"
	"github.com/dojo-secrets/dojosecrets/internal/session"
	"github.com/dojo-secrets/dojosecrets/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ttl := session.DefaultTTL

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		seconds, err := strconv.Atoi(raw)

		if err != nil || seconds <= 0 {
			log.Fatalf("Invalid SESSION_TTL: %q", raw)
		}

		ttl = time.Duration(seconds) * time.Second
	}

	sessions := session.NewStore(session.WithTTL(ttl))

	h := handlers.New(
		store.NewUserStore(db.DB),
		store.NewSecretStore(db.DB),
		sessions,
	)

	r := router.NewRouter(h, sessions)

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "7777"
		log.Println("PORT not set, defaulting to 7777")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
