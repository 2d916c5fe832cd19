package database

import (
	"context"
	"log"
	"time"

	"tallerlink/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgPool is the global Postgres connection pool.
var PgPool *pgxpool.Pool

// InitDB initializes the Postgres connection pool.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := pgxpool.ParseConfig(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("invalid DATABASE_URL: %v", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("failed to ping Postgres: %v", err)
	}
	PgPool = pool
	log.Println("Connected to Postgres successfully!")
}
