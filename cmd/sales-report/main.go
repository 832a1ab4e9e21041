package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	redisClient "guild-bot/internal/clients/redis"
	"guild-bot/internal/config"
	"guild-bot/internal/observability"
	"guild-bot/internal/state"
	"guild-bot/internal/store"
	"guild-bot/internal/tickets/report"

	"github.com/joho/godotenv"
)

type salesSource interface {
	ListWeeklySales(ctx context.Context, identity, guildID string, since time.Time) ([]state.WeeklySale, error)
}

func main() {
	guildID := flag.String("guild", "", "guild id to report on")
	days := flag.Int("days", 7, "number of days to include")
	flag.Parse()

	if *guildID == "" {
		log.Fatal("-guild is required")
	}

	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: env.local could not be loaded: %v", err)
		}
	}

	logger := observability.NewLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	source, closeFn, err := openSource(logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeFn()

	identity := os.Getenv("STATE_IDENTITY")
	if identity == "" {
		identity = "main"
	}

	since := time.Now().AddDate(0, 0, -*days)
	sales, err := source.ListWeeklySales(ctx, identity, *guildID, since)
	if err != nil {
		log.Fatalf("Failed to list sales: %v", err)
	}

	sum := report.Summarize(sales)
	fmt.Printf("Sales for guild %s since %s\n", *guildID, since.Format(time.DateOnly))
	fmt.Printf("Total: %d sale(s), %s\n", sum.Sales, formatCents(sum.AmountCents))
	for _, s := range sum.Sellers {
		fmt.Printf("  %-20s %4d  %s\n", s.SellerID, s.Sales, formatCents(s.AmountCents))
	}
}

func openSource(logger *observability.Logger) (salesSource, func(), error) {
	if os.Getenv("STORE_BACKEND") == config.StoreBackendRedis {
		port, err := strconv.Atoi(getEnv("REDIS_PORT", "6379"))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
		}
		db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		client, err := redisClient.NewClient(config.RedisConfig{
			Enabled:  true,
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     port,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	}

	dbCfg := config.DatabaseConfig{
		Host:     os.Getenv("DB_HOST"),
		Username: os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}
	if dbCfg.Host == "" || dbCfg.Username == "" || dbCfg.Password == "" || dbCfg.Name == "" {
		return nil, nil, errors.New("database configuration not set")
	}
	db, err := store.New(dbCfg.ConnectionString(), logger)
	if err != nil {
		return nil, nil, err
	}
	return &db, func() { _ = db.Close() }, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatCents(c int64) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}
