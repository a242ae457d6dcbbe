package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combo-tracker/internal/repositories/progress"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo, err := progress.NewRedis(&progress.RedisRepoConfig{Client: client})
	if err != nil {
		log.Fatalf("Failed to create progress repository: %v", err)
	}

	snapshots, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list progress: %v", err)
	}

	fmt.Printf("Found %d stored groups:\n", len(snapshots))
	for _, snapshot := range snapshots {
		fmt.Printf("  group %d: slot %d (updated %s)\n",
			snapshot.GroupID, snapshot.Index, snapshot.UpdatedAt.Format(time.RFC3339))
	}
}
