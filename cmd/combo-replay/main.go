package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combo-tracker/internal/chains"
	"github.com/KirkDiggler/combo-tracker/internal/config"
	"github.com/KirkDiggler/combo-tracker/internal/events"
	"github.com/KirkDiggler/combo-tracker/internal/oracle"
	"github.com/KirkDiggler/combo-tracker/internal/replay"
	"github.com/KirkDiggler/combo-tracker/internal/services"
	"github.com/KirkDiggler/combo-tracker/internal/uuid"
)

func main() {
	os.Exit(run())
}

// run replays the script and returns the process exit code
func run() int {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	scriptPath := flag.String("script", "", "Replay script to run")
	chainsPath := flag.String("chains", "", "Chain file, overrides COMBO_CHAINS_FILE")
	resume := flag.Bool("resume", false, "Restore stored progress before replaying")
	checkpoint := flag.Bool("checkpoint", false, "Store progress after replaying")
	flag.Parse()

	if *scriptPath == "" {
		log.Println("Please provide a replay script with -script flag")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	if *chainsPath != "" {
		cfg.Combo.ChainsFile = *chainsPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	script, err := replay.LoadScript(*scriptPath)
	if err != nil {
		log.Printf("Failed to load script: %v", err)
		return 1
	}

	table := oracle.NewStatic()
	if err := script.Seed(table); err != nil {
		log.Printf("Failed to seed oracle: %v", err)
		return 1
	}

	defs, err := chains.Load(cfg.Combo.ChainsFile, table)
	if err != nil {
		log.Printf("Failed to load chains: %v", err)
		return 1
	}
	for _, def := range defs {
		log.Printf("Loaded group %s", def)
	}

	player := oracle.NewPlayer()
	providerConfig := &services.ProviderConfig{
		Definitions:   defs,
		Oracle:        table,
		Player:        player,
		Settings:      cfg.Settings(),
		UUIDGenerator: uuid.NewSequenceGenerator("replay"),
	}

	redisClient := connectRedis(ctx, cfg)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
		providerConfig.RedisClient = redisClient
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Printf("Failed to create services: %v", err)
		return 1
	}

	if cfg.Combo.Verbose {
		provider.EventBus.Subscribe(events.EventTypeComboAdvanced, &events.ListenerFunc{
			Name:  "verbose-log",
			Order: events.PriorityLogging,
			Handler: func(e events.Event) error {
				advanced := e.(*events.ComboAdvancedEvent)
				log.Printf("Replay: %s moved group %d to slot %d", advanced.TriggerID, advanced.GroupID, advanced.To)
				return nil
			},
		})
	}

	if *resume {
		if err := provider.TrackerService.Resume(ctx); err != nil {
			log.Printf("Failed to resume progress: %v", err)
		return 1
		}
	}

	runner, err := replay.NewRunner(&replay.RunnerConfig{
		Service: provider.TrackerService,
		Oracle:  table,
		Player:  player,
		Output:  os.Stdout,
	})
	if err != nil {
		log.Printf("Failed to create runner: %v", err)
		return 1
	}

	report, err := runner.Run(ctx, script)
	if err != nil {
		log.Printf("Replay failed: %v", err)
		return 1
	}

	if *checkpoint {
		if err := provider.TrackerService.Checkpoint(ctx); err != nil {
			log.Printf("Failed to store progress: %v", err)
		}
	}

	if !report.Passed() {
		return 1
	}
	return 0
}

// connectRedis returns nil when Redis is not configured or unreachable
func connectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	opts, err := cfg.RedisOptions()
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		return nil
	}
	if opts == nil {
		log.Println("No REDIS_URL found, keeping progress in memory")
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory progress")
		_ = client.Close()
		return nil
	}

	log.Println("Using Redis for progress")
	return client
}
