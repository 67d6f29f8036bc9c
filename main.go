package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/gauntlet-bot/app"
	"github.com/Black-And-White-Club/gauntlet-bot/config"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	// Graceful shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		log.Println("Shutting down application...")
		cancel()
	}()

	if err := application.Run(ctx); err != nil {
		log.Printf("Application error: %v", err)
	}

	if err := application.Close(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Application shut down gracefully.")
}
