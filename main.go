package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"go-lifelink/assistant"
	"go-lifelink/catalog"
	"go-lifelink/cronjobs"
	"go-lifelink/geoprobe"
	"go-lifelink/routes"
	"go-lifelink/session"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from the environment")
	}

	// Print and check env
	if os.Getenv("OPENAI_API_KEY") != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}
	if os.Getenv("MAPS_CREDENTIALS") != "" {
		fmt.Println("MAPS_CREDENTIALS loaded")
	}

	cfg := session.Config{}
	if raw := os.Getenv("COLLABORATOR_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid COLLABORATOR_TIMEOUT_SECONDS: %v", err)
		}
		cfg.CollaboratorTimeout = time.Duration(secs) * time.Second
	}

	deps := session.Deps{
		Searcher:  catalog.NewService(400 * time.Millisecond),
		Locator:   geoprobe.MapsLocator{},
		Responder: assistant.NewOpenAIResponder(),
	}

	manager := session.NewManager(cfg, deps)

	// Initialize cron jobs
	cronjobs.InitCronJobs(manager)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(manager)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
