package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadilmartias/resume-reviewer/internal/config"
	"github.com/fadilmartias/resume-reviewer/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	generationConfig := config.LoadGenerationConfig()

	generator, err := service.NewContentGenerator(context.Background(), generationConfig.Provider)
	if err != nil {
		log.Fatal(err)
	}

	app := newServer(appConfig, config.LoadUploadConfig(), generationConfig, generator)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Server running on %s using %s", appConfig.Port, generator.Name())
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}
