package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prestige-backend/internal/booking"
	"prestige-backend/internal/catalog"
	"prestige-backend/internal/config"
	"prestige-backend/internal/database"
	"prestige-backend/internal/handlers"
	"prestige-backend/internal/router"
	"prestige-backend/internal/services"
	"prestige-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting Prestige Rentals Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Redis (UI-signal pub/sub) ────
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	signalBus := database.NewSignalBus(redisClient)
	log.Println("✓ Redis connected")

	// ──── Step 3: Seed Fleet & Stores ────
	fleet := catalog.NewFleetStore(catalog.SeedFleet())
	bookings := booking.NewStore()
	log.Printf("✓ Fleet seeded (%d cars)", len(fleet.Cars()))

	// ──── Step 4: Initialize Gemini Assistant ────
	assistant, err := services.NewAssistantService(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer assistant.Close()
	log.Printf("✓ Gemini assistant initialized (%s)", cfg.GeminiModel)

	// ──── Initialize Services ────
	dispatcher := services.NewDispatcher(fleet, bookings, signalBus)
	rentalService := services.NewRentalService(fleet, bookings, signalBus)
	chatService := services.NewChatService(assistant, dispatcher, fleet, bookings)

	// ──── Initialize Handlers ────
	carsHandler := handlers.NewCarsHandler(fleet)
	bookingHandler := handlers.NewBookingHandler(rentalService)
	adminHandler := handlers.NewAdminHandler(fleet, bookings, signalBus)
	chatHandler := handlers.NewChatHandler(chatService)

	// ──── Step 5: Start WebSocket Hub ────
	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	wsHub := websocket.NewHub(signalBus)
	go wsHub.Run(hubCtx)
	log.Println("✓ WebSocket hub started")

	// ──── Step 6: Start HTTP Server ────
	r := router.New(
		carsHandler,
		bookingHandler,
		adminHandler,
		chatHandler,
		wsHub,
		cfg.FrontendURL,
		cfg.ChatRateLimit,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // assistant exchanges can take a while
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		hubCancel()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Prestige Rentals Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
