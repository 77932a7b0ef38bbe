package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"prestige-backend/internal/handlers"
	"prestige-backend/internal/middleware"
	"prestige-backend/internal/websocket"
)

func New(
	carsHandler *handlers.CarsHandler,
	bookingHandler *handlers.BookingHandler,
	adminHandler *handlers.AdminHandler,
	chatHandler *handlers.ChatHandler,
	wsHub *websocket.Hub,
	frontendURL string,
	chatRateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Chat rate limiter (per IP, per minute)
	chatLimiter := middleware.NewRateLimiter(chatRateLimit, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Catalog Routes ────
		r.Route("/cars", func(r chi.Router) {
			r.Get("/", carsHandler.List)
			r.Get("/{id}", carsHandler.Get)
		})

		// ──── Booking Routes ────
		r.Route("/booking", func(r chi.Router) {
			r.Get("/", bookingHandler.Current)
			r.Post("/", bookingHandler.Confirm)
			r.Delete("/", bookingHandler.Cancel)
			r.Post("/quote", bookingHandler.Quote)
			r.Put("/end-date", bookingHandler.ModifyEndDate)
		})

		// ──── Chat Routes ────
		r.Route("/chat", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(chatLimiter.Middleware)
				r.Post("/message", chatHandler.SendMessage)
			})
			r.Get("/transcript", chatHandler.Transcript)
			r.Delete("/transcript", chatHandler.ResetTranscript)
		})

		// ──── Admin Routes ────
		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", adminHandler.Stats)
			r.Get("/fleet-map", adminHandler.FleetMap)
			r.Put("/cars/{id}/status", adminHandler.SetCarStatus)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
