/*
main.go - Application entry point

PURPOSE:
  Starts the lunch-engine server: one endpoint answering how much money
  the prepaid meal account needs before the next payday.

STARTUP SEQUENCE:
  1. Load configuration from the environment (.env honored)
  2. Validate it - invalid configuration is fatal here, never later
  3. Build holiday calendar, portal client, report service
  4. Start optional daily summary scheduler
  5. Serve HTTP with graceful shutdown

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop the scheduler
  2. Stop accepting new connections
  3. Wait for active requests to complete (30s timeout)
*/
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/lunch-engine/api"
	"github.com/warp/lunch-engine/calendar"
	"github.com/warp/lunch-engine/config"
	"github.com/warp/lunch-engine/portal"
	"github.com/warp/lunch-engine/report"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Holiday calendar: national holidays plus optional closure file.
	var cal calendar.Calendar = calendar.NationalCalendar{}
	if cfg.ClosuresFile != "" {
		closures, err := calendar.LoadClosures(cfg.ClosuresFile)
		if err != nil {
			log.Fatalf("Failed to load closures: %v", err)
		}
		cal = calendar.Composite{calendar.NationalCalendar{}, closures}
	}

	source, err := portal.New(cfg.PortalURL, cfg.PortalUsername, cfg.PortalPassword, cfg.PortalTimeout)
	if err != nil {
		log.Fatalf("Failed to create portal client: %v", err)
	}

	service := report.NewService(source, cal, cfg.PaymentDayOfMonth, cfg.PricePerMeal)

	scheduler := api.NewScheduler(service, cfg.DailySummaryCron)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	handler := api.NewHandler(service)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
