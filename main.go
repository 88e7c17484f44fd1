package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"batepapo/cleanup"
	"batepapo/database"
	"batepapo/handlers"
	"batepapo/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting chat room backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Println("MONGO_URI not set, using default localhost")
		uri = "mongodb://127.0.0.1:27017"
	}

	// Connect before the listener starts so no request ever races an
	// unready store.
	store, err := database.Connect(context.Background(), uri)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(handlers.New(store))

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go cleanup.New(store).Run(sweepCtx)

	server := &http.Server{
		Addr:         ":5000",
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("Server running on port 5000")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}
	if err := store.Disconnect(context.Background()); err != nil {
		log.Println("MongoDB disconnect: ", err)
	}

	log.Println("Server stopped")
}
