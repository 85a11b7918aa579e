package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
	"github.com/alhDiallo2018/nextBiblio/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx := context.Background()
	client, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := mongodb.NewDB(client)

	port := server.Port()
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server.NewServer(db, secret),
	}

	log.Printf("Server is running on port %s", port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
