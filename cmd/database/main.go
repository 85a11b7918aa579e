package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alhDiallo2018/nextBiblio/internal/auth"
	"github.com/alhDiallo2018/nextBiblio/internal/mongodb"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)
	database := dbClient.Database(db.GetDatabaseName())

	indexes := flag.Bool("indexes", false, "create indexes in the database if they do not exist")
	resetIndexes := flag.Bool("reset", false, "delete the indexes and recreate them")
	deleteIndexes := flag.Bool("delete", false, "delete the indexes")
	superuser := flag.Bool("superuser", false, "create a superuser if it does not exist")

	flag.Parse()

	switch {
	case *indexes:
		if *deleteIndexes {
			if err := mongodb.DeleteAllIndexes(ctx, database); err != nil {
				log.Fatalf("Failed to delete indexes: %v", err)
			}
			fmt.Println("✅ All indexes deleted successfully!")
			return
		}

		if err := mongodb.CreateAllIndexes(ctx, database, *resetIndexes); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
		fmt.Println("✅ Indexes command ran successfully!")

	case *superuser:
		if err := createSuperuser(ctx, db); err != nil {
			log.Fatalf("Failed to create superuser: %v", err)
		}
		fmt.Println("✅ Superuser command ran successfully!")

	default:
		fmt.Println("No valid command specified.")
		flag.Usage()
	}
}

// createSuperuser inserts an administrative user from SUPERUSER_EMAIL and
// SUPERUSER_PASSWORD, skipping the insert when the email is already taken.
func createSuperuser(ctx context.Context, db *mongodb.DB) error {
	email := os.Getenv("SUPERUSER_EMAIL")
	password := os.Getenv("SUPERUSER_PASSWORD")
	if email == "" || password == "" {
		return fmt.Errorf("SUPERUSER_EMAIL and SUPERUSER_PASSWORD are required")
	}

	coll := db.Collection(mongodb.UsersCollection)

	count, err := coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("failed to check for existing superuser: %w", err)
	}
	if count > 0 {
		fmt.Printf("ℹ️  Superuser '%s' already exists, skipping...\n", email)
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash superuser password: %w", err)
	}

	now := time.Now()
	userDb := mongodb.UserDb{
		Id:           primitive.NewObjectID().Hex(),
		Email:        email,
		Username:     "admin",
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := coll.InsertOne(ctx, userDb); err != nil {
		return fmt.Errorf("failed to insert superuser: %w", err)
	}

	fmt.Printf("✅ Superuser '%s' created\n", email)
	return nil
}
