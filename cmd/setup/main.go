package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/fabworks/contentbridge/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	target, err := url.Parse(connString)
	if err != nil {
		log.Fatalf("Invalid DATABASE_URL: %v", err)
	}
	dbName := strings.TrimPrefix(target.Path, "/")
	if dbName == "" {
		log.Fatal("DATABASE_URL must name a database")
	}

	// 1. Connect to the default 'postgres' database to create the new database
	admin := *target
	admin.Path = "/postgres"
	conn, err := pgx.Connect(context.Background(), admin.String())
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}
	defer conn.Close(context.Background())

	// 2. Check if database exists
	var exists bool
	err = conn.QueryRow(context.Background(), "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", dbName)
		_, err = conn.Exec(context.Background(), "CREATE DATABASE "+pgx.Identifier{dbName}.Sanitize())
		if err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", dbName)
	}

	// Close connection to postgres db
	conn.Close(context.Background())

	// 3. Apply migrations to the target database
	fmt.Println("Running migrations...")
	if err := database.Migrate(context.Background(), connString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	fmt.Println("Setup complete.")
}
