package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fabworks/contentbridge/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	dbPool, err := database.NewPool(context.Background(), database.PoolConfig{URL: connString})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump configurations
	fmt.Println("--- Configurations ---")
	rows, err := dbPool.Query(ctx, "SELECT name, created_at FROM configurations ORDER BY name")
	if err != nil {
		log.Printf("Failed to query configurations: %v", err)
	} else {
		for rows.Next() {
			var name string
			var createdAt time.Time
			if err := rows.Scan(&name, &createdAt); err != nil {
				log.Printf("Failed to scan configuration: %v", err)
				continue
			}
			fmt.Printf("  %s (created %s)\n", name, createdAt.Format(time.RFC3339))
		}
		rows.Close()
	}

	// Dump lookup counts per category
	fmt.Println("--- Lookup Entries ---")
	rows, err = dbPool.Query(ctx, `
		SELECT configuration_name, category, COUNT(*)
		FROM lookup_entries
		GROUP BY configuration_name, category
		ORDER BY configuration_name, category
	`)
	if err != nil {
		log.Printf("Failed to query lookup entries: %v", err)
	} else {
		for rows.Next() {
			var configName, category string
			var count int
			if err := rows.Scan(&configName, &category, &count); err != nil {
				log.Printf("Failed to scan lookup row: %v", err)
				continue
			}
			fmt.Printf("  %s / %s: %d\n", configName, category, count)
		}
		rows.Close()
	}

	// Dump supplier groups with their price lists
	fmt.Println("--- Supplier Groups ---")
	rows, err = dbPool.Query(ctx, `
		SELECT sg.configuration_name, sg.group_name, COUNT(pl.price_list_name)
		FROM supplier_groups sg
		LEFT JOIN price_lists pl
		  ON pl.configuration_name = sg.configuration_name
		 AND pl.group_name = sg.group_name
		GROUP BY sg.configuration_name, sg.group_name, sg.position
		ORDER BY sg.configuration_name, sg.position
	`)
	if err != nil {
		log.Printf("Failed to query supplier groups: %v", err)
	} else {
		for rows.Next() {
			var configName, groupName string
			var priceLists int
			if err := rows.Scan(&configName, &groupName, &priceLists); err != nil {
				log.Printf("Failed to scan supplier group: %v", err)
				continue
			}
			fmt.Printf("  %s / %s: %d price lists\n", configName, groupName, priceLists)
		}
		rows.Close()
	}

	// Dump content items
	fmt.Println("--- Content Items ---")
	rows, err = dbPool.Query(ctx, `
		SELECT configuration_name, cid, database_id, is_product_list, payload_digest
		FROM content_items
		ORDER BY configuration_name, cid
	`)
	if err != nil {
		log.Printf("Failed to query content items: %v", err)
	} else {
		for rows.Next() {
			var configName, databaseID, digest string
			var cid int
			var isProductList bool
			if err := rows.Scan(&configName, &cid, &databaseID, &isProductList, &digest); err != nil {
				log.Printf("Failed to scan content item: %v", err)
				continue
			}
			kind := "item"
			if isProductList {
				kind = "product list"
			}
			fmt.Printf("  %s / cid=%d id=%s (%s) digest=%.12s\n", configName, cid, databaseID, kind, digest)
		}
		rows.Close()
	}

	// Dump saved bindings
	fmt.Println("--- Item Bindings ---")
	rows, err = dbPool.Query(ctx, `
		SELECT configuration_name, item_path, updated_at
		FROM item_bindings
		ORDER BY configuration_name, item_path
	`)
	if err != nil {
		log.Printf("Failed to query item bindings: %v", err)
	} else {
		for rows.Next() {
			var configName, itemPath string
			var updatedAt time.Time
			if err := rows.Scan(&configName, &itemPath, &updatedAt); err != nil {
				log.Printf("Failed to scan item binding: %v", err)
				continue
			}
			fmt.Printf("  %s / %s (updated %s)\n", configName, itemPath, updatedAt.Format(time.RFC3339))
		}
		rows.Close()
	}
}
