package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"lines-be/pkg/database"
)

const usage = "Usage: go run ./cmd/migrate [up|drop|reset|status]"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	command := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ user_state table created")

	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("✅ user_state table dropped")

	case "reset":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ user_state table reset")

	case "status":
		if err := printStatus(ctx, conn); err != nil {
			log.Fatalf("Failed to read status: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println(usage)
		os.Exit(1)
	}
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	if _, err := conn.Exec(ctx, database.UserStateSchema); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	if _, err := conn.Exec(ctx, `DROP TABLE IF EXISTS user_state CASCADE`); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// printStatus lists how many keys each installation has persisted
func printStatus(ctx context.Context, conn *pgx.Conn) error {
	rows, err := conn.Query(ctx, `
		SELECT installation_id, COUNT(*), MAX(updated_at)
		FROM user_state
		GROUP BY installation_id
		ORDER BY installation_id`)
	if err != nil {
		return fmt.Errorf("failed to query user_state: %w", err)
	}
	defer rows.Close()

	found := 0
	for rows.Next() {
		var (
			installation string
			keys         int
			updatedAt    time.Time
		)
		if err := rows.Scan(&installation, &keys, &updatedAt); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
		fmt.Printf("  %-24s %d keys, last write %s\n", installation, keys, updatedAt.Format(time.RFC3339))
		found++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if found == 0 {
		fmt.Println("  no persisted user state")
	}
	return nil
}
