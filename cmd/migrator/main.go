package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var databaseURL, migrationsPath string

	flag.StringVar(&databaseURL, "db-url", os.Getenv("DATABASE_URL"), "postgres connection url")
	flag.StringVar(&migrationsPath, "migrations-path", "./migrations", "path to migrations")
	flag.Parse()

	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "db-url or DATABASE_URL is required")
		os.Exit(1)
	}

	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open migrations: %v\n", err)
		os.Exit(1)
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}
		fmt.Fprintf(os.Stderr, "apply migrations: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("migrations applied successfully")
}
