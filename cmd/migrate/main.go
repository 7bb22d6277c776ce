package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/eventura/eventura-backend/internal/config"
)

// Schema migration runner: migrate [-path dir] up|down|version|force <v>
func main() {
	var dir string
	flag.StringVar(&dir, "path", "migrations", "directory holding migration files")
	flag.Parse()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", dir), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("init migrations: %v", err)
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		return
	}

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migrate up: %v", err)
		}
		fmt.Println("schema is up to date")
	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Println("schema rolled back")
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("read version: %v", err)
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)
	case "force":
		if len(args) < 2 {
			log.Fatal("force needs a version argument")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("bad version %q: %v", args[1], err)
		}
		if err := m.Force(v); err != nil {
			log.Fatalf("force version: %v", err)
		}
		fmt.Printf("forced version to %d\n", v)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("usage: migrate [-path dir] <up|down|version|force <version>>")
	flag.PrintDefaults()
}
