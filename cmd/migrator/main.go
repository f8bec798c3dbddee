package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/14kear/movie-voting/internal/config"
	"github.com/14kear/movie-voting/internal/repo/sqlstore"
	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	"log"
)

func main() {
	var (
		action     string
		steps      int
		configPath string
	)

	flag.StringVar(&action, "action", "up", "migration action: up, down, force, version")
	flag.IntVar(&steps, "steps", 0, "number of steps for up/down, target version for force")
	flag.StringVar(&configPath, "config", "config/local.yaml", "path to config file, empty for env only")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	storage, err := sqlstore.New(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}
	defer storage.Close()

	m, err := storage.Migrator()
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	switch action {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	case "force":
		err = m.Force(steps)
	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal(err)
		}
		fmt.Printf("Version: %d, Dirty: %v\n", version, dirty)
		return
	default:
		log.Fatalf("unknown action: %s", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}

	fmt.Println("Migration applied successfully")
}
