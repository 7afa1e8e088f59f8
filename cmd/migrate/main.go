package main

import (
	"flag"
	"fmt"

	"whatabook/db"
	"whatabook/internal/app"
	"whatabook/internal/sqlstore"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		command    = flag.String("command", "up", "Migration command: up, down, status, create")
		name       = flag.String("name", "", "Name for 'create' command")
		configPath = flag.String("config", "", "Settings file (default $WHATABOOK_CONFIG or ./config.yaml)")
		verbose    = flag.Bool("verbose", false, "Also write logs to stderr")
	)
	flag.Parse()

	env, err := app.Setup(*configPath, *verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}
	defer env.Close()

	goose.SetLogger(gooseLogger{})
	driver := env.Settings.Connection.Driver

	if *command == "create" {
		if *name == "" {
			log.Fatal().Msg("Name is required for 'create' command")
		}
		dir := migrationsDir(driver)
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			log.Fatal().Err(err).Msg("Failed to create migration")
		}
		fmt.Printf("Migration created in %s: %s\n", dir, *name)
		return
	}

	provider, err := sqlstore.Open(env.Settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer provider.Close()

	dir, err := db.Prepare(driver)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare migrations")
	}

	if err := run(*command, provider, dir); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg(sqlstore.Describe(err))
	}
}

func run(command string, provider *sqlstore.Provider, dir string) error {
	switch command {
	case "up":
		if err := goose.Up(provider.DB(), dir); err != nil {
			return err
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(provider.DB(), dir); err != nil {
			return err
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		return goose.Status(provider.DB(), dir)
	default:
		return fmt.Errorf("unknown command: %s. Use: up, down, status, create", command)
	}
	return nil
}
