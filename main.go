package main

import (
	"database/sql"
	"log"

	"github.com/nilotpaul/fanlift-auth/api"
	"github.com/nilotpaul/fanlift-auth/bootstrap"
	"github.com/nilotpaul/fanlift-auth/config"
	"github.com/nilotpaul/fanlift-auth/migrations"
)

func main() {
	// Loads all Env vars from .env file (if any) and the environment.
	env := config.MustLoadEnv()

	// Only the postgres user backend needs a DB.
	var db *sql.DB
	if bootstrap.NeedsDB(*env) {
		db = config.MustInitDB(env.DBURL)
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("error closing the database connection: %s", err)
			}
		}()

		// Run auto migrations in production.
		if env.IsProduction() {
			if err := migrations.Up(db); err != nil {
				log.Fatalf("failed to apply database migrations: %v", err)
			}
		}
	}

	auth, err := bootstrap.NewAuthService(*env, db)
	if err != nil {
		log.Fatalf("failed to initialize the auth service: %v", err)
	}

	s := api.NewAPIServer(env.Port, *env, auth)

	// All routes, handlers & middlewares are registered
	// in func Start().
	log.Fatal(s.Start())
}
