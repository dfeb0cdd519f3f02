package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Drolfothesgnir/mdhtml/api"
	db "github.com/Drolfothesgnir/mdhtml/db/sqlc"
	"github.com/Drolfothesgnir/mdhtml/tmpstore"
	"github.com/Drolfothesgnir/mdhtml/util"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// json tag names in validation errors and the custom binding tags
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := api.RegisterValidators(v); err != nil {
			log.Fatal().Err(err).Msg("cannot register validators")
		}
	}

	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the database")
	}

	store := db.NewStore(conn)

	// idempotent, the schema changes only when a new version is added
	runDBMigration(config.MigrationURL, config.DBSource)

	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config, store)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func runDBMigration(migrationURL string, dbSource string) {
	mig, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

// RunGinServer starts the HTTP service and stops it once ctx is done.
// Without REDIS_ADDRESS every request is rendered from scratch.
func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
) {
	var cache tmpstore.Store
	if config.RedisAddress != "" {
		cache = tmpstore.NewStore(&config)
	} else {
		log.Warn().Msg("REDIS_ADDRESS is not set, render cache is disabled")
	}

	service, err := api.NewService(config, store, cache)
	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		store.Shutdown()
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

		err := service.Start()

		if err != nil {
			// http.ErrServerClosed is returned once the server begins shutting down
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)
		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		if cache != nil {
			if cerr := cache.Close(); cerr != nil {
				log.Error().Err(cerr).Msg("cannot close render cache")
			}
		}

		store.Shutdown()

		log.Info().Msg("HTTP server is stopped")

		return err
	})
}
