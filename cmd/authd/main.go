package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/gabrie-lhilarion/authd"
	fiberadapter "github.com/gabrie-lhilarion/authd/adapters/fiber"
	"github.com/gabrie-lhilarion/authd/adapters/memory"
	pgxadapter "github.com/gabrie-lhilarion/authd/adapters/pgx"
	"github.com/gabrie-lhilarion/authd/pkg/logredact"
)

func main() {
	app := &cli.App{
		Name:  "authd",
		Usage: "Session-based user authentication service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":5000",
				Usage:   "listen address",
				EnvVars: []string{"AUTHD_ADDR"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "PostgreSQL connection string; uses an in-memory store when empty",
				EnvVars: []string{"AUTHD_DATABASE_URL"},
			},
			&cli.StringSliceFlag{
				Name:  "redact",
				Value: cli.NewStringSlice("password", "new_password", "reset_token", "session_id"),
				Usage: "log field names whose values are redacted",
			},
		},
		Action: serve,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}

func serve(c *cli.Context) error {
	logger := zerolog.New(logredact.NewWriter(os.Stderr, c.StringSlice("redact")...)).
		With().Timestamp().Logger()
	log.Logger = logger

	store, cleanup, err := openStore(c.Context, c.String("database-url"), logger)
	if err != nil {
		return err
	}
	defer cleanup()

	auth, err := authd.New(authd.Config{Store: store})
	if err != nil {
		return err
	}

	app := fiber.New()
	fiberadapter.New(auth).Register(app)

	go func() {
		<-c.Context.Done()
		_ = app.Shutdown()
	}()

	logger.Info().Str("addr", c.String("addr")).Msg("listening")
	return app.Listen(c.String("addr"))
}

func openStore(ctx context.Context, databaseURL string, logger zerolog.Logger) (authd.CredentialStore, func(), error) {
	if databaseURL == "" {
		logger.Warn().Msg("no database-url configured, user rows will not survive a restart")
		return memory.New(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}

	adapter := pgxadapter.New(pool)
	if err := adapter.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return adapter, pool.Close, nil
}
