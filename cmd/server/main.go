package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fintrack/fintrack/infra"
	accountrepo "github.com/fintrack/fintrack/infra/repository/account"
	currencyrepo "github.com/fintrack/fintrack/infra/repository/currency"
	userrepo "github.com/fintrack/fintrack/infra/repository/user"
	"github.com/fintrack/fintrack/pkg/config"
	"github.com/fintrack/fintrack/pkg/password"
	accountsvc "github.com/fintrack/fintrack/pkg/service/account"
	authsvc "github.com/fintrack/fintrack/pkg/service/auth"
	currencysvc "github.com/fintrack/fintrack/pkg/service/currency"
	"github.com/fintrack/fintrack/pkg/token"
	"github.com/fintrack/fintrack/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	users := userrepo.New(db)
	accounts := accountrepo.New(db)
	currencies := currencyrepo.New(db)

	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	tokens := token.New(cfg.Auth.Jwt)

	app := webapi.New(webapi.Deps{
		Cfg:         cfg,
		AuthSvc:     authsvc.New(users, hasher, tokens, logger),
		AccountSvc:  accountsvc.New(accounts, currencies, logger),
		CurrencySvc: currencysvc.New(currencies, logger),
		Logger:      logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}

func newLogger(cfg *config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
