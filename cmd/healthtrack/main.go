package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"healthtrack/internal/auth"
	"healthtrack/internal/config"
	"healthtrack/internal/db"
	"healthtrack/internal/graph"
	"healthtrack/internal/httpserver"
	"healthtrack/internal/logging"
	"healthtrack/internal/notify"
	"healthtrack/internal/records"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)

	ctx := context.Background()
	openCtx, cancelOpen := context.WithTimeout(ctx, 15*time.Second)
	stores, err := db.Open(openCtx, cfg.StoreURI, cfg.StoreDatabase)
	cancelOpen()
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stores.Close(closeCtx); err != nil {
			logger.Error("close store", "err", err)
		}
	}()
	logger.Info("store ready", "backend", stores.Backend)

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}
	authSvc := auth.NewService(stores.Users, tokens, logger, auth.Options{EnforceRoles: cfg.EnforceRoles})
	if cfg.UsersPath != "" {
		n, err := authSvc.SeedFromFile(ctx, cfg.UsersPath)
		if err != nil {
			log.Fatalf("seed users: %v", err)
		}
		logger.Info("seeded users", "created", n)
	}
	recordSvc := records.NewService(stores.Records, stores.Users, logger)

	schema, err := graph.NewSchema(&graph.Resolver{Auth: authSvc, Records: recordSvc})
	if err != nil {
		log.Fatalf("build graphql schema: %v", err)
	}
	hub := notify.NewHub()
	events := &notify.Handler{Hub: hub, Logger: logger}

	handler := httpserver.NewRouter(logger, authSvc, graph.NewHandler(&schema, logger), events, cfg.CORSOrigins)
	server := httpserver.New(cfg.HTTPAddr(), handler, logger)
	server.OnShutdown(hub.Close)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
