package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bookcatalog/internal/author"
	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/platform/postgres"
	"bookcatalog/internal/publisher"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := postgres.Open(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("cannot open database (%s): %v", postgres.RedactDSN(cfg.Database.DSN), err)
	}
	defer dbPool.Close()
	log.Println("database connection OK")

	timeout := cfg.Database.QueryTimeout
	authorService := author.NewService(author.NewPostgresRepo(dbPool, timeout))
	publisherService := publisher.NewService(publisher.NewPostgresRepo(dbPool, timeout))
	bookService := book.NewService(book.NewPostgresRepo(dbPool, timeout))

	router := newRouter(handlers{
		authors:    author.NewHTTPHandler(authorService),
		publishers: publisher.NewHTTPHandler(publisherService),
		books:      book.NewHTTPHandler(bookService),
	}, dbPool)

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	handler := withMiddleware(router, cfg, rateLimiter)

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case <-ctx.Done():
		log.Println("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: error=%v", err)
	}
}
