package main

import (
	"context"
	"net/http"
	"time"

	"bookcatalog/api"
	"bookcatalog/internal/author"
	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/publisher"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type handlers struct {
	authors    *author.HTTPHandler
	publishers *publisher.HTTPHandler
	books      *book.HTTPHandler
}

func newRouter(h handlers, db pinger) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/openapi", http.StatusFound)
	})
	router.HandleFunc("GET /openapi", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.OpenAPI)
	})

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /autor", h.authors.Add)
	router.HandleFunc("GET /autores", h.authors.List)

	router.HandleFunc("POST /editora", h.publishers.Add)
	router.HandleFunc("GET /editoras", h.publishers.List)

	router.HandleFunc("POST /livro", h.books.Add)
	router.HandleFunc("GET /livro", h.books.Find)
	router.HandleFunc("DELETE /livro", h.books.Delete)
	router.HandleFunc("GET /livros", h.books.List)

	return router
}

// withMiddleware wraps h in the server's middleware stack. Recovery runs
// inside the request ID and access log middlewares.
func withMiddleware(h http.Handler, cfg *config.Config, rateLimiter *httpx.RateLimitMiddleware) http.Handler {
	return httpx.Chain(h,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.HTTP.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORS.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.HTTP.MaxBodyBytes),
		rateLimiter.Middleware,
	)
}
