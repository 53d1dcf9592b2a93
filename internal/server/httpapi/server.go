// Package httpapi exposes the user and article services over a JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avolkovs/clippings/internal/logging"
	"github.com/avolkovs/clippings/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	users    *services.UserService
	articles *services.ArticleService
}

func NewServer(address string, l logging.Logger, us *services.UserService, as *services.ArticleService) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		users:    us,
		articles: as,
	}
}

// Handler assembles the route table and the middleware chain. Routes under
// bearer auth are wrapped with requireAuth; the rest are public.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/users/signup", s.handleSignup)
	mux.HandleFunc("POST /api/v1/users/login", s.handleLogin)
	mux.Handle("GET /api/v1/users/me", s.requireAuth(s.handleCurrentUser))
	mux.HandleFunc("GET /api/v1/users", s.handleListUsers)
	mux.HandleFunc("GET /api/v1/users/{id}", s.handleGetUser)
	mux.Handle("PUT /api/v1/users/{id}", s.requireAuth(s.handleUpdateUser))
	mux.Handle("DELETE /api/v1/users/{id}", s.requireAuth(s.handleDeleteUser))

	mux.HandleFunc("GET /api/v1/articles", s.handleListArticles)
	mux.HandleFunc("GET /api/v1/articles/{id}", s.handleGetArticle)
	mux.Handle("POST /api/v1/articles", s.requireAuth(s.handleCreateArticle))
	mux.Handle("PUT /api/v1/articles/{id}", s.requireAuth(s.handleUpdateArticle))
	mux.Handle("DELETE /api/v1/articles/{id}", s.requireAuth(s.handleDeleteArticle))

	var h http.Handler = mux
	h = s.logRequests(h)
	h = requestID(h)
	return h
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-stopped
	return nil
}
