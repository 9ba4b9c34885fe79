// Package site serves the Irtus Business advisory site: the marketing page,
// the AI pitch deck tool (HTML form and JSON API), health and metrics.
package site

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/irtus/advisory/internal/logging"
	"github.com/irtus/advisory/internal/metrics"
	"github.com/irtus/advisory/internal/venture"
)

//go:embed templates/page.html
var pageTemplate string

// DefaultShutdownTimeout bounds how long Serve waits for in-flight requests
// after its context is cancelled.
const DefaultShutdownTimeout = 10 * time.Second

// maxBodyBytes caps form and JSON request bodies.
const maxBodyBytes = 64 << 10

// Generator produces decks. *advisor.Advisor satisfies it.
type Generator interface {
	GenerateDeck(ctx context.Context, in venture.VentureInput) (*venture.GeneratedDeck, error)
	Submit(ctx context.Context, s *venture.Session) error
	Provider() string
}

// Server is the HTTP surface of the site.
type Server struct {
	gen     Generator
	metrics *metrics.Metrics
	content Content
	page    *template.Template
	mux     *http.ServeMux

	// lifetime ends in-flight generations when the server shuts down.
	// Client disconnects do not.
	lifetime context.Context

	ShutdownTimeout time.Duration
}

// NewServer builds a server around gen. m may be nil.
func NewServer(gen Generator, m *metrics.Metrics) (*Server, error) {
	page, err := template.New("page").Funcs(template.FuncMap{
		"slideNumber": func(i int) string { return fmt.Sprintf("%02d", i+1) },
		"deckJSON": func(d *venture.GeneratedDeck) (string, error) {
			b, err := json.Marshal(d)
			return string(b), err
		},
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	s := &Server{
		gen:             gen,
		metrics:         m,
		content:         DefaultContent(),
		page:            page,
		mux:             http.NewServeMux(),
		lifetime:        context.Background(),
		ShutdownTimeout: DefaultShutdownTimeout,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /ai-tools/generate", s.handleGenerate)
	s.mux.HandleFunc("POST /ai-tools/reset", s.handleReset)
	s.mux.HandleFunc("POST /ai-tools/download", s.handleDownload)
	s.mux.HandleFunc("POST /api/decks", s.handleAPIDecks)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", s.metrics.Handler())
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. Generations still running at that point are cancelled and
// answer with the generic failure.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.lifetime = ctx
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logging.Info(fmt.Sprintf("serving on http://%s", ln.Addr()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logging.Info("server stopped")
	return nil
}

// generationContext detaches a generation from the client connection while
// keeping it bound to the server's lifetime.
func (s *Server) generationContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	stop := context.AfterFunc(s.lifetime, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
