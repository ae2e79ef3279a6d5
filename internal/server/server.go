// Package server exposes both adapters over HTTP so chat platforms that
// talk webhooks instead of in-process plugins can use them.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/eddiman/mariposa/internal/filter"
	"github.com/eddiman/mariposa/internal/model"
	"github.com/eddiman/mariposa/internal/pipe"
)

// Options for running the bridge server.
type Options struct {
	Verbose bool
}

type Server struct {
	filter *filter.Filter
	pipe   *pipe.Pipe
	opts   Options
}

func New(f *filter.Filter, p *pipe.Pipe, opts Options) *Server {
	return &Server{filter: f, pipe: p, opts: opts}
}

// InletResponse is the bridge payload for a filter turn: the rewritten body
// plus every status event emitted while handling it.
type InletResponse struct {
	Body   *model.ChatBody     `json:"body"`
	Events []model.StatusEvent `json:"events"`
}

// PipeResponse is the bridge payload for a pipe turn.
type PipeResponse struct {
	Response string `json:"response"`
}

// collectEmitter buffers status events for the HTTP response.
type collectEmitter struct {
	mu     sync.Mutex
	events []model.StatusEvent
}

func (c *collectEmitter) EmitStatus(_ context.Context, description string, done bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, model.StatusEvent{Description: description, Done: done})
}

// Handler returns the HTTP routes for mounting on a mux or in tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/filter/inlet", s.handleInlet)
	mux.HandleFunc("/v1/pipe", s.handlePipe)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

func (s *Server) handleInlet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var body model.ChatBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	emit := &collectEmitter{}
	out := s.filter.Inlet(r.Context(), &body, emit)
	if s.opts.Verbose {
		log.Printf("inlet: %d messages, %d events", len(out.Messages), len(emit.events))
	}
	writeJSON(w, InletResponse{Body: out, Events: emit.events})
}

func (s *Server) handlePipe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var body model.ChatBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	resp := s.pipe.Run(r.Context(), &body)
	writeJSON(w, PipeResponse{Response: resp})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding response", http.StatusInternalServerError)
	}
}

// Serve blocks while handling HTTP. Cancel ctx to initiate graceful
// shutdown; in-flight requests are allowed to drain.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(listener) }()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
