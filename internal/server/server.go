// Package server streams world frames to remote renderers over websocket.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeusync/spacedrift/internal/core/events/bus"
	"github.com/zeusync/spacedrift/internal/core/observability/log"
	"github.com/zeusync/spacedrift/internal/core/world"
	"github.com/zeusync/spacedrift/pkg/generic"
)

// FrameSource exposes the last completed frame.
type FrameSource interface {
	Frame() world.Frame
}

// Server broadcasts a FrameMessage to every connected client after each tick.
type Server struct {
	config Config
	logger log.Log

	// mu guards the fields below and orders client admission against Stop.
	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
	draining   bool
	events     bus.EventBus

	clients     sync.Map // map[string]*client
	clientCount int64    // atomic
	lastFrame   uint64   // atomic

	running int32 // atomic bool
	closed  int32 // atomic bool

	buffers *generic.Pool[*bytes.Buffer]
	sub     bus.Subscription

	workerGroup sync.WaitGroup
}

// Config holds server configuration
type Config struct {
	ListenAddr string
	// SendBuffer is the number of frames queued per client before it is dropped.
	SendBuffer   int
	MaxClients   int
	WriteTimeout time.Duration
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() Config {
	return Config{
		ListenAddr:   "127.0.0.1:8080",
		SendBuffer:   16,
		MaxClients:   256,
		WriteTimeout: 5 * time.Second,
	}
}

func (c Config) validate() error {
	if c.SendBuffer < 1 {
		return fmt.Errorf("%w: send buffer must be at least 1, got %d", ErrInvalidConfig, c.SendBuffer)
	}
	if c.MaxClients < 1 {
		return fmt.Errorf("%w: max clients must be at least 1, got %d", ErrInvalidConfig, c.MaxClients)
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("%w: write timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// NewServer creates a frame stream server.
func NewServer(config Config, logger log.Log) (*Server, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNop()
	}

	s := &Server{
		config: config,
		logger: logger.With(log.String("component", "server")),
		buffers: generic.NewPool(
			func() *bytes.Buffer { return new(bytes.Buffer) },
			func(b *bytes.Buffer) { b.Reset() },
		),
	}

	s.logger.Info("Server created",
		log.String("listen_addr", config.ListenAddr),
		log.Int("max_clients", config.MaxClients))

	return s, nil
}

// Handler serves /ws and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// Start starts the server
func (s *Server) Start(_ context.Context) error {
	if atomic.LoadInt32(&s.closed) == 1 {
		return ErrServerClosed
	}
	if !atomic.CompareAndSwapInt32(&s.running, 0, 1) {
		return ErrServerAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		atomic.StoreInt32(&s.running, 0)
		s.logger.Error("Failed to create listener", log.Error(err))
		return fmt.Errorf("%w: %w", ErrListenerFailed, err)
	}
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.mu.Lock()
	s.listener = ln
	s.httpServer = httpServer
	s.draining = false
	s.workerGroup.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.workerGroup.Done()
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", log.Error(err))
		}
	}()

	s.logger.Info("Server listening", log.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound address once the server is running.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.running, 1, 0) {
		return ErrServerNotRunning
	}

	s.logger.Info("Stopping server")

	s.mu.Lock()
	s.draining = true
	httpServer := s.httpServer
	s.mu.Unlock()

	err := httpServer.Shutdown(ctx)
	s.clients.Range(func(_, value any) bool {
		value.(*client).close()
		return true
	})
	s.workerGroup.Wait()

	s.logger.Info("Server stopped")
	return err
}

// Close closes the server and releases all resources
func (s *Server) Close() error {
	if !atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		return nil
	}

	if s.sub != nil {
		_ = s.sub.Cancel()
	}
	if atomic.LoadInt32(&s.running) == 1 {
		_ = s.Stop(context.Background())
	}

	s.logger.Info("Server closed")
	return nil
}

// Attach broadcasts the frame of every tick published on eventBus.
func (s *Server) Attach(eventBus bus.EventBus, frames FrameSource) error {
	sub, err := eventBus.Subscribe(world.EventTicked, func(event bus.Event) error {
		report, ok := event.Data().(world.TickReport)
		if !ok {
			return fmt.Errorf("%w: %T", ErrInvalidMessage, event.Data())
		}
		return s.Broadcast(NewFrameMessage(report, frames.Frame()))
	})
	if err != nil {
		return err
	}
	s.sub = sub
	s.mu.Lock()
	s.events = eventBus
	s.mu.Unlock()
	return nil
}

// accepting reports whether new clients may join.
func (s *Server) accepting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.draining && atomic.LoadInt32(&s.closed) == 0
}

// admit registers c and its write pump unless the server started draining.
func (s *Server) admit(c *client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draining || atomic.LoadInt32(&s.closed) == 1 {
		return false
	}
	s.workerGroup.Add(1)
	s.clients.Store(c.id, c)
	atomic.AddInt64(&s.clientCount, 1)
	return true
}

// Broadcast encodes msg once and queues it for every client.
// Clients whose queue is full are disconnected.
func (s *Server) Broadcast(msg FrameMessage) error {
	atomic.StoreUint64(&s.lastFrame, msg.Frame)
	if atomic.LoadInt64(&s.clientCount) == 0 {
		return nil
	}

	buf := s.buffers.Get()
	defer s.buffers.Put(buf)
	if err := json.NewEncoder(buf).Encode(msg); err != nil {
		return err
	}
	payload := bytes.Clone(bytes.TrimRight(buf.Bytes(), "\n"))

	s.clients.Range(func(_, value any) bool {
		c := value.(*client)
		if !c.enqueue(payload) {
			s.logger.Warn("Dropping slow client", log.String("client_id", c.id))
			c.close()
		}
		return true
	})
	return nil
}

// Clients returns the number of connected clients.
func (s *Server) Clients() int {
	return int(atomic.LoadInt64(&s.clientCount))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := map[string]any{
		"status":  "ok",
		"clients": s.Clients(),
		"frame":   atomic.LoadUint64(&s.lastFrame),
	}
	s.mu.Lock()
	events := s.events
	s.mu.Unlock()
	if events != nil {
		m := events.GetMetrics()
		body["events_published"] = m.Published
		body["event_errors"] = m.Errors
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
