package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout is used when NewDaemon gets a non-positive timeout
const DefaultShutdownTimeout = 10 * time.Second

// Daemon runs the HTTP API until it is stopped or the process is signalled
type Daemon struct {
	addr            string
	shutdownTimeout time.Duration
	logger          *zap.Logger
	ctx             context.Context
	cancel          context.CancelFunc
	ready           chan struct{}

	mu        sync.Mutex // protects the fields below
	server    *http.Server
	listener  net.Listener
	startedAt time.Time
	running   bool
}

// NewDaemon creates a new daemon listening on addr
func NewDaemon(addr string, shutdownTimeout time.Duration, logger *zap.Logger) *Daemon {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
		ready:           make(chan struct{}),
	}
}

// Start serves handler and blocks until Stop, SIGINT or SIGTERM, then shuts
// the server down gracefully. It returns an error if the listener cannot be
// opened or the server fails.
func (d *Daemon) Start(handler http.Handler) error {
	ln, err := net.Listen("tcp", d.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", d.addr, err)
	}

	d.mu.Lock()
	if d.server != nil {
		d.mu.Unlock()
		ln.Close()
		return errors.New("daemon already started")
	}
	d.server = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	d.listener = ln
	d.startedAt = time.Now()
	d.running = true
	server := d.server
	d.mu.Unlock()

	d.logger.Info("Daemon started", zap.String("addr", ln.Addr().String()))
	close(d.ready)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-d.ctx.Done():
		d.logger.Info("Stop requested, shutting down")

	case sig := <-sigChan:
		d.logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()))

	case err := <-serveErr:
		d.setStopped()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}

	return d.shutdown(server)
}

func (d *Daemon) shutdown(server *http.Server) error {
	defer d.setStopped()

	ctx, cancel := context.WithTimeout(context.Background(), d.shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		d.logger.Error("Graceful shutdown failed", zap.Error(err))
		return fmt.Errorf("failed to shut down: %w", err)
	}

	d.logger.Info("Daemon stopped",
		zap.Duration("uptime", time.Since(d.startedAt)))
	return nil
}

func (d *Daemon) setStopped() {
	d.mu.Lock()
	d.running = false
	d.mu.Unlock()
}

// Stop asks a running Start to shut down
func (d *Daemon) Stop() {
	d.cancel()
}

// Ready is closed once the listener is open
func (d *Daemon) Ready() <-chan struct{} {
	return d.ready
}

// Addr returns the bound address once listening, the configured one before
func (d *Daemon) Addr() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listener != nil {
		return d.listener.Addr().String()
	}
	return d.addr
}

// GetStatus returns daemon status
func (d *Daemon) GetStatus() map[string]interface{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := map[string]interface{}{
		"running": d.running,
		"addr":    d.addr,
	}
	if d.listener != nil {
		status["addr"] = d.listener.Addr().String()
	}
	if !d.startedAt.IsZero() {
		status["started_at"] = d.startedAt.UTC().Format(time.RFC3339)
		if d.running {
			status["uptime"] = time.Since(d.startedAt).Round(time.Second).String()
		}
	}

	return status
}
