package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 10
	defaultReadTimeout     = time.Second * 5
	defaultWriteTimeout    = time.Second * 5
)

var (
	ErrNotListening    = errors.New("http server: not listening")
	ErrAlreadyListened = errors.New("http server: already listened")
)

type settings struct {
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	handler         http.Handler
	onReady         func(net.Addr)
}

type Option func(*settings)

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.readTimeout = timeout
		}
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.writeTimeout = timeout
		}
	}
}

func WithHandler(handler http.Handler) Option {
	return func(s *settings) {
		s.handler = handler
	}
}

// WithReadySignal registers a callback invoked with the bound address
// once the server is able to accept connections.
func WithReadySignal(cb func(net.Addr)) Option {
	return func(s *settings) {
		s.onReady = cb
	}
}

type HTTPServer struct {
	addr     string
	settings settings
	server   *http.Server

	mu       sync.Mutex
	listener net.Listener
	stopOnce sync.Once
	stopped  chan struct{}
}

func New(addr string, opts ...Option) (*HTTPServer, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, fmt.Errorf("http server: invalid address %q: %w", addr, err)
	}
	s := settings{
		readTimeout:     defaultReadTimeout,
		writeTimeout:    defaultWriteTimeout,
		shutdownTimeout: defaultShutdownTimeout,
		handler:         http.NotFoundHandler(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &HTTPServer{
		addr:     addr,
		settings: s,
		server: &http.Server{
			Handler:           s.handler,
			ReadTimeout:       s.readTimeout,
			ReadHeaderTimeout: s.readTimeout,
			WriteTimeout:      s.writeTimeout,
		},
		stopped: make(chan struct{}),
	}, nil
}

// ListenAndServe binds the address and blocks until the server is stopped or fails.
// A graceful stop is not reported as an error.
func (s *HTTPServer) ListenAndServe() error {
	s.mu.Lock()
	if s.listener != nil {
		s.mu.Unlock()
		return ErrAlreadyListened
	}
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("http server: listen %s: %w", s.addr, err)
	}
	s.listener = listener
	s.mu.Unlock()

	if s.settings.onReady != nil {
		s.settings.onReady(listener.Addr())
	}

	fatal := make(chan error, 1)
	go func() {
		fatal <- s.server.Serve(listener)
	}()

	select {
	case err := <-fatal:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.stopped:
		return nil
	}
}

func (s *HTTPServer) ListenAddr() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil, ErrNotListening
	}
	return s.listener.Addr(), nil
}

// Stop gracefully shuts the server down. Calling it more than once is a no-op.
func (s *HTTPServer) Stop(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		close(s.stopped)
		stopCtx, cancel := context.WithTimeout(ctx, s.settings.shutdownTimeout)
		defer cancel()
		if shutErr := s.server.Shutdown(stopCtx); shutErr != nil {
			err = fmt.Errorf("http server: shutdown %s: %w", s.addr, shutErr)
		}
	})
	return err
}
