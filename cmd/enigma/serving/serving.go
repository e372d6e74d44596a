package serving

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/pkg/http/httpserver"
)

type Params struct {
	Name            string
	ListenAddr      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Handler         http.Handler
}

// Server is an http server bound to the application lifecycle.
// The app start blocks until it accepts connections, a premature exit shuts the app down.
type Server struct {
	mu   sync.RWMutex
	addr net.Addr
}

func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

func Bind(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	logger *zerolog.Logger,
	params Params,
) (*Server, error) {
	bound := &Server{}
	ready := make(chan struct{})
	log := logger.With().Str("server", params.Name).Logger()

	svr, err := httpserver.New(
		params.ListenAddr,
		httpserver.WithShutdownTimeout(params.ShutdownTimeout),
		httpserver.WithReadTimeout(params.ReadTimeout),
		httpserver.WithWriteTimeout(params.WriteTimeout),
		httpserver.WithHandler(params.Handler),
		httpserver.WithReadySignal(func(addr net.Addr) {
			bound.mu.Lock()
			bound.addr = addr
			bound.mu.Unlock()
			log.Info().Stringer("addr", addr).Msg("Ready to accept connections")
			close(ready)
		}),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to set up server")
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			failed := make(chan error, 1)
			go func() {
				serveErr := svr.ListenAndServe()
				if serveErr == nil {
					return
				}
				failed <- serveErr
				log.Warn().Err(serveErr).Msg("Server exited prematurely")
				if shutErr := shutdowner.Shutdown(); shutErr != nil {
					log.Error().Err(shutErr).Msg("Failed to handle premature server exit")
				}
			}()
			select {
			case <-ready:
				return nil
			case serveErr := <-failed:
				return serveErr
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		OnStop: func(ctx context.Context) error {
			if stopErr := svr.Stop(ctx); stopErr != nil {
				log.Error().Err(stopErr).Msg("Failed to stop server gracefully")
				return stopErr
			}
			log.Info().Msg("Server stopped")
			return nil
		},
	})

	return bound, nil
}
