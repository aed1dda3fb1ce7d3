// Package service implements the yman operations shared by the command line
// and the MCP server: store, restore, list, show and remove.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mj1618/yman/internal/config"
	"github.com/mj1618/yman/internal/platform"
	"github.com/mj1618/yman/internal/session"
	"go.uber.org/zap"
)

// ErrAborted is returned when a confirmation is declined.
var ErrAborted = errors.New("aborted")

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

// Service runs yman operations against a session store and a terminal.
// It is not safe for concurrent use.
type Service struct {
	cfg   config.Config
	log   *zap.Logger
	store *session.Store

	// provider is created on first use so that operations which only touch
	// stored records work without a session bus.
	provider *platform.Provider

	// ambient is yman's own environment, the baseline for env diffs.
	ambient map[string]string
}

// Option configures a Service.
type Option func(*Service)

// WithProvider uses p instead of the registered platform backend.
func WithProvider(p *platform.Provider) Option {
	return func(s *Service) { s.provider = p }
}

// WithAmbient sets the baseline environment instead of reading it from
// the running process.
func WithAmbient(env map[string]string) Option {
	return func(s *Service) { s.ambient = env }
}

// New opens the session store named by cfg.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger, opts ...Option) (*Service, error) {
	store, err := session.NewStore(ctx, cfg.SessionsDir)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{cfg: cfg, log: logger, store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Store returns the underlying session store.
func (s *Service) Store() *session.Store {
	return s.store
}

// Config returns the configuration the service was built with.
func (s *Service) Config() config.Config {
	return s.cfg
}

// Close releases the platform backend if one was opened and flushes the
// logger.
func (s *Service) Close() error {
	_ = s.log.Sync()
	if s.provider == nil {
		return nil
	}
	err := s.provider.Close()
	s.provider = nil
	return err
}

func (s *Service) backend() (*platform.Provider, error) {
	if s.provider != nil {
		return s.provider, nil
	}
	p, err := platform.NewProvider(platform.Options{
		Service:   s.cfg.Service,
		ProcMount: s.cfg.ProcMount,
	})
	if err != nil {
		return nil, err
	}
	s.provider = p
	return p, nil
}

func (s *Service) ambientEnv(p *platform.Provider) (map[string]string, error) {
	if s.ambient != nil {
		return s.ambient, nil
	}
	self, err := p.Inspector.Inspect(os.Getpid())
	if err != nil {
		return nil, fmt.Errorf("read own environment: %w", err)
	}
	s.ambient = self.Env
	return s.ambient, nil
}
