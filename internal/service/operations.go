package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mj1618/yman/internal/session"
	"go.uber.org/zap"
)

// StoreSession snapshots the open tabs and saves them under name. With skip
// the active tab is left out. An existing record is never overwritten and
// the terminal is not touched in that case.
func (s *Service) StoreSession(ctx context.Context, name string, skip bool) (*StoreResult, error) {
	exists, err := s.store.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", session.ErrSessionExists, name)
	}

	s.log.Info("storing session", zap.String("name", name), zap.Bool("skip_current", skip))
	rec, err := s.snapshot(skip)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, name, rec); err != nil {
		return nil, err
	}

	return &StoreResult{
		OK:             true,
		Action:         "store",
		Name:           name,
		Path:           s.store.Path(name),
		Tabs:           len(rec.Tabs),
		SkippedCurrent: skip,
	}, nil
}

func (s *Service) snapshot(skip bool) (*session.Record, error) {
	p, err := s.backend()
	if err != nil {
		return nil, err
	}
	ambient, err := s.ambientEnv(p)
	if err != nil {
		return nil, err
	}
	snap := &session.Snapshotter{
		Terminal:   p.Terminal,
		Inspector:  p.Inspector,
		Ambient:    ambient,
		SelfName:   s.cfg.SelfName,
		ProbeDelay: s.cfg.ProbeDelay,
		Logger:     s.log,
	}
	return snap.Snapshot(skip)
}

// RestoreSession opens one new tab per stored tab and returns focus to the
// tab that was active before.
func (s *Service) RestoreSession(ctx context.Context, name string, clearAfter bool) (*RestoreResult, error) {
	rec, err := s.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	p, err := s.backend()
	if err != nil {
		return nil, err
	}

	s.log.Info("restoring session", zap.String("name", name), zap.Int("tabs", len(rec.Tabs)))
	replayer := &session.Replayer{
		Terminal:  p.Terminal,
		ChangeDir: s.cfg.CdCommand,
		Clear:     clearAfter,
		Logger:    s.log,
	}
	created, err := replayer.Replay(rec)
	if err != nil {
		return nil, err
	}

	return &RestoreResult{
		OK:       true,
		Action:   "restore",
		Name:     name,
		Tabs:     len(created),
		Sessions: created,
	}, nil
}

func (s *Service) ListSessions(ctx context.Context) (*ListResult, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListResult{Sessions: names}, nil
}

func (s *Service) ShowSession(ctx context.Context, name string) (*ShowResult, error) {
	rec, err := s.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return &ShowResult{Name: name, Path: s.store.Path(name), Tabs: rec.Ordered()}, nil
}

// RemoveSession deletes a record once confirm agrees. A missing record is
// reported before asking.
func (s *Service) RemoveSession(ctx context.Context, name string, confirm ConfirmFunc) (*RemoveResult, error) {
	exists, err := s.store.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", session.ErrSessionNotFound, name)
	}

	ok, err := confirm(fmt.Sprintf("Are you sure you want to remove session %s?", name))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAborted
	}

	if err := s.store.Delete(ctx, name); err != nil {
		return nil, err
	}
	s.log.Info("removed session", zap.String("name", name))
	return &RemoveResult{OK: true, Action: "remove", Name: name}, nil
}

// DiffSession snapshots the open tabs without saving them and compares them
// with the stored record. Idle shells receive the probe as during store.
func (s *Service) DiffSession(ctx context.Context, name string, skip bool) (*DiffResult, error) {
	stored, err := s.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	current, err := s.snapshot(skip)
	if err != nil {
		return nil, err
	}
	return &DiffResult{Name: name, Changes: session.DiffRecords(stored, current)}, nil
}

// CompleteNames returns stored names starting with prefix.
func (s *Service) CompleteNames(ctx context.Context, prefix string) []string {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil
	}
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}
