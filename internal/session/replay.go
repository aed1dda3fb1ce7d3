package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mj1618/yman/internal/platform"
	"github.com/mj1618/yman/internal/shell"
	"go.uber.org/zap"
)

// Replayer recreates stored tabs as new terminal sessions.
type Replayer struct {
	Terminal platform.Terminal

	// ChangeDir is the command used to enter a tab's directory.
	ChangeDir string

	// Clear wipes the setup lines once a tab is prepared.
	Clear bool

	Logger *zap.Logger
}

func (r *Replayer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Replay opens one session per tab in ascending index order and then raises
// the session that was active before, so focus does not move. It returns the
// new session ids in creation order, including a tab whose setup failed. A
// failure stops the replay and leaves already created tabs in place.
func (r *Replayer) Replay(rec *Record) ([]int, error) {
	active, err := r.Terminal.ActiveSessionID()
	if err != nil {
		return nil, fmt.Errorf("active session: %w", err)
	}

	created := make([]int, 0, len(rec.Tabs))
	for _, tab := range rec.Ordered() {
		id, err := r.StartTerminal(tab)
		if id >= 0 {
			created = append(created, id)
		}
		if err != nil {
			return created, fmt.Errorf("tab %d: %w", tab.Index, err)
		}
	}

	if err := r.Terminal.RaiseSession(active); err != nil {
		return created, fmt.Errorf("raise session %d: %w", active, err)
	}
	return created, nil
}

// StartTerminal opens a session and types the tab's setup into it. The id
// is -1 when no session could be opened.
func (r *Replayer) StartTerminal(tab Tab) (int, error) {
	id, err := r.Terminal.AddSession()
	if err != nil {
		return -1, fmt.Errorf("add session: %w", err)
	}
	log := r.logger().With(zap.Int("tab", tab.Index), zap.Int("session", id))

	if tab.Title != "" {
		if err := r.Terminal.SetTabTitle(id, tab.Title); err != nil {
			return id, fmt.Errorf("set title: %w", err)
		}
	}

	lines := r.SetupLines(tab)
	for _, line := range lines {
		if err := shell.Apply(r.Terminal, id, line); err != nil {
			return id, err
		}
	}
	log.Debug("started terminal", zap.String("title", tab.Title), zap.Int("lines", len(lines)))
	return id, nil
}

// SetupLines returns the shell lines that prepare a tab: directory, exports
// sorted by name, the command, then an optional clear. Variables whose names
// the shell cannot export are skipped.
func (r *Replayer) SetupLines(tab Tab) []string {
	var lines []string
	if tab.Dir != "" {
		lines = append(lines, shell.ChangeDir(r.ChangeDir, tab.Dir))
	}

	keys := make([]string, 0, len(tab.Env))
	for k := range tab.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line, err := shell.Export(k, tab.Env[k])
		if err != nil {
			r.logger().Warn("skipping variable", zap.String("key", k), zap.Error(err))
			continue
		}
		lines = append(lines, line)
	}

	if tab.HasCommand() {
		line := tab.CommandLine()
		if strings.ContainsAny(line, "\r\n") {
			r.logger().Warn("skipping command that spans lines", zap.Int("tab", tab.Index), zap.String("command", line))
		} else {
			lines = append(lines, line)
		}
	}
	if r.Clear {
		lines = append(lines, shell.ClearLine)
	}
	return lines
}
