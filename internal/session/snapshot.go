package session

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mj1618/yman/internal/platform"
	"github.com/mj1618/yman/internal/shell"
	"go.uber.org/zap"
)

// DefaultProbeDelay is how long to wait for the probe command to start.
const DefaultProbeDelay = 50 * time.Millisecond

// DefaultSelfName is the suffix identifying yman's own process.
const DefaultSelfName = "yman"

// Snapshotter captures the open tabs of a terminal.
type Snapshotter struct {
	Terminal  platform.Terminal
	Inspector platform.Inspector

	// Ambient is the capturing process's own environment. Variables present
	// here are not recorded.
	Ambient map[string]string

	// SelfName identifies yman's own process in a tab.
	SelfName string

	// ProbeDelay is the wait after starting the probe in an idle shell.
	ProbeDelay time.Duration

	Logger *zap.Logger
}

func (s *Snapshotter) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Snapshot captures every tab, leaving out the active one when skipActive
// is set. Any failure aborts the whole capture.
func (s *Snapshotter) Snapshot(skipActive bool) (*Record, error) {
	tabs, err := platform.TabSessions(s.Terminal, skipActive)
	if err != nil {
		return nil, err
	}

	rec := &Record{Tabs: make([]Tab, 0, len(tabs))}
	for _, ts := range tabs {
		tab, err := s.captureTab(ts)
		if err != nil {
			return nil, fmt.Errorf("tab %d: %w", ts.Tab, err)
		}
		rec.Tabs = append(rec.Tabs, tab)
	}
	return rec, nil
}

func (s *Snapshotter) captureTab(ts platform.TabSession) (Tab, error) {
	log := s.logger().With(zap.Int("tab", ts.Tab), zap.Int("session", ts.Session))

	title, err := s.Terminal.TabTitle(ts.Session)
	if err != nil {
		return Tab{}, fmt.Errorf("title: %w", err)
	}
	leader, err := s.Terminal.ProcessID(ts.Session)
	if err != nil {
		return Tab{}, fmt.Errorf("process id: %w", err)
	}
	fg, err := s.Terminal.ForegroundProcessID(ts.Session)
	if err != nil {
		return Tab{}, fmt.Errorf("foreground process id: %w", err)
	}

	noCommand := false
	if fg == leader {
		// An idle shell's own environment is not exported; a child started
		// from it inherits the exported variables and PWD.
		log.Debug("idle shell, starting probe", zap.Int("pid", leader))
		if err := shell.Apply(s.Terminal, ts.Session, shell.ProbeLine); err != nil {
			return Tab{}, err
		}
		time.Sleep(s.ProbeDelay)
		if fg, err = s.Terminal.ForegroundProcessID(ts.Session); err != nil {
			return Tab{}, fmt.Errorf("foreground process id: %w", err)
		}
		noCommand = true
	}

	proc, err := s.Inspector.Inspect(fg)
	if err != nil {
		return Tab{}, err
	}

	if IsSelf(proc.Cmdline, s.selfName()) {
		log.Debug("tab runs yman, dropping command", zap.Strings("cmdline", proc.Cmdline))
		noCommand = true
	}

	tab := Tab{
		Title: title,
		Dir:   proc.Cwd(),
		Index: ts.Tab,
		Env:   DiffEnv(s.Ambient, proc.Env),
	}
	if !noCommand {
		tab.Command = Command(proc.Cmdline)
	}
	log.Debug("captured tab",
		zap.String("title", tab.Title),
		zap.String("dir", tab.Dir),
		zap.Strings("command", tab.Command),
		zap.Int("env", len(tab.Env)))
	return tab, nil
}

func (s *Snapshotter) selfName() string {
	if s.SelfName == "" {
		return DefaultSelfName
	}
	return s.SelfName
}

// IsSelf reports whether cmdline looks like a yman invocation: the script
// argument of an interpreter (cmdline[1]) or the binary itself (cmdline[0])
// ends in name. This is a heuristic and can miss renamed or wrapped binaries.
func IsSelf(cmdline []string, name string) bool {
	if name == "" {
		return false
	}
	if len(cmdline) > 1 && strings.HasSuffix(cmdline[1], name) {
		return true
	}
	return len(cmdline) > 0 && filepath.Base(cmdline[0]) == name
}
