package platform

import (
	"fmt"
	"strconv"
	"strings"
)

// Process is a point-in-time view of a running process.
type Process struct {
	PID     int
	Cmdline []string
	Env     map[string]string
}

// NewProcess builds a Process from a raw argument vector and KEY=VALUE
// environment entries.
func NewProcess(pid int, cmdline, environ []string) *Process {
	return &Process{
		PID:     pid,
		Cmdline: cmdline,
		Env:     ParseEnviron(environ),
	}
}

// Cwd returns the working directory as recorded by the shell in PWD.
// It is empty when PWD is unset.
func (p *Process) Cwd() string {
	return p.Env["PWD"]
}

// ParseEnviron converts KEY=VALUE entries into a map. Later duplicates win;
// entries without '=' are dropped.
func ParseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// ParseIDList parses a comma-separated id list such as "0,3,4".
func ParseIDList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid id list %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// TabSession pairs a tab position with the session shown in it.
type TabSession struct {
	Tab     int
	Session int
}

// TabSessions maps every tab position to its session id, in tab order.
// With skipActive the tab showing the active session is left out.
func TabSessions(t Terminal, skipActive bool) ([]TabSession, error) {
	ids, err := t.SessionIDs()
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	active, err := t.ActiveSessionID()
	if err != nil {
		return nil, fmt.Errorf("active session: %w", err)
	}

	tabs := make([]TabSession, 0, len(ids))
	for tab := range ids {
		sid, err := t.SessionAtTab(tab)
		if err != nil {
			return nil, fmt.Errorf("session at tab %d: %w", tab, err)
		}
		if skipActive && sid == active {
			continue
		}
		tabs = append(tabs, TabSession{Tab: tab, Session: sid})
	}
	return tabs, nil
}
