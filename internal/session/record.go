// Package session captures, persists and replays terminal tab layouts.
package session

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mj1618/yman/internal/shell"
)

// Record is a stored snapshot of terminal tabs.
type Record struct {
	Tabs []Tab `json:"tabs" yaml:"tabs"`
}

// Tab is one captured terminal tab.
type Tab struct {
	Title   string            `json:"title"   yaml:"title"`
	Dir     string            `json:"dir"     yaml:"dir"`
	Index   int               `json:"index"   yaml:"index"`
	Command Command           `json:"command" yaml:"command"`
	Env     map[string]string `json:"env"     yaml:"env"`

	// Line is a shell line stored as a plain string by older records. It is
	// replayed verbatim instead of Command.
	Line string `json:"-" yaml:"line,omitempty"`
}

// UnmarshalJSON accepts "command" as an array of strings or, in older
// records, a single shell line.
func (t *Tab) UnmarshalJSON(data []byte) error {
	type plain Tab
	var raw struct {
		plain
		Command json.RawMessage `json:"command"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Tab(raw.plain)

	if len(raw.Command) == 0 || string(raw.Command) == "null" {
		return nil
	}
	var line string
	if err := json.Unmarshal(raw.Command, &line); err == nil {
		t.Line = strings.TrimSpace(line)
		return nil
	}
	if err := json.Unmarshal(raw.Command, &t.Command); err != nil {
		return fmt.Errorf("command must be a string or an array of strings: %s", raw.Command)
	}
	return nil
}

// MarshalJSON writes a raw Line back as a string command.
func (t Tab) MarshalJSON() ([]byte, error) {
	type plain Tab
	if t.Line == "" {
		return json.Marshal(plain(t))
	}
	return json.Marshal(struct {
		plain
		Command string `json:"command"`
	}{plain(t), t.Line})
}

// HasCommand reports whether replaying the tab runs anything.
func (t Tab) HasCommand() bool {
	return t.Line != "" || !t.Command.Empty()
}

// CommandLine returns the line that starts the tab's command.
func (t Tab) CommandLine() string {
	if t.Line != "" {
		return t.Line
	}
	return shell.Join(t.Command)
}

// Ordered returns the tabs sorted by their original position. Tabs sharing
// an index keep their stored order.
func (r *Record) Ordered() []Tab {
	tabs := make([]Tab, len(r.Tabs))
	copy(tabs, r.Tabs)
	sort.SliceStable(tabs, func(i, j int) bool { return tabs[i].Index < tabs[j].Index })
	return tabs
}

// Command is the argument vector running in a tab. Empty means the tab only
// had a shell.
type Command []string

// MarshalJSON writes an empty command as [] rather than null.
func (c Command) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(c))
}

// Empty reports whether there is nothing to run.
func (c Command) Empty() bool {
	return len(c) == 0
}

func decodeRecord(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	for i := range rec.Tabs {
		if rec.Tabs[i].Env == nil {
			rec.Tabs[i].Env = map[string]string{}
		}
	}
	return &rec, nil
}

func encodeRecord(rec *Record) ([]byte, error) {
	out := Record{Tabs: make([]Tab, len(rec.Tabs))}
	for i, tab := range rec.Tabs {
		if tab.Env == nil {
			tab.Env = map[string]string{}
		}
		out.Tabs[i] = tab
	}
	if out.Tabs == nil {
		out.Tabs = []Tab{}
	}
	return json.Marshal(out)
}
