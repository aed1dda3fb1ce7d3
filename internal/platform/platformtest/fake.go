// Package platformtest provides in-memory platform backends for tests.
package platformtest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mj1618/yman/internal/platform"
)

// Call records one invocation on a Terminal.
type Call struct {
	Method  string
	Session int
	Arg     string
}

func (c Call) String() string {
	if c.Arg == "" {
		return fmt.Sprintf("%s(%d)", c.Method, c.Session)
	}
	return fmt.Sprintf("%s(%d, %q)", c.Method, c.Session, c.Arg)
}

// Terminal is a scripted platform.Terminal. Tabs lists session ids in tab
// order. Read-only queries are not recorded in Calls.
type Terminal struct {
	Tabs       []int
	Active     int
	Titles     map[int]string
	Leader     map[int]int
	Foreground map[int]int

	// ProbePID is the foreground pid a session reports after it receives
	// the "sleep 1" probe.
	ProbePID map[int]int

	// NextID is the id handed out by the next AddSession.
	NextID int

	// Errs makes the named method fail.
	Errs map[string]error

	Calls []Call

	// Closed counts Close calls.
	Closed int
}

var _ platform.Terminal = (*Terminal)(nil)

// NewTerminal returns a terminal with the given tabs, the first one active.
func NewTerminal(tabs ...int) *Terminal {
	t := &Terminal{
		Tabs:       tabs,
		Titles:     map[int]string{},
		Leader:     map[int]int{},
		Foreground: map[int]int{},
		ProbePID:   map[int]int{},
		Errs:       map[string]error{},
	}
	if len(tabs) > 0 {
		t.Active = tabs[0]
	}
	for _, id := range tabs {
		if id >= t.NextID {
			t.NextID = id + 1
		}
	}
	return t
}

func (t *Terminal) fail(method string) error {
	if err, ok := t.Errs[method]; ok {
		return err
	}
	return nil
}

func (t *Terminal) record(method string, session int, arg string) {
	t.Calls = append(t.Calls, Call{Method: method, Session: session, Arg: arg})
}

func (t *Terminal) has(session int) bool {
	for _, id := range t.Tabs {
		if id == session {
			return true
		}
	}
	return false
}

func (t *Terminal) SessionIDs() ([]int, error) {
	if err := t.fail("SessionIDs"); err != nil {
		return nil, err
	}
	ids := append([]int(nil), t.Tabs...)
	sort.Ints(ids)
	return ids, nil
}

func (t *Terminal) ActiveSessionID() (int, error) {
	return t.Active, t.fail("ActiveSessionID")
}

func (t *Terminal) SessionAtTab(tab int) (int, error) {
	if err := t.fail("SessionAtTab"); err != nil {
		return 0, err
	}
	if tab < 0 || tab >= len(t.Tabs) {
		return -1, nil
	}
	return t.Tabs[tab], nil
}

func (t *Terminal) TabTitle(session int) (string, error) {
	return t.Titles[session], t.fail("TabTitle")
}

func (t *Terminal) SetTabTitle(session int, title string) error {
	if err := t.fail("SetTabTitle"); err != nil {
		return err
	}
	t.record("SetTabTitle", session, title)
	t.Titles[session] = title
	return nil
}

func (t *Terminal) TerminalIDs(session int) ([]int, error) {
	if err := t.fail("TerminalIDs"); err != nil {
		return nil, err
	}
	return []int{session}, nil
}

func (t *Terminal) SendText(session int, text string) error {
	if err := t.fail("SendText"); err != nil {
		return err
	}
	if !t.has(session) {
		return fmt.Errorf("no session %d", session)
	}
	t.record("SendText", session, text)
	if text == "sleep 1\n" {
		if pid, ok := t.ProbePID[session]; ok {
			t.Foreground[session] = pid
		}
	}
	return nil
}

func (t *Terminal) ProcessID(session int) (int, error) {
	return t.Leader[session], t.fail("ProcessID")
}

func (t *Terminal) ForegroundProcessID(session int) (int, error) {
	return t.Foreground[session], t.fail("ForegroundProcessID")
}

func (t *Terminal) AddSession() (int, error) {
	if err := t.fail("AddSession"); err != nil {
		return 0, err
	}
	id := t.NextID
	t.NextID++
	t.Tabs = append(t.Tabs, id)
	t.Active = id
	t.record("AddSession", id, "")
	return id, nil
}

func (t *Terminal) RaiseSession(session int) error {
	if err := t.fail("RaiseSession"); err != nil {
		return err
	}
	t.record("RaiseSession", session, "")
	t.Active = session
	return nil
}

func (t *Terminal) RemoveSession(session int) error {
	if err := t.fail("RemoveSession"); err != nil {
		return err
	}
	t.record("RemoveSession", session, "")
	for i, id := range t.Tabs {
		if id == session {
			t.Tabs = append(t.Tabs[:i], t.Tabs[i+1:]...)
			break
		}
	}
	return nil
}

func (t *Terminal) Close() error {
	t.Closed++
	return nil
}

// Sent returns the text lines sent to a session, without trailing newlines.
func (t *Terminal) Sent(session int) []string {
	var lines []string
	for _, c := range t.Calls {
		if c.Method == "SendText" && c.Session == session {
			lines = append(lines, strings.TrimSuffix(c.Arg, "\n"))
		}
	}
	return lines
}

// Methods returns the recorded method names in call order.
func (t *Terminal) Methods() []string {
	out := make([]string, len(t.Calls))
	for i, c := range t.Calls {
		out[i] = c.Method
	}
	return out
}

// Inspector serves processes from a map.
type Inspector struct {
	Processes map[int]*platform.Process
	Inspected []int
}

var _ platform.Inspector = (*Inspector)(nil)

// NewInspector returns an empty Inspector.
func NewInspector() *Inspector {
	return &Inspector{Processes: map[int]*platform.Process{}}
}

// Add registers a process built from cmdline and KEY=VALUE environ entries.
func (i *Inspector) Add(pid int, cmdline []string, environ ...string) *platform.Process {
	p := platform.NewProcess(pid, cmdline, environ)
	i.Processes[pid] = p
	return p
}

func (i *Inspector) Inspect(pid int) (*platform.Process, error) {
	i.Inspected = append(i.Inspected, pid)
	p, ok := i.Processes[pid]
	if !ok {
		return nil, fmt.Errorf("pid %d: %w", pid, platform.ErrProcessNotFound)
	}
	return p, nil
}
