package session

import (
	"errors"
	"testing"

	"github.com/mj1618/yman/internal/platform"
	"github.com/mj1618/yman/internal/platform/platformtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ambient = map[string]string{"HOME": "/home/me", "PATH": "/usr/bin", "DISPLAY": ":0"}

// busyTab registers a session running cmdline as a child of its shell.
func busyTab(term *platformtest.Terminal, insp *platformtest.Inspector, session int, title string, pid int, cmdline []string, environ ...string) {
	term.Titles[session] = title
	term.Leader[session] = pid - 1
	term.Foreground[session] = pid
	insp.Add(pid, cmdline, environ...)
}

// idleTab registers a session whose shell has no child; the probe pid is
// what the tab reports once "sleep 1" runs.
func idleTab(term *platformtest.Terminal, insp *platformtest.Inspector, session int, title string, shellPID, probePID int, environ ...string) {
	term.Titles[session] = title
	term.Leader[session] = shellPID
	term.Foreground[session] = shellPID
	term.ProbePID[session] = probePID
	insp.Add(probePID, []string{"sleep", "1"}, environ...)
}

func newSnapshotter(term *platformtest.Terminal, insp *platformtest.Inspector) *Snapshotter {
	return &Snapshotter{Terminal: term, Inspector: insp, Ambient: ambient}
}

func TestSnapshot_BusyTab(t *testing.T) {
	term := platformtest.NewTerminal(10, 11)
	insp := platformtest.NewInspector()
	busyTab(term, insp, 10, "editor", 501, []string{"vim", "main.go"},
		"HOME=/home/me", "PWD=/home/me/src", "GOFLAGS=-mod=mod", "PATH=/opt/go/bin:/usr/bin")
	busyTab(term, insp, 11, "logs", 601, []string{"tail", "-f", "app.log"}, "PWD=/var/log")

	rec, err := newSnapshotter(term, insp).Snapshot(false)
	require.NoError(t, err)
	require.Len(t, rec.Tabs, 2)

	assert.Equal(t, Tab{
		Title:   "editor",
		Dir:     "/home/me/src",
		Index:   0,
		Command: Command{"vim", "main.go"},
		Env:     map[string]string{"PWD": "/home/me/src", "GOFLAGS": "-mod=mod"},
	}, rec.Tabs[0])
	assert.Equal(t, 1, rec.Tabs[1].Index)
	assert.Equal(t, Command{"tail", "-f", "app.log"}, rec.Tabs[1].Command)
	assert.Empty(t, term.Calls, "busy tabs are read without injecting text")
}

func TestSnapshot_IdleTabUsesProbe(t *testing.T) {
	term := platformtest.NewTerminal(4)
	insp := platformtest.NewInspector()
	idleTab(term, insp, 4, "shell", 700, 701, "PWD=/srv", "HOME=/home/me", "VIRTUAL_ENV=/srv/.venv")

	rec, err := newSnapshotter(term, insp).Snapshot(false)
	require.NoError(t, err)
	require.Len(t, rec.Tabs, 1)

	assert.Equal(t, []string{"sleep 1"}, term.Sent(4))
	assert.Equal(t, []int{701}, insp.Inspected, "the probe child is inspected, not the shell")
	assert.True(t, rec.Tabs[0].Command.Empty(), "the probe is not recorded as the tab command")
	assert.Equal(t, "/srv", rec.Tabs[0].Dir)
	assert.Equal(t, map[string]string{"PWD": "/srv", "VIRTUAL_ENV": "/srv/.venv"}, rec.Tabs[0].Env)
}

func TestSnapshot_SelfIsNotRecorded(t *testing.T) {
	term := platformtest.NewTerminal(1, 2)
	insp := platformtest.NewInspector()
	busyTab(term, insp, 1, "python yman", 101, []string{"/usr/bin/python3", "/home/me/.local/bin/yman", "store", "x"}, "PWD=/home/me")
	busyTab(term, insp, 2, "go yman", 201, []string{"/usr/local/bin/yman", "store", "x"}, "PWD=/tmp")

	rec, err := newSnapshotter(term, insp).Snapshot(false)
	require.NoError(t, err)
	require.Len(t, rec.Tabs, 2)
	assert.True(t, rec.Tabs[0].Command.Empty())
	assert.True(t, rec.Tabs[1].Command.Empty())
	assert.Equal(t, "/home/me", rec.Tabs[0].Dir)
}

func TestSnapshot_SkipActive(t *testing.T) {
	term := platformtest.NewTerminal(1, 2, 3)
	term.Active = 2
	insp := platformtest.NewInspector()
	busyTab(term, insp, 1, "one", 101, []string{"top"})
	busyTab(term, insp, 2, "two", 201, []string{"yman", "store", "x"})
	busyTab(term, insp, 3, "three", 301, []string{"htop"})

	rec, err := newSnapshotter(term, insp).Snapshot(true)
	require.NoError(t, err)
	require.Len(t, rec.Tabs, 2)
	assert.Equal(t, "one", rec.Tabs[0].Title)
	assert.Equal(t, 0, rec.Tabs[0].Index)
	assert.Equal(t, "three", rec.Tabs[1].Title)
	assert.Equal(t, 2, rec.Tabs[1].Index, "indexes keep the original tab position")
}

func TestSnapshot_EnvIsStrictSubsetOfProcessEnv(t *testing.T) {
	term := platformtest.NewTerminal(1)
	insp := platformtest.NewInspector()
	busyTab(term, insp, 1, "x", 11, []string{"bash"}, "HOME=/home/me", "DISPLAY=:1", "EXTRA=1", "PWD=/")

	rec, err := newSnapshotter(term, insp).Snapshot(false)
	require.NoError(t, err)

	proc := insp.Processes[11]
	for k, v := range rec.Tabs[0].Env {
		assert.NotContains(t, ambient, k)
		assert.Equal(t, proc.Env[k], v)
	}
	assert.Less(t, len(rec.Tabs[0].Env), len(proc.Env))
}

func TestSnapshot_VanishedProcessAborts(t *testing.T) {
	term := platformtest.NewTerminal(1, 2)
	insp := platformtest.NewInspector()
	busyTab(term, insp, 1, "ok", 11, []string{"top"})
	term.Titles[2] = "gone"
	term.Leader[2] = 20
	term.Foreground[2] = 21

	_, err := newSnapshotter(term, insp).Snapshot(false)
	assert.ErrorIs(t, err, platform.ErrProcessNotFound)
}

func TestSnapshot_RemoteErrorAborts(t *testing.T) {
	term := platformtest.NewTerminal(1)
	boom := errors.New("org.freedesktop.DBus.Error.ServiceUnknown")
	term.Errs["TabTitle"] = boom

	_, err := newSnapshotter(term, platformtest.NewInspector()).Snapshot(false)
	assert.ErrorIs(t, err, boom)
}

func TestIsSelf(t *testing.T) {
	tests := []struct {
		cmdline []string
		want    bool
	}{
		{[]string{"python3", "/usr/bin/yman", "store"}, true},
		{[]string{"yman"}, true},
		{[]string{"/home/me/go/bin/yman", "list"}, true},
		{[]string{"vim", "yman.md"}, false},
		{[]string{"vim", "notes-yman"}, true},
		{[]string{"ymanager"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSelf(tt.cmdline, "yman"), "%v", tt.cmdline)
	}
	assert.False(t, IsSelf([]string{"yman"}, ""))
}
