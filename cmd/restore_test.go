package cmd

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mj1618/yman/internal/service"
	"github.com/mj1618/yman/internal/session"
)

const workRecord = `{
  "tabs": [
    {"title": "logs", "dir": "/var/log", "index": 1, "command": ["tail", "-f", "syslog"], "env": {}},
    {"title": "editor", "dir": "/src", "index": 0, "command": "vim", "env": {"EDITOR": "vim"}}
  ]
}`

func TestRestoreCommand_Flags(t *testing.T) {
	f := restoreCmd.Flags().Lookup("clear")
	if f == nil {
		t.Fatal("expected flag clear not found")
	}
	if f.Value.Type() != "bool" {
		t.Errorf("flag clear: expected type bool, got %q", f.Value.Type())
	}
	if restoreCmd.ValidArgsFunction == nil {
		t.Error("restore should complete session names")
	}
}

func TestRunRestore(t *testing.T) {
	env := newTestEnv(t, 5)
	resetFlags(t, restoreCmd)
	writeFile(t, filepath.Join(env.cfg.SessionsDir, "work.json"), workRecord)

	if err := runRestore(restoreCmd, []string{"work"}); err != nil {
		t.Fatal(err)
	}

	var result service.RestoreResult
	if err := json.Unmarshal(env.out.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(result.Sessions, []int{6, 7}) {
		t.Errorf("sessions = %v, want [6 7]", result.Sessions)
	}

	if got, want := env.term.Sent(6), []string{"take /src", "export EDITOR='vim'", "vim"}; !reflect.DeepEqual(got, want) {
		t.Errorf("tab 0 lines = %q, want %q", got, want)
	}
	if got, want := env.term.Sent(7), []string{"take /var/log", "tail -f syslog"}; !reflect.DeepEqual(got, want) {
		t.Errorf("tab 1 lines = %q, want %q", got, want)
	}
	if env.term.Titles[6] != "editor" || env.term.Titles[7] != "logs" {
		t.Errorf("titles = %v", env.term.Titles)
	}
	if env.term.Active != 5 {
		t.Errorf("active session = %d, want 5", env.term.Active)
	}
}

func TestRunRestore_ClearFlag(t *testing.T) {
	env := newTestEnv(t, 0)
	resetFlags(t, restoreCmd)
	writeFile(t, filepath.Join(env.cfg.SessionsDir, "work.json"), `{"tabs": [{"title": "t", "dir": "", "index": 0, "command": [], "env": {}}]}`)

	if err := restoreCmd.Flags().Set("clear", "true"); err != nil {
		t.Fatal(err)
	}
	if err := runRestore(restoreCmd, []string{"work"}); err != nil {
		t.Fatal(err)
	}
	if got := env.term.Sent(1); !reflect.DeepEqual(got, []string{"clear"}) {
		t.Errorf("lines = %q, want [clear]", got)
	}
}

func TestRunRestore_Missing(t *testing.T) {
	env := newTestEnv(t, 0)
	resetFlags(t, restoreCmd)

	err := runRestore(restoreCmd, []string{"nope"})
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if len(env.term.Calls) != 0 {
		t.Errorf("terminal touched: %v", env.term.Calls)
	}
}
