package session

import "testing"

func tabs(t ...Tab) *Record { return &Record{Tabs: t} }

func TestDiffRecords_NoChanges(t *testing.T) {
	rec := tabs(Tab{Title: "editor", Dir: "/src", Index: 0, Command: Command{"vim"}, Env: map[string]string{"A": "1"}})
	if changes := DiffRecords(rec, rec); len(changes) != 0 {
		t.Errorf("expected no changes, got %+v", changes)
	}
}

func TestDiffRecords_Added(t *testing.T) {
	prev := tabs(Tab{Title: "editor", Index: 0})
	curr := tabs(Tab{Title: "editor", Index: 0}, Tab{Title: "logs", Index: 1})

	changes := DiffRecords(prev, curr)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].Type != ChangeAdded || changes[0].Title != "logs" {
		t.Errorf("unexpected change %+v", changes[0])
	}
}

func TestDiffRecords_Removed(t *testing.T) {
	prev := tabs(Tab{Title: "editor", Index: 0}, Tab{Title: "logs", Index: 1})
	curr := tabs(Tab{Title: "editor", Index: 0})

	changes := DiffRecords(prev, curr)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].Type != ChangeRemoved || changes[0].Index != 1 {
		t.Errorf("unexpected change %+v", changes[0])
	}
}

func TestDiffRecords_Changed(t *testing.T) {
	prev := tabs(Tab{Title: "editor", Dir: "/src", Index: 0, Command: Command{"vim"}, Env: map[string]string{"A": "1", "B": "2"}})
	curr := tabs(Tab{Title: "editor", Dir: "/src/app", Index: 0, Command: Command{"vim", "main.go"}, Env: map[string]string{"A": "9", "C": "3"}})

	changes := DiffRecords(prev, curr)
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	c := changes[0]
	if c.Type != ChangeChanged {
		t.Fatalf("expected changed, got %s", c.Type)
	}
	want := map[string][2]string{
		"dir":     {"/src", "/src/app"},
		"command": {"vim", "vim main.go"},
		"env.A":   {"1", "9"},
		"env.B":   {"2", ""},
		"env.C":   {"", "3"},
	}
	if len(c.Changes) != len(want) {
		t.Fatalf("changes = %v, want %v", c.Changes, want)
	}
	for k, v := range want {
		if c.Changes[k] != v {
			t.Errorf("%s = %v, want %v", k, c.Changes[k], v)
		}
	}
}

func TestDiffRecords_OrderedByIndex(t *testing.T) {
	prev := tabs(Tab{Title: "a", Index: 0}, Tab{Title: "c", Index: 2})
	curr := tabs(Tab{Title: "b", Index: 1}, Tab{Title: "a2", Index: 0})

	changes := DiffRecords(prev, curr)
	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %+v", changes)
	}
	for i, c := range changes {
		if c.Index != i {
			t.Errorf("change %d has index %d", i, c.Index)
		}
	}
}
