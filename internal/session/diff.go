package session

import "sort"

// ChangeType is the kind of difference between two records.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// TabChange describes one tab that differs between two records.
type TabChange struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	Index   int                  `yaml:"index"             json:"index"`
	Title   string               `yaml:"title,omitempty"   json:"title,omitempty"`
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // field -> [before, after]
}

// DiffRecords compares two records tab by tab, matching tabs by index.
// Changes are ordered by index.
func DiffRecords(prev, curr *Record) []TabChange {
	prevMap := make(map[int]Tab, len(prev.Tabs))
	for _, tab := range prev.Tabs {
		prevMap[tab.Index] = tab
	}
	currMap := make(map[int]Tab, len(curr.Tabs))
	for _, tab := range curr.Tabs {
		currMap[tab.Index] = tab
	}

	changes := []TabChange{}
	for _, tab := range curr.Tabs {
		before, existed := prevMap[tab.Index]
		if !existed {
			changes = append(changes, TabChange{Type: ChangeAdded, Index: tab.Index, Title: tab.Title})
			continue
		}
		if diffs := diffTab(before, tab); diffs != nil {
			changes = append(changes, TabChange{Type: ChangeChanged, Index: tab.Index, Title: tab.Title, Changes: diffs})
		}
	}
	for _, tab := range prev.Tabs {
		if _, exists := currMap[tab.Index]; !exists {
			changes = append(changes, TabChange{Type: ChangeRemoved, Index: tab.Index, Title: tab.Title})
		}
	}

	sort.SliceStable(changes, func(i, j int) bool { return changes[i].Index < changes[j].Index })
	return changes
}

func diffTab(prev, curr Tab) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Title != curr.Title {
		diffs["title"] = [2]string{prev.Title, curr.Title}
	}
	if prev.Dir != curr.Dir {
		diffs["dir"] = [2]string{prev.Dir, curr.Dir}
	}
	if a, b := prev.CommandLine(), curr.CommandLine(); a != b {
		diffs["command"] = [2]string{a, b}
	}
	for k, v := range curr.Env {
		if old, ok := prev.Env[k]; !ok || old != v {
			diffs["env."+k] = [2]string{old, v}
		}
	}
	for k, v := range prev.Env {
		if _, ok := curr.Env[k]; !ok {
			diffs["env."+k] = [2]string{v, ""}
		}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
