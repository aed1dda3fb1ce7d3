package service

import "github.com/mj1618/yman/internal/session"

// StoreResult is the output of a successful store.
type StoreResult struct {
	OK             bool   `yaml:"ok"              json:"ok"`
	Action         string `yaml:"action"          json:"action"`
	Name           string `yaml:"name"            json:"name"`
	Path           string `yaml:"path"            json:"path"`
	Tabs           int    `yaml:"tabs"            json:"tabs"`
	SkippedCurrent bool   `yaml:"skipped_current" json:"skipped_current"`
}

// RestoreResult is the output of a successful restore. Sessions lists the
// ids of the tabs that were opened, in creation order.
type RestoreResult struct {
	OK       bool   `yaml:"ok"       json:"ok"`
	Action   string `yaml:"action"   json:"action"`
	Name     string `yaml:"name"     json:"name"`
	Tabs     int    `yaml:"tabs"     json:"tabs"`
	Sessions []int  `yaml:"sessions" json:"sessions"`
}

type ListResult struct {
	Sessions []string `yaml:"sessions" json:"sessions"`
}

type ShowResult struct {
	Name string        `yaml:"name" json:"name"`
	Path string        `yaml:"path" json:"path"`
	Tabs []session.Tab `yaml:"tabs" json:"tabs"`
}

type RemoveResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Name   string `yaml:"name"   json:"name"`
}

// DiffResult compares a stored session with the tabs open now.
type DiffResult struct {
	Name    string              `yaml:"name"    json:"name"`
	Changes []session.TabChange `yaml:"changes" json:"changes"`
}
