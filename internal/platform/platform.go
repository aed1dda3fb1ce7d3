package platform

// Terminal drives the drop-down terminal application over its IPC surface.
// Session identifiers are the application's own tab session ids, not tab
// positions. Every call is synchronous and failures are returned unchanged.
type Terminal interface {
	// SessionIDs returns the ids of all open sessions.
	SessionIDs() ([]int, error)

	// ActiveSessionID returns the session currently shown.
	ActiveSessionID() (int, error)

	// SessionAtTab returns the session id at the given tab position.
	SessionAtTab(tab int) (int, error)

	TabTitle(session int) (string, error)
	SetTabTitle(session int, title string) error

	// TerminalIDs returns the terminal ids hosted by a session.
	TerminalIDs(session int) ([]int, error)

	// SendText writes literal text into the session's first terminal.
	SendText(session int, text string) error

	// ProcessID returns the pid of the terminal's leader (the shell).
	ProcessID(session int) (int, error)

	// ForegroundProcessID returns the pid of the terminal's foreground process.
	// It equals ProcessID when nothing runs in the shell.
	ForegroundProcessID(session int) (int, error)

	// AddSession opens a new tab with a single terminal and returns its id.
	AddSession() (int, error)

	RaiseSession(session int) error
	RemoveSession(session int) error
}

// Inspector reads process state from the operating system.
type Inspector interface {
	// Inspect captures the command line and environment of pid. The returned
	// Process is a snapshot; later changes in the target are not observed.
	Inspect(pid int) (*Process, error)
}
