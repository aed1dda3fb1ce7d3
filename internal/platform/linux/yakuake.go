package linux

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/mj1618/yman/internal/platform"
)

const (
	// DefaultService is the bus name Yakuake registers.
	DefaultService = "org.kde.yakuake"

	yakuakeIface = "org.kde.yakuake"
	konsoleIface = "org.kde.konsole.Session"

	sessionsPath dbus.ObjectPath = "/yakuake/sessions"
	tabsPath     dbus.ObjectPath = "/yakuake/tabs"
)

// Yakuake implements platform.Terminal over the D-Bus session bus.
type Yakuake struct {
	conn    *dbus.Conn
	service string
}

var _ platform.Terminal = (*Yakuake)(nil)

// NewYakuake connects to the session bus. The service defaults to
// DefaultService when empty.
func NewYakuake(service string) (*Yakuake, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return NewYakuakeWithConn(conn, service), nil
}

// NewYakuakeWithConn wraps an existing bus connection.
func NewYakuakeWithConn(conn *dbus.Conn, service string) *Yakuake {
	if service == "" {
		service = DefaultService
	}
	return &Yakuake{conn: conn, service: service}
}

// Close releases the bus connection.
func (y *Yakuake) Close() error {
	return y.conn.Close()
}

func (y *Yakuake) call(path dbus.ObjectPath, iface, method string, args ...interface{}) *dbus.Call {
	return y.conn.Object(y.service, path).Call(iface+"."+method, 0, args...)
}

func (y *Yakuake) callInt(path dbus.ObjectPath, iface, method string, args ...interface{}) (int, error) {
	var v int32
	if err := y.call(path, iface, method, args...).Store(&v); err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	return int(v), nil
}

func (y *Yakuake) callString(path dbus.ObjectPath, iface, method string, args ...interface{}) (string, error) {
	var v string
	if err := y.call(path, iface, method, args...).Store(&v); err != nil {
		return "", fmt.Errorf("%s: %w", method, err)
	}
	return v, nil
}

func (y *Yakuake) callVoid(path dbus.ObjectPath, iface, method string, args ...interface{}) error {
	if err := y.call(path, iface, method, args...).Err; err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// terminalPath resolves the Konsole object of a session's first terminal.
// Konsole numbers its session objects from 1 while Yakuake counts terminals
// from 0.
func (y *Yakuake) terminalPath(session int) (dbus.ObjectPath, error) {
	ids, err := y.TerminalIDs(session)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("session %d has no terminals", session)
	}
	return TerminalObjectPath(ids[0]), nil
}

// TerminalObjectPath returns the Konsole object path of a Yakuake terminal id.
func TerminalObjectPath(terminalID int) dbus.ObjectPath {
	return dbus.ObjectPath(fmt.Sprintf("/Sessions/%d", terminalID+1))
}

func (y *Yakuake) SessionIDs() ([]int, error) {
	s, err := y.callString(sessionsPath, yakuakeIface, "sessionIdList")
	if err != nil {
		return nil, err
	}
	return platform.ParseIDList(s)
}

func (y *Yakuake) ActiveSessionID() (int, error) {
	return y.callInt(sessionsPath, yakuakeIface, "activeSessionId")
}

func (y *Yakuake) SessionAtTab(tab int) (int, error) {
	return y.callInt(tabsPath, yakuakeIface, "sessionAtTab", int32(tab))
}

func (y *Yakuake) TabTitle(session int) (string, error) {
	return y.callString(tabsPath, yakuakeIface, "tabTitle", int32(session))
}

func (y *Yakuake) SetTabTitle(session int, title string) error {
	return y.callVoid(tabsPath, yakuakeIface, "setTabTitle", int32(session), title)
}

func (y *Yakuake) TerminalIDs(session int) ([]int, error) {
	s, err := y.callString(sessionsPath, yakuakeIface, "terminalIdsForSessionId", int32(session))
	if err != nil {
		return nil, err
	}
	return platform.ParseIDList(s)
}

func (y *Yakuake) SendText(session int, text string) error {
	path, err := y.terminalPath(session)
	if err != nil {
		return err
	}
	return y.callVoid(path, konsoleIface, "sendText", text)
}

func (y *Yakuake) ProcessID(session int) (int, error) {
	path, err := y.terminalPath(session)
	if err != nil {
		return 0, err
	}
	return y.callInt(path, konsoleIface, "processId")
}

func (y *Yakuake) ForegroundProcessID(session int) (int, error) {
	path, err := y.terminalPath(session)
	if err != nil {
		return 0, err
	}
	return y.callInt(path, konsoleIface, "foregroundProcessId")
}

func (y *Yakuake) AddSession() (int, error) {
	return y.callInt(sessionsPath, yakuakeIface, "addSession")
}

func (y *Yakuake) RaiseSession(session int) error {
	return y.callVoid(sessionsPath, yakuakeIface, "raiseSession", int32(session))
}

func (y *Yakuake) RemoveSession(session int) error {
	return y.callVoid(sessionsPath, yakuakeIface, "removeSession", int32(session))
}
