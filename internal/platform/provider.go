package platform

import (
	"errors"
	"fmt"
	"io"
	"runtime"
)

// Provider bundles the backends for the current OS.
type Provider struct {
	Terminal  Terminal
	Inspector Inspector
}

// Close releases backend resources such as a bus connection.
func (p *Provider) Close() error {
	var errs []error
	for _, b := range []any{p.Terminal, p.Inspector} {
		if c, ok := b.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("yman is not supported on %s/%s; supported: linux", runtime.GOOS, runtime.GOARCH)

// ErrProcessNotFound is returned when an inspected process no longer exists.
var ErrProcessNotFound = errors.New("process no longer exists")

// Options configures backend construction.
type Options struct {
	Service   string // D-Bus service name of the terminal application
	ProcMount string // mount point of the process information filesystem
}

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/linux/init.go for the Linux registration.
var NewProviderFunc func(opts Options) (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider(opts Options) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(opts)
}
