package linux

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mj1618/yman/internal/platform"
	"github.com/prometheus/procfs"
)

// DefaultProcMount is where the kernel exposes per-process files.
const DefaultProcMount = procfs.DefaultMountPoint

// Inspector implements platform.Inspector on top of procfs.
type Inspector struct {
	fs procfs.FS
}

var _ platform.Inspector = (*Inspector)(nil)

// NewInspector opens the proc filesystem at mount (DefaultProcMount if empty).
func NewInspector(mount string) (*Inspector, error) {
	if mount == "" {
		mount = DefaultProcMount
	}
	pfs, err := procfs.NewFS(mount)
	if err != nil {
		return nil, fmt.Errorf("open procfs %s: %w", mount, err)
	}
	return &Inspector{fs: pfs}, nil
}

// Inspect reads the argument vector and environment of pid once.
func (i *Inspector) Inspect(pid int) (*platform.Process, error) {
	p, err := i.fs.Proc(pid)
	if err != nil {
		return nil, procErr(pid, err)
	}
	cmdline, err := p.CmdLine()
	if err != nil {
		return nil, procErr(pid, err)
	}
	environ, err := p.Environ()
	if err != nil {
		return nil, procErr(pid, err)
	}
	return platform.NewProcess(pid, cmdline, environ), nil
}

func procErr(pid int, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("pid %d: %w", pid, platform.ErrProcessNotFound)
	}
	return fmt.Errorf("pid %d: %w", pid, err)
}
