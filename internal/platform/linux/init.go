//go:build linux

package linux

import "github.com/mj1618/yman/internal/platform"

func init() {
	platform.NewProviderFunc = func(opts platform.Options) (*platform.Provider, error) {
		inspector, err := NewInspector(opts.ProcMount)
		if err != nil {
			return nil, err
		}
		terminal, err := NewYakuake(opts.Service)
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Terminal:  terminal,
			Inspector: inspector,
		}, nil
	}
}
