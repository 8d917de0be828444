// SPDX-License-Identifier: MIT

package gaslib

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// TempPair is a topology/scenario file pair in a private temporary
// directory. Close removes both files and the directory.
type TempPair struct {
	NetPath      string
	ScenarioPath string
	dir          string
}

// NewTempPair writes net and scenario to fresh temporary files. If any step
// fails, whatever was already created is removed before returning.
func NewTempPair(net, scenario []byte) (p *TempPair, err error) {
	dir, err := os.MkdirTemp("", "gaslib-*")
	if err != nil {
		return nil, fmt.Errorf("gaslib: temp dir: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(dir)
		}
	}()

	p = &TempPair{
		NetPath:      filepath.Join(dir, "instance.net"),
		ScenarioPath: filepath.Join(dir, "instance.scn"),
		dir:          dir,
	}
	if err = os.WriteFile(p.NetPath, net, 0o600); err != nil {
		return nil, fmt.Errorf("gaslib: write topology: %w", err)
	}
	if err = os.WriteFile(p.ScenarioPath, scenario, 0o600); err != nil {
		return nil, fmt.Errorf("gaslib: write scenario: %w", err)
	}
	return p, nil
}

// Dir is the directory holding both files.
func (p *TempPair) Dir() string { return p.dir }

// Close removes the files. Calling it again is a no-op.
func (p *TempPair) Close() error {
	if p == nil || p.dir == "" {
		return nil
	}
	err := os.RemoveAll(p.dir)
	p.dir = ""
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("gaslib: remove temp pair: %w", err)
	}
	return nil
}

// withTempPair runs fn on a fresh pair and removes it on every path out,
// including a panic in fn.
func withTempPair(net, scenario []byte, fn func(p *TempPair) error) (err error) {
	p, err := NewTempPair(net, scenario)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := p.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(p)
}
