package gaslib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTempPair_RemovesOnEveryPath(t *testing.T) {
	boom := errors.New("boom")

	var dir string
	err := withTempPair([]byte("n"), []byte("s"), func(p *TempPair) error {
		dir = p.Dir()
		assert.FileExists(t, p.NetPath)
		return nil
	})
	require.NoError(t, err)
	assert.NoDirExists(t, dir)

	err = withTempPair([]byte("n"), []byte("s"), func(p *TempPair) error {
		dir = p.Dir()
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.NoDirExists(t, dir)

	assert.Panics(t, func() {
		_ = withTempPair([]byte("n"), []byte("s"), func(p *TempPair) error {
			dir = p.Dir()
			panic("load failed")
		})
	})
	assert.NoDirExists(t, dir)
}

// A fixture that fails to parse must not leave its files behind.
func TestLoadFixture_FailureCleansUp(t *testing.T) {
	var dir string
	err := withTempPair([]byte("<network><nodes><innode/></nodes></network>"), []byte("<boundaryValue/>"),
		func(p *TempPair) error {
			dir = p.Dir()
			_, err := Load(p.NetPath, p.ScenarioPath)
			return err
		})
	require.ErrorIs(t, err, ErrMissingAttr)
	assert.NoDirExists(t, dir)
}

func TestTempPair_NilClose(t *testing.T) {
	var p *TempPair
	require.NoError(t, p.Close())
}
