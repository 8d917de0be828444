// SPDX-License-Identifier: MIT

package gaslib

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/costnet/network"
)

//go:embed fixtures/*.net fixtures/*.scn
var fixtureFS embed.FS

// Fixtures lists the embedded instance names in sorted order.
func Fixtures() []string {
	entries, err := fixtureFS.ReadDir("fixtures")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".net"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// FixtureFiles returns the raw topology and scenario of an embedded
// instance.
func FixtureFiles(name string) (net, scenario []byte, err error) {
	net, err = fixtureFS.ReadFile("fixtures/" + name + ".net")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
	}
	scenario, err = fixtureFS.ReadFile("fixtures/" + name + ".scn")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q has no scenario", ErrUnknownFixture, name)
	}
	return net, scenario, nil
}

// LoadFixture loads an embedded instance through a temporary file pair,
// which is removed before LoadFixture returns.
func LoadFixture(name string, opts ...Option) (*network.Network, error) {
	net, scn, err := FixtureFiles(name)
	if err != nil {
		return nil, err
	}
	var n *network.Network
	err = withTempPair(net, scn, func(p *TempPair) error {
		var lerr error
		n, lerr = Load(p.NetPath, p.ScenarioPath, opts...)
		return lerr
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}
