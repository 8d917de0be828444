// SPDX-License-Identifier: MIT

package gaslib

import "errors"

var (
	// ErrUnknownElement reports a node or connection element GasLib does
	// not define.
	ErrUnknownElement = errors.New("gaslib: unknown element")

	// ErrUnknownNode reports a connection endpoint or scenario entry that
	// names no node of the topology.
	ErrUnknownNode = errors.New("gaslib: unknown node")

	// ErrMissingAttr reports an absent id, from, to, type or value.
	ErrMissingAttr = errors.New("gaslib: missing attribute")

	// ErrUnknownFixture reports a name not listed by Fixtures.
	ErrUnknownFixture = errors.New("gaslib: unknown fixture")

	// ErrNoScenario reports a boundary-value file without <scenario>.
	ErrNoScenario = errors.New("gaslib: no scenario")
)
