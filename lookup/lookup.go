// SPDX-License-Identifier: MIT

// Package lookup provides Table, the dense label↔index map shared by the
// network and GasLib readers.
//
// Labels are assigned indices 0,1,2,… in insertion order and the mapping
// is a bijection for the life of the table: labels are never removed or
// renumbered. A sync.RWMutex guards both directions, so one table may be
// read from many goroutines while a single writer appends.
//
// Errors:
//
//	ErrEmptyLabel     - label is the empty string.
//	ErrDuplicateLabel - label already present (Add only).
//	ErrUnknownLabel   - label not present.
//	ErrIndexRange     - index outside [0, Len()).
package lookup

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for table operations.
var (
	ErrEmptyLabel     = errors.New("lookup: label is empty")
	ErrDuplicateLabel = errors.New("lookup: duplicate label")
	ErrUnknownLabel   = errors.New("lookup: unknown label")
	ErrIndexRange     = errors.New("lookup: index out of range")
)

// Table is a dense, append-only label↔index bijection.
type Table struct {
	mu     sync.RWMutex
	index  map[string]int // label → index
	labels []string       // index → label
}

// New returns an empty table with room for n labels.
func New(n int) *Table {
	if n < 0 {
		n = 0
	}
	return &Table{
		index:  make(map[string]int, n),
		labels: make([]string, 0, n),
	}
}

// FromLabels builds a table from labels in order, failing on the first
// empty or repeated label.
func FromLabels(labels []string) (*Table, error) {
	t := New(len(labels))
	for _, l := range labels {
		if _, err := t.Add(l); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add appends label and returns its new index.
// Complexity: O(1) amortized.
func (t *Table) Add(label string) (int, error) {
	if label == "" {
		return -1, ErrEmptyLabel
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if i, ok := t.index[label]; ok {
		return i, fmt.Errorf("%w: %q (index %d)", ErrDuplicateLabel, label, i)
	}
	i := len(t.labels)
	t.index[label] = i
	t.labels = append(t.labels, label)

	return i, nil
}

// Index returns the index of label.
func (t *Table) Index(label string) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, ok := t.index[label]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return i, nil
}

// Label returns the label stored at index i.
func (t *Table) Label(i int) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i < 0 || i >= len(t.labels) {
		return "", fmt.Errorf("%w: %d not in [0,%d)", ErrIndexRange, i, len(t.labels))
	}
	return t.labels[i], nil
}

// Has reports whether label is present.
func (t *Table) Has(label string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.index[label]
	return ok
}

// Len returns the number of labels.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.labels)
}

// Labels returns a copy of all labels in index order.
func (t *Table) Labels() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]string(nil), t.labels...)
}
