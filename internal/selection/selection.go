// Package selection provides selection identities and the selection manager contract.
package selection

import (
	"strconv"
	"sync"
)

// ID is an opaque identity correlating a data row with the host's
// cross-visual selection state. It is only ever compared or looked up.
type ID struct {
	column string
	row    int
}

// Column returns the source column the identity was minted for.
func (id ID) Column() string { return id.column }

// Row returns the row index the identity was minted for.
func (id ID) Row() int { return id.row }

// Key returns a stable string form suitable for persistence lookups.
func (id ID) Key() string {
	return id.column + "#" + strconv.Itoa(id.row)
}

// Restore rebuilds an identity from its persisted parts.
func Restore(column string, row int) ID {
	return ID{column: column, row: row}
}

// Factory mints selection identities for rows of a single data column.
type Factory struct {
	column string
}

// NewFactory returns a factory bound to the given column query name.
func NewFactory(column string) *Factory {
	return &Factory{column: column}
}

// ForRow returns the identity for the given row index. Identities are
// stable: the same (column, row) pair always yields an equal ID.
func (f *Factory) ForRow(row int) ID {
	return ID{column: f.column, row: row}
}

// Manager toggles selection membership. Select completes through done with
// the set of identities selected after the toggle; completion may happen
// before Select returns or on another goroutine, depending on the backend.
type Manager interface {
	Select(id ID, done func(selected []ID))
}

// MemoryManager keeps selection state in memory for the current process.
type MemoryManager struct {
	mu       sync.Mutex
	selected map[ID]struct{}
}

// NewMemoryManager returns an empty in-memory selection manager.
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{selected: map[ID]struct{}{}}
}

// Select toggles id and completes synchronously with the resulting set.
func (m *MemoryManager) Select(id ID, done func(selected []ID)) {
	m.mu.Lock()
	if _, ok := m.selected[id]; ok {
		delete(m.selected, id)
	} else {
		m.selected[id] = struct{}{}
	}
	snapshot := make([]ID, 0, len(m.selected))
	for sel := range m.selected {
		snapshot = append(snapshot, sel)
	}
	m.mu.Unlock()
	if done != nil {
		done(snapshot)
	}
}

// Selected reports the current selection set.
func (m *MemoryManager) Selected() []ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ID, 0, len(m.selected))
	for sel := range m.selected {
		out = append(out, sel)
	}
	return out
}
