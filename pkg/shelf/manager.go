package shelf

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Manager owns the lookup table from container IDs to instances. External
// references resolve through a Manager instead of process-global state;
// whichever component creates containers holds the Manager.
type Manager struct {
	mu   sync.Mutex
	byID map[string]*Container
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{byID: make(map[string]*Container)}
}

// Create builds a container from cfg, assigns it an ID, and records it.
func (m *Manager) Create(cfg Config) *Container {
	c := New(cfg)
	c.id = uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[c.id] = c
	return c
}

// Get resolves an ID to its container.
func (m *Manager) Get(id string) (*Container, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	return c, ok
}

// Lookup resolves a container by name; IDs win over names when both
// match.
func (m *Manager) Lookup(name string) (*Container, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.byID[name]; ok {
		return c, true
	}
	for _, c := range m.byID {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// Destroy forgets the container and evicts its children. The rendered
// items behind the handles are left alone.
func (m *Manager) Destroy(id string) error {
	m.mu.Lock()
	c, ok := m.byID[id]
	delete(m.byID, id)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("container %q not found", id)
	}
	c.slot.Cancel()
	c.reg.Clear()
	return nil
}

// Len returns the number of live containers.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

// ID returns the manager-assigned identifier of c, or "" for containers
// built directly with New.
func (c *Container) ID() string { return c.id }
