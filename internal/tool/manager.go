package tool

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrToolNotFound = errors.New("tool not found")

// Manager is the registry the HTTP host surface dispatches through.
type Manager struct {
	mu    sync.RWMutex
	tools map[string]Executor
}

func NewManager() *Manager {
	return &Manager{
		tools: make(map[string]Executor),
	}
}

func (m *Manager) Register(tool Executor) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tools[tool.Definition().Function.Name] = tool
}

func (m *Manager) Get(name string) (Executor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tool, ok := m.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return tool, nil
}

// Definitions returns every registered definition ordered by name.
func (m *Manager) Definitions() []Definition {
	m.mu.RLock()
	defer m.mu.RUnlock()

	defs := make([]Definition, 0, len(m.tools))
	for _, tool := range m.tools {
		defs = append(defs, tool.Definition())
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Function.Name < defs[j].Function.Name
	})
	return defs
}
