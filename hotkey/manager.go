//go:build windows

package hotkey

import (
	"fmt"
	"sync"

	"github.com/rpdg/winshell/window"
)

// WMHotkey is the message posted to the registering thread when a registered
// accelerator fires. wParam carries the Accelerator.ID value.
const WMHotkey = 0x0312

// Manager owns a set of system-wide accelerators. Register and Unregister
// must be called from the thread that runs the message loop, per the
// RegisterHotKey contract.
type Manager struct {
	mu         sync.Mutex
	registered map[uint16]Accelerator
}

func NewManager() *Manager {
	return &Manager{registered: make(map[uint16]Accelerator)}
}

// Register claims the accelerator system-wide. The id it will fire with is
// returned; watch for WMHotkey in the message loop.
func (m *Manager) Register(a Accelerator) (uint16, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := a.ID()
	if _, ok := m.registered[id]; ok {
		return 0, fmt.Errorf("%w: %s", ErrAlreadyRegistered, a)
	}

	r, _, callErr := window.ProcRegisterHotKey.Call(0, uintptr(id), a.Mods.winFlags(), uintptr(a.Key))
	if r == 0 {
		return 0, fmt.Errorf("RegisterHotKey failed for %s: %v", a, callErr)
	}
	m.registered[id] = a
	return id, nil
}

// IsRegistered reports whether the accelerator is currently held by this
// Manager.
func (m *Manager) IsRegistered(a Accelerator) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.registered[a.ID()]
	return ok
}

// Lookup resolves a WMHotkey wParam back to the accelerator that fired.
func (m *Manager) Lookup(id uint16) (Accelerator, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.registered[id]
	return a, ok
}

// Unregister releases the accelerator.
func (m *Manager) Unregister(a Accelerator) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := a.ID()
	if _, ok := m.registered[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotRegistered, a)
	}
	r, _, callErr := window.ProcUnregisterHotKey.Call(0, uintptr(id))
	if r == 0 {
		return fmt.Errorf("UnregisterHotKey failed for %s: %v", a, callErr)
	}
	delete(m.registered, id)
	return nil
}

// Close releases every accelerator still registered.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for id, a := range m.registered {
		r, _, callErr := window.ProcUnregisterHotKey.Call(0, uintptr(id))
		if r == 0 && firstErr == nil {
			firstErr = fmt.Errorf("UnregisterHotKey failed for %s: %v", a, callErr)
		}
		delete(m.registered, id)
	}
	return firstErr
}
