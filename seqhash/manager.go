package seqhash

import (
	"fmt"
	"sync"

	"github.com/hasbyte1/go-iterable/iterable"
)

// Manager is a thread-safe registry of named [Digester] drivers with a
// default.
//
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver) while
// allowing concurrent reads.
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Digester
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered before [SumDefault] can use them.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Digester),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with the three built-in drivers
// registered. The default driver is [DriverBlake2b256].
func NewDefaultManager() *Manager {
	m := NewManager(DriverBlake2b256)
	_ = m.RegisterDriver(DriverBlake2b256, Blake2b256())
	_ = m.RegisterDriver(DriverBlake2b512, Blake2b512())
	_ = m.RegisterDriver(DriverSHA3256, SHA3256())
	return m
}

// RegisterDriver adds or replaces a named digester.
func (m *Manager) RegisterDriver(name DriverName, d Digester) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if d == nil {
		return ErrNilDigester
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = d
	return nil
}

// Driver returns the [Digester] registered under name, or [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Digester, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return d, nil
}

// SetDefaultDriver changes the default driver. The named driver must already
// be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Default returns the default digester.
func (m *Manager) Default() (Digester, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return d, nil
}

// SumDefault is [Sum] with the manager's default digester. s is not touched
// when the default driver is missing.
func SumDefault[T any](m *Manager, s iterable.Sequence[T], encode func(T) []byte) ([]byte, error) {
	d, err := m.Default()
	if err != nil {
		return nil, err
	}
	return Sum(d, s, encode), nil
}
