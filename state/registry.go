package state

import (
	"fmt"
	"sync"
)

// BackendType represents the type of store backend
type BackendType string

const (
	// MemoryBackendType represents the in-memory store implementation
	MemoryBackendType BackendType = "memory"
	// DBBackendType represents the sqlite-backed store implementation
	DBBackendType BackendType = "db"
	// BadgerBackendType represents the badger-backed store implementation
	BadgerBackendType BackendType = "badger"
)

// Constructor is a function type that creates a new TxStore instance
type Constructor func(params map[string]any) (TxStore, error)

// Registry defines the interface for managing store backends
type Registry interface {
	// Register adds a new store backend to the registry
	Register(bt BackendType, constructor Constructor) error
	// SetDefault sets the default backend type
	SetDefault(bt BackendType) error
	// Open returns a new store of the specified backend type
	Open(bt BackendType, params map[string]any) (TxStore, error)
	// DefaultBackendType returns the current default backend type
	DefaultBackendType() BackendType
	// ListRegistered returns a list of all registered backend types
	ListRegistered() []BackendType
}

// registry implements the Registry interface
type registry struct {
	mu        sync.RWMutex
	backends  map[BackendType]Constructor
	defaultBt BackendType
}

var (
	// defaultRegistry is the global singleton registry instance
	defaultRegistry Registry
)

func init() {
	defaultRegistry = &registry{
		backends: make(map[BackendType]Constructor),
	}
}

// GetRegistry returns the global Registry instance
func GetRegistry() Registry {
	return defaultRegistry
}

// Register adds a new store backend to the registry
func (r *registry) Register(bt BackendType, constructor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[bt]; exists {
		return fmt.Errorf("backend type %s already registered", bt)
	}

	r.backends[bt] = constructor
	return nil
}

// SetDefault sets the default backend type
func (r *registry) SetDefault(bt BackendType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[bt]; !exists {
		return fmt.Errorf("backend type %s not registered", bt)
	}

	r.defaultBt = bt
	return nil
}

// Open returns a new store of the specified backend type
func (r *registry) Open(bt BackendType, params map[string]any) (TxStore, error) {
	r.mu.RLock()
	constructor, exists := r.backends[bt]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("backend type %s not found", bt)
	}

	return constructor(params)
}

// DefaultBackendType returns the current default backend type
func (r *registry) DefaultBackendType() BackendType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.defaultBt == "" {
		return MemoryBackendType
	}
	return r.defaultBt
}

// ListRegistered returns a list of all registered backend types
func (r *registry) ListRegistered() []BackendType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]BackendType, 0, len(r.backends))
	for bt := range r.backends {
		types = append(types, bt)
	}
	return types
}

// Package level functions that delegate to defaultRegistry

// Register adds a new store backend to the registry
func Register(bt BackendType, constructor Constructor) error {
	return GetRegistry().Register(bt, constructor)
}

// SetDefault sets the default backend type
func SetDefault(bt BackendType) error {
	return GetRegistry().SetDefault(bt)
}

// Open returns a new store of the specified backend type
func Open(bt BackendType, params map[string]any) (TxStore, error) {
	if bt == "" {
		bt = GetRegistry().DefaultBackendType()
	}
	return GetRegistry().Open(bt, params)
}

// DefaultBackendType returns the current default backend type
func DefaultBackendType() BackendType {
	return GetRegistry().DefaultBackendType()
}

// ListRegistered returns a list of all registered backend types
func ListRegistered() []BackendType {
	return GetRegistry().ListRegistered()
}
