package storage

import (
	"fmt"
	"sort"

	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/config"
	"github.com/puzpuzpuz/xsync/v4"
)

// Factory builds a storage backend from the runtime configuration
type Factory func(cfg *config.Config) (docfs.Storage, error)

// Registry maps backend names to their factories. Safe for concurrent use.
type Registry struct {
	factories *xsync.Map[string, Factory]
}

func NewRegistry() *Registry {
	return &Registry{
		factories: xsync.NewMap[string, Factory](),
	}
}

// Register ties a factory to a backend name. The first registration for a
// name wins; later ones are ignored.
func (r *Registry) Register(name string, f Factory) {
	r.factories.LoadOrStore(name, f)
}

// Get returns the factory registered under name
func (r *Registry) Get(name string) (Factory, error) {
	f, ok := r.factories.Load(name)
	if !ok {
		return nil, fmt.Errorf("no storage backend registered as %q", name)
	}
	return f, nil
}

// Open builds the backend named by cfg.Storage
func (r *Registry) Open(cfg *config.Config) (docfs.Storage, error) {
	f, err := r.Get(cfg.Storage)
	if err != nil {
		return nil, err
	}
	return f(cfg)
}

// Names lists registered backend names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, r.factories.Size())
	r.factories.Range(func(name string, _ Factory) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Register adds a factory to the package default registry
func Register(name string, f Factory) {
	defaultRegistry.Register(name, f)
}

// Open builds cfg.Storage from the package default registry
func Open(cfg *config.Config) (docfs.Storage, error) {
	return defaultRegistry.Open(cfg)
}

// Names lists the backends in the package default registry
func Names() []string {
	return defaultRegistry.Names()
}
