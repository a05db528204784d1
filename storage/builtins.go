package storage

import (
	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/config"
)

type BuiltInType = string

const (
	LocalType  BuiltInType = "local"
	MemoryType BuiltInType = "memory"
)

// RegisterBuiltins registers all built-in backends by default
// or only the specific ones if names are provided
func RegisterBuiltins(names ...BuiltInType) {
	if len(names) == 0 {
		names = append(names, LocalType, MemoryType)
	}

	for _, name := range names {
		switch name {
		case LocalType:
			Register(LocalType, func(*config.Config) (docfs.Storage, error) {
				return NewLocal(), nil
			})
		case MemoryType:
			Register(MemoryType, func(cfg *config.Config) (docfs.Storage, error) {
				return NewMemory(cfg.MemoryCapacity), nil
			})
		}
	}
}
