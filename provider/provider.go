// Package provider maps a single physical directory tree onto a flat
// namespace of reversible document identifiers. Every query reads live state
// through a docfs.Storage; nothing is cached between calls.
package provider

import (
	"path/filepath"

	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/config"
	"github.com/brettbedarf/docfs/internal/util"
)

// Provider serves document queries for one root. The root and configuration
// are fixed at initialization; a Provider is safe for concurrent use.
type Provider struct {
	cfg       *config.Config
	store     docfs.Storage
	root      string
	namespace string
	defSort   docfs.ListOptions
}

var _ docfs.DocumentService = (*Provider)(nil)

// Initialize validates cfg, creates the root directory if missing and
// returns a ready Provider. Any failure is fatal and carries CodeInitFailed.
func Initialize(cfg *config.Config, store docfs.Storage) (*Provider, error) {
	logger := util.GetLogger("Initialize")

	if err := cfg.Validate(); err != nil {
		return nil, docfs.InitFailed(err, "invalid configuration")
	}
	defSort, err := docfs.ParseSort(cfg.DefaultSort)
	if err != nil {
		return nil, docfs.InitFailed(err, "invalid default sort")
	}

	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, docfs.InitFailed(err, "resolve root %s", cfg.Dir)
	}
	if err := store.MkdirAll(root, 0o755); err != nil {
		logger.Error().Err(err).Str("root", root).Msg("Failed to create root directory")
		return nil, docfs.InitFailed(err, "create root %s", root)
	}
	info, err := store.Stat(root)
	if err != nil {
		return nil, docfs.InitFailed(err, "stat root %s", root)
	}
	if !info.IsDir() {
		return nil, docfs.InitFailed(nil, "root %s is not a directory", root)
	}

	logger.Info().Str("root", root).Str("namespace", cfg.Namespace).Msg("Document provider ready")
	return &Provider{
		cfg:       cfg,
		store:     store,
		root:      root,
		namespace: cfg.Namespace,
		defSort:   defSort,
	}, nil
}

// Root returns the absolute root path
func (p *Provider) Root() string {
	return p.root
}

// Namespace returns the identifier prefix naming the root
func (p *Provider) Namespace() string {
	return p.namespace
}
