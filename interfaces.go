// Package docfs contains core domain types and interfaces for a file-backed
// document provider that exposes a directory tree as a flat namespace of
// opaque document identifiers.
package docfs

import (
	"context"
	"io/fs"
)

// Storage isolates every filesystem call made by the provider so the
// identifier logic never touches the OS directly. All paths are absolute.
//
// Implementations must report failures that satisfy errors.Is against
// fs.ErrNotExist, fs.ErrExist and fs.ErrPermission where applicable.
type Storage interface {
	// Stat returns metadata for path, following symbolic links
	Stat(path string) (fs.FileInfo, error)

	// ReadDir returns the immediate children of the directory at path.
	// Ordering is whatever the backend natively produces
	ReadDir(path string) ([]fs.FileInfo, error)

	// Writable reports whether the calling process may write to path
	Writable(path string) (bool, error)

	// FreeSpace returns the bytes available to the process on the volume holding path
	FreeSpace(path string) (uint64, error)

	// MkdirAll creates path and any missing parents; no-op if it already exists
	MkdirAll(path string, perm fs.FileMode) error

	// Mkdir creates a single directory and fails with fs.ErrExist if path exists
	Mkdir(path string, perm fs.FileMode) error

	// CreateFile creates an empty regular file and fails with fs.ErrExist if path exists
	CreateFile(path string, perm fs.FileMode) error

	// Remove removes a file or empty directory
	Remove(path string) error
}

// DocumentService is the document-service boundary consumed by the HTTP
// server and the CLI
type DocumentService interface {
	RootInfo(ctx context.Context) (*RootSummary, error)
	Document(ctx context.Context, id string) (*Entry, error)
	Children(ctx context.Context, id string, opts ListOptions) ([]*Entry, error)
	CreateDocument(ctx context.Context, parentID, mimeType, displayName string) (string, error)
	DeleteDocument(ctx context.Context, id string) error
}
