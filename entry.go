package docfs

import "time"

// Well-known content types
const (
	// MimeTypeDir marks an Entry as a directory
	MimeTypeDir = "inode/directory"
	// MimeTypeDefault is used for files whose extension has no known type
	MimeTypeDefault = "application/octet-stream"
	// MimeTypeText is the type of documents the provider creates by default
	MimeTypeText = "text/plain"
)

// Entry is a point-in-time description of one filesystem object.
// It is built fresh on every query and never cached.
type Entry struct {
	ID       string // Document identifier
	Path     string // Absolute filesystem path
	Name     string // Display name (basename)
	MimeType string
	Size     int64
	ModTime  time.Time
	Flags    Flags
}

// IsDir reports whether the entry describes a directory
func (e *Entry) IsDir() bool {
	return e.MimeType == MimeTypeDir
}

// RootSummary describes the provider's single root
type RootSummary struct {
	RootID         string   // Namespace token naming the root
	DocumentID     string   // Identifier of the root directory
	MimeTypes      []string // Content types the root accepts for new documents
	Title          string
	Summary        string
	SupportsCreate bool
	AvailableBytes uint64 // Free space measured at call time
}
