package provider

import (
	"io/fs"

	"github.com/brettbedarf/docfs"
)

// deriveFlags maps writability and file type onto capability flags.
// Anything that is neither a directory nor a regular file gets none.
func deriveFlags(writable bool, mode fs.FileMode) docfs.Flags {
	if !writable {
		return 0
	}
	switch {
	case mode.IsDir():
		return docfs.FlagDirSupportsCreate
	case mode.IsRegular():
		return docfs.FlagSupportsWrite | docfs.FlagSupportsDelete
	default:
		return 0
	}
}

// FlagsFor returns the capability flags for an existing path
func (p *Provider) FlagsFor(path string) (docfs.Flags, error) {
	info, err := p.store.Stat(path)
	if err != nil {
		return 0, docfs.ClassifyFSError(err, "stat", path)
	}
	return p.flags(path, info)
}

func (p *Provider) flags(path string, info fs.FileInfo) (docfs.Flags, error) {
	writable, err := p.store.Writable(path)
	if err != nil {
		return 0, docfs.ClassifyFSError(err, "access", path)
	}
	return deriveFlags(writable, info.Mode()), nil
}
