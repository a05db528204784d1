package provider

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/internal/util"
)

// RootID returns the identifier of the root directory
func (p *Provider) RootID() string {
	return p.namespace + ":"
}

// IDForPath returns the identifier for path, which must be the root or one of
// its descendants. The path is not normalized.
func (p *Provider) IDForPath(path string) (string, error) {
	if path == p.root {
		return p.RootID(), nil
	}
	prefix := p.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(path, prefix) {
		return "", docfs.NotFoundf("path %s is outside root %s", path, p.root)
	}
	return p.namespace + ":" + filepath.ToSlash(path[len(prefix):]), nil
}

// PathForID returns the absolute path for id. The path must exist.
func (p *Provider) PathForID(id string) (string, error) {
	path, _, err := p.resolve(id)
	return path, err
}

// resolve decodes id and stats the resulting path
func (p *Provider) resolve(id string) (string, fs.FileInfo, error) {
	logger := util.GetLogger("Resolve")

	path, err := p.decode(id)
	if err != nil {
		logger.Debug().Err(err).Str("id", id).Msg("Malformed identifier")
		return "", nil, err
	}
	info, err := p.store.Stat(path)
	if err != nil {
		logger.Debug().Err(err).Str("id", id).Str("path", path).Msg("Stat failed")
		return "", nil, docfs.ClassifyFSError(err, "stat", id)
	}
	logger.Trace().Str("id", id).Str("path", path).Msg("Resolved")
	return path, info, nil
}

func (p *Provider) decode(id string) (string, error) {
	if id == p.namespace {
		return p.root, nil
	}
	if id == "" {
		return "", docfs.NotFoundf("empty document id")
	}
	// the prefix is never empty, so the delimiter is searched from index 1
	split := strings.IndexByte(id[1:], ':')
	if split < 0 {
		return "", docfs.NotFoundf("missing root for %s", id)
	}
	split++
	if id[:split] != p.namespace {
		return "", docfs.NotFoundf("unknown root %q in %s", id[:split], id)
	}

	rel := id[split+1:]
	if rel == "" {
		return p.root, nil
	}
	path := filepath.Join(p.root, filepath.FromSlash(rel))
	if !p.contains(path) {
		return "", docfs.NotFoundf("document %s escapes root", id)
	}
	return path, nil
}

func (p *Provider) contains(path string) bool {
	if path == p.root {
		return true
	}
	prefix := p.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
