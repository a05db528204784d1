package provider

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/internal/util"
	platformerrors "github.com/jmgilman/go/errors"
)

// maxNameAttempts bounds the " (N)" suffixes tried on a name collision
const maxNameAttempts = 32

// CreateDocument creates an empty document named displayName under the
// directory parentID and returns its identifier. A directory MIME type makes
// a directory. Colliding names get a numeric suffix before the extension.
func (p *Provider) CreateDocument(ctx context.Context, parentID, mimeType, displayName string) (string, error) {
	logger := util.GetLogger("CreateDocument")
	logger.Trace().Str("parentID", parentID).Str("mimeType", mimeType).Str("name", displayName).Msg("CreateDocument called")

	if err := ctx.Err(); err != nil {
		return "", docfs.Canceled(err)
	}
	if err := validateName(displayName); err != nil {
		return "", err
	}
	dir, info, err := p.resolve(parentID)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", docfs.NotADirectoryf("document %s is not a directory", parentID)
	}
	flags, err := p.flags(dir, info)
	if err != nil {
		return "", err
	}
	if !flags.Has(docfs.FlagDirSupportsCreate) {
		return "", docfs.Deniedf("directory %s does not accept new documents", parentID)
	}

	for n := range maxNameAttempts + 1 {
		path := filepath.Join(dir, candidateName(displayName, n))
		if mimeType == docfs.MimeTypeDir {
			err = p.store.Mkdir(path, 0o755)
		} else {
			err = p.store.CreateFile(path, 0o644)
		}
		err = docfs.ClassifyFSError(err, "create", path)
		if platformerrors.GetCode(err) == platformerrors.CodeAlreadyExists {
			logger.Debug().Str("path", path).Msg("Name taken, trying next")
			continue
		}
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Create failed")
			return "", err
		}
		id, err := p.IDForPath(path)
		if err != nil {
			return "", err
		}
		logger.Info().Str("id", id).Str("path", path).Msg("Created document")
		return id, nil
	}
	return "", platformerrors.Newf(platformerrors.CodeAlreadyExists,
		"no free name for %q in %s after %d attempts", displayName, parentID, maxNameAttempts)
}

// DeleteDocument removes the document id. Only writable regular files can
// be deleted.
func (p *Provider) DeleteDocument(ctx context.Context, id string) error {
	logger := util.GetLogger("DeleteDocument")
	logger.Trace().Str("id", id).Msg("DeleteDocument called")

	if err := ctx.Err(); err != nil {
		return docfs.Canceled(err)
	}
	path, info, err := p.resolve(id)
	if err != nil {
		return err
	}
	entry, err := p.describe(path, info)
	if err != nil {
		return err
	}
	if !entry.Flags.Has(docfs.FlagSupportsDelete) {
		return docfs.Deniedf("document %s does not support delete", id)
	}
	if err := p.store.Remove(path); err != nil {
		logger.Debug().Err(err).Str("id", id).Str("path", path).Msg("Remove failed")
		return docfs.ClassifyFSError(err, "remove", id)
	}
	logger.Info().Str("id", id).Str("path", path).Msg("Deleted document")
	return nil
}

func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return platformerrors.Newf(platformerrors.CodeInvalidInput, "invalid display name %q", name)
	case strings.ContainsAny(name, `/`+string(filepath.Separator)), strings.ContainsRune(name, 0):
		return platformerrors.Newf(platformerrors.CodeInvalidInput, "display name %q must be a single path element", name)
	}
	return nil
}

// candidateName returns name for n == 0 and "base (n).ext" otherwise.
// A leading dot does not start an extension.
func candidateName(name string, n int) string {
	if n == 0 {
		return name
	}
	ext := filepath.Ext(name)
	if ext == name {
		ext = ""
	}
	return fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(name, ext), n, ext)
}
