package provider

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/internal/util"
	"golang.org/x/sync/errgroup"
)

// Document returns a fresh Entry for id
func (p *Provider) Document(ctx context.Context, id string) (*docfs.Entry, error) {
	logger := util.GetLogger("Document")
	logger.Trace().Str("id", id).Msg("Document called")

	if err := ctx.Err(); err != nil {
		return nil, docfs.Canceled(err)
	}
	path, info, err := p.resolve(id)
	if err != nil {
		return nil, err
	}
	return p.describe(path, info)
}

// Children lists the immediate children of the directory id. Children that
// disappear while the listing runs are left out. Without an explicit sort the
// configured default applies, and without that the storage order is kept.
func (p *Provider) Children(ctx context.Context, id string, opts docfs.ListOptions) ([]*docfs.Entry, error) {
	logger := util.GetLogger("Children")
	logger.Trace().Str("id", id).Stringer("sort", opts).Msg("Children called")

	if err := ctx.Err(); err != nil {
		return nil, docfs.Canceled(err)
	}
	dir, info, err := p.resolve(id)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, docfs.NotADirectoryf("document %s is not a directory", id)
	}
	infos, err := p.store.ReadDir(dir)
	if err != nil {
		logger.Debug().Err(err).Str("id", id).Str("path", dir).Msg("ReadDir failed")
		return nil, docfs.ClassifyFSError(err, "readdir", id)
	}

	slots := make([]*docfs.Entry, len(infos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.StatWorkers)
	for i, child := range infos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return docfs.Canceled(err)
			}
			path := filepath.Join(dir, child.Name())
			entry, err := p.describePath(path)
			if docfs.IsNotFound(err) {
				logger.Debug().Str("path", path).Msg("Child vanished during listing")
				return nil
			}
			if err != nil {
				return err
			}
			slots[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := slots[:0]
	for _, e := range slots {
		if e != nil {
			entries = append(entries, e)
		}
	}
	if opts.Sort == docfs.SortNone {
		opts = p.defSort
	}
	sortEntries(entries, opts)
	logger.Debug().Str("id", id).Int("count", len(entries)).Msg("Listed children")
	return entries, nil
}

// RootInfo describes the single root. Free space is measured on every call.
func (p *Provider) RootInfo(ctx context.Context) (*docfs.RootSummary, error) {
	logger := util.GetLogger("RootInfo")

	if err := ctx.Err(); err != nil {
		return nil, docfs.Canceled(err)
	}
	info, err := p.store.Stat(p.root)
	if err != nil {
		return nil, docfs.ClassifyFSError(err, "stat", p.root)
	}
	flags, err := p.flags(p.root, info)
	if err != nil {
		return nil, err
	}
	free, err := p.store.FreeSpace(p.root)
	if err != nil {
		logger.Debug().Err(err).Str("root", p.root).Msg("FreeSpace failed")
		return nil, docfs.ClassifyFSError(err, "statfs", p.root)
	}

	return &docfs.RootSummary{
		RootID:         p.namespace,
		DocumentID:     p.RootID(),
		MimeTypes:      append([]string(nil), p.cfg.MimeTypes...),
		Title:          p.cfg.Title,
		Summary:        p.cfg.Summary,
		SupportsCreate: flags.Has(docfs.FlagDirSupportsCreate),
		AvailableBytes: free,
	}, nil
}

func (p *Provider) describePath(path string) (*docfs.Entry, error) {
	info, err := p.store.Stat(path)
	if err != nil {
		return nil, docfs.ClassifyFSError(err, "stat", path)
	}
	return p.describe(path, info)
}

func (p *Provider) describe(path string, info fs.FileInfo) (*docfs.Entry, error) {
	id, err := p.IDForPath(path)
	if err != nil {
		return nil, err
	}
	flags, err := p.flags(path, info)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	return &docfs.Entry{
		ID:       id,
		Path:     path,
		Name:     name,
		MimeType: mimeTypeFor(name, info),
		Size:     info.Size(),
		ModTime:  info.ModTime(),
		Flags:    flags,
	}, nil
}
