package provider

import (
	"cmp"
	"slices"
	"strings"

	"github.com/brettbedarf/docfs"
)

func sortEntries(entries []*docfs.Entry, opts docfs.ListOptions) {
	var compare func(a, b *docfs.Entry) int
	switch opts.Sort {
	case docfs.SortName:
		compare = byName
	case docfs.SortSize:
		compare = func(a, b *docfs.Entry) int {
			return cmp.Or(cmp.Compare(a.Size, b.Size), byName(a, b))
		}
	case docfs.SortModified:
		compare = func(a, b *docfs.Entry) int {
			return cmp.Or(a.ModTime.Compare(b.ModTime), byName(a, b))
		}
	default:
		return
	}
	if opts.Descending {
		asc := compare
		compare = func(a, b *docfs.Entry) int { return asc(b, a) }
	}
	slices.SortStableFunc(entries, compare)
}

// byName orders case-insensitively, falling back to byte order
func byName(a, b *docfs.Entry) int {
	return cmp.Or(
		cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
		cmp.Compare(a.Name, b.Name),
	)
}
