package docfs

import "strings"

// Flags describes which operations are legal on an Entry
type Flags uint8

const (
	// FlagDirSupportsCreate is set on writable directories
	FlagDirSupportsCreate Flags = 1 << iota
	// FlagSupportsWrite is set on writable regular files
	FlagSupportsWrite
	// FlagSupportsDelete is set on writable regular files
	FlagSupportsDelete
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagDirSupportsCreate, "supports-create-child"},
	{FlagSupportsWrite, "supports-write"},
	{FlagSupportsDelete, "supports-delete"},
}

// Has reports whether every bit of flag is set
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Names returns the set flags in declaration order; empty for no flags
func (f Flags) Names() []string {
	names := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return names
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}
