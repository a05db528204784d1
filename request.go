package docfs

import (
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
)

// SortKey selects the field a child listing is ordered by
type SortKey string

// Valid sort keys. SortNone keeps the storage's native enumeration order.
const (
	SortNone     SortKey = ""
	SortName     SortKey = "name"
	SortSize     SortKey = "size"
	SortModified SortKey = "modified"
)

// ListOptions tunes a child listing
type ListOptions struct {
	Sort       SortKey
	Descending bool
}

// ParseSort parses a sort expression such as "name", "-size" or "modified".
// A leading '-' requests descending order. The empty string means no sort.
func ParseSort(expr string) (ListOptions, error) {
	expr = strings.TrimSpace(expr)
	var opts ListOptions
	if strings.HasPrefix(expr, "-") {
		opts.Descending = true
		expr = expr[1:]
	}
	switch key := SortKey(strings.ToLower(expr)); key {
	case SortNone:
		if opts.Descending {
			return ListOptions{}, platformerrors.New(platformerrors.CodeInvalidInput, "sort key missing after '-'")
		}
		return opts, nil
	case SortName, SortSize, SortModified:
		opts.Sort = key
		return opts, nil
	default:
		return ListOptions{}, platformerrors.Newf(platformerrors.CodeInvalidInput, "unknown sort key %q", expr)
	}
}

func (o ListOptions) String() string {
	if o.Sort == SortNone {
		return ""
	}
	if o.Descending {
		return "-" + string(o.Sort)
	}
	return string(o.Sort)
}
