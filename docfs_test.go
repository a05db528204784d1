package docfs

import (
	"context"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags_Names(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags Flags
		want  []string
		str   string
	}{
		{"empty", 0, []string{}, "none"},
		{"dir", FlagDirSupportsCreate, []string{"supports-create-child"}, "supports-create-child"},
		{"file", FlagSupportsWrite | FlagSupportsDelete, []string{"supports-write", "supports-delete"}, "supports-write|supports-delete"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.flags.Names())
			assert.Equal(t, tt.str, tt.flags.String())
		})
	}
}

func TestFlags_Has(t *testing.T) {
	t.Parallel()

	f := FlagSupportsWrite | FlagSupportsDelete
	assert.True(t, f.Has(FlagSupportsWrite))
	assert.True(t, f.Has(FlagSupportsWrite|FlagSupportsDelete))
	assert.False(t, f.Has(FlagDirSupportsCreate))
	assert.False(t, f.Has(FlagSupportsWrite|FlagDirSupportsCreate), "must require every bit")
}

func TestClassifyFSError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want platformerrors.ErrorCode
	}{
		{"not exist", &fs.PathError{Op: "stat", Path: "/x", Err: fs.ErrNotExist}, platformerrors.CodeNotFound},
		{"enoent", &fs.PathError{Op: "stat", Path: "/x", Err: syscall.ENOENT}, platformerrors.CodeNotFound},
		{"enotdir", &fs.PathError{Op: "stat", Path: "/x/y", Err: syscall.ENOTDIR}, platformerrors.CodeNotFound},
		{"symlink loop", &fs.PathError{Op: "stat", Path: "/x", Err: syscall.ELOOP}, platformerrors.CodeNotFound},
		{"permission", &fs.PathError{Op: "stat", Path: "/x", Err: syscall.EACCES}, platformerrors.CodeForbidden},
		{"exist", fs.ErrExist, platformerrors.CodeAlreadyExists},
		{"other", fmt.Errorf("disk on fire"), platformerrors.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ClassifyFSError(tt.err, "stat", "/x")
			require.Error(t, err)
			assert.Equal(t, tt.want, platformerrors.GetCode(err))
			assert.ErrorIs(t, err, tt.err, "must keep the cause in the chain")
		})
	}
}

func TestClassifyFSError_PassThrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ClassifyFSError(nil, "stat", "/x"))

	orig := NotADirectoryf("nope")
	assert.Same(t, orig, ClassifyFSError(orig, "stat", "/x"), "classified errors must not be rewrapped")
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(NotFoundf("missing %s", "a")))
	assert.True(t, IsDenied(Deniedf("no")))
	assert.True(t, IsNotADirectory(NotADirectoryf("file")))
	assert.True(t, IsInitFailed(InitFailed(nil, "root")))
	assert.True(t, IsInitFailed(InitFailed(fs.ErrPermission, "root")))

	assert.False(t, IsNotFound(fmt.Errorf("plain")))
	assert.False(t, IsDenied(NotFoundf("missing")))
	assert.False(t, IsCanceled(NotFoundf("missing")))
}

func TestCanceled(t *testing.T) {
	t.Parallel()

	err := Canceled(context.Canceled)
	assert.Equal(t, CodeCanceled, platformerrors.GetCode(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, IsCanceled(err))

	err = Canceled(context.DeadlineExceeded)
	assert.Equal(t, platformerrors.CodeTimeout, platformerrors.GetCode(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, IsCanceled(err))
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr    string
		want    ListOptions
		wantErr bool
	}{
		{"", ListOptions{}, false},
		{"name", ListOptions{Sort: SortName}, false},
		{"-size", ListOptions{Sort: SortSize, Descending: true}, false},
		{" Modified ", ListOptions{Sort: SortModified}, false},
		{"-", ListOptions{}, true},
		{"owner", ListOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSort(tt.expr)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestEntry_IsDir(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Entry{MimeType: MimeTypeDir}).IsDir())
	assert.False(t, (&Entry{MimeType: MimeTypeText}).IsDir())
}
