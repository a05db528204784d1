package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"golang.org/x/sys/unix"
)

// Local is the host filesystem backend. Metadata and mutations go through
// billy's osfs rooted at "/". Listing uses os.ReadDir directly so that a
// vanished entry does not fail the directory. Permission and volume queries
// use unix syscalls.
type Local struct {
	bfs billy.Filesystem
}

func NewLocal() *Local {
	return &Local{bfs: osfs.New("/")}
}

func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

func (l *Local) Stat(path string) (fs.FileInfo, error) {
	return l.bfs.Stat(normalize(path))
}

// ReadDir lists path sorted by name. Entries removed between reading
// the directory and stating them are skipped.
func (l *Local) ReadDir(path string) ([]fs.FileInfo, error) {
	entries, err := os.ReadDir(normalize(path))
	if err != nil {
		return nil, err
	}
	infos := make([]fs.FileInfo, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Writable asks the kernel whether the effective user may write to path.
// A path that exists but denies writing is not an error.
func (l *Local) Writable(path string) (bool, error) {
	err := unix.Access(normalize(path), unix.W_OK)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EROFS), errors.Is(err, unix.EPERM):
		return false, nil
	default:
		return false, &fs.PathError{Op: "access", Path: path, Err: err}
	}
}

func (l *Local) FreeSpace(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(normalize(path), &st); err != nil {
		return 0, &fs.PathError{Op: "statfs", Path: path, Err: err}
	}
	return st.Bavail * uint64(st.Bsize), nil //nolint:gosec // block size is never negative
}

func (l *Local) MkdirAll(path string, perm fs.FileMode) error {
	return l.bfs.MkdirAll(normalize(path), perm)
}

// Mkdir creates a single directory. Unlike MkdirAll it fails when the parent
// is missing or the path already exists.
func (l *Local) Mkdir(path string, perm fs.FileMode) error {
	path = normalize(path)
	if _, err := l.bfs.Lstat(path); err == nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	if _, err := l.bfs.Stat(filepath.Dir(path)); err != nil {
		return err
	}
	return l.bfs.MkdirAll(path, perm)
}

func (l *Local) CreateFile(path string, perm fs.FileMode) error {
	f, err := l.bfs.OpenFile(normalize(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	return f.Close()
}

func (l *Local) Remove(path string) error {
	return l.bfs.Remove(normalize(path))
}
