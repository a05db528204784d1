package storage

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// Memory is an in-process backend used for tests and ephemeral roots.
// Writability follows the owner write bit and free space is the configured
// capacity minus the bytes currently stored.
type Memory struct {
	bfs      billy.Filesystem
	capacity uint64
	mu       sync.Mutex // serialises exclusive creation
}

func NewMemory(capacity uint64) *Memory {
	return &Memory{bfs: memfs.New(), capacity: capacity}
}

func (m *Memory) Stat(path string) (fs.FileInfo, error) {
	return m.bfs.Stat(normalize(path))
}

func (m *Memory) ReadDir(path string) ([]fs.FileInfo, error) {
	path = normalize(path)
	info, err := m.bfs.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrInvalid}
	}
	return m.bfs.ReadDir(path)
}

func (m *Memory) Writable(path string) (bool, error) {
	info, err := m.bfs.Stat(normalize(path))
	if err != nil {
		return false, err
	}
	return info.Mode().Perm()&0o200 != 0, nil
}

func (m *Memory) FreeSpace(string) (uint64, error) {
	var used uint64
	err := util.Walk(m.bfs, "/", func(_ string, info fs.FileInfo, err error) error {
		if err != nil {
			// an empty filesystem has no root entry yet
			return nil
		}
		if info.Mode().IsRegular() {
			used += uint64(info.Size()) //nolint:gosec // sizes are never negative
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if used >= m.capacity {
		return 0, nil
	}
	return m.capacity - used, nil
}

func (m *Memory) MkdirAll(path string, perm fs.FileMode) error {
	return m.bfs.MkdirAll(normalize(path), perm)
}

func (m *Memory) Mkdir(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = normalize(path)
	if _, err := m.bfs.Stat(path); err == nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	if err := m.parentDir(path); err != nil {
		return err
	}
	return m.bfs.MkdirAll(path, perm)
}

func (m *Memory) CreateFile(path string, perm fs.FileMode) error {
	return m.WriteFile(path, nil, perm)
}

// WriteFile creates path holding data. It fails with fs.ErrExist if path
// exists and does not create missing parents.
func (m *Memory) WriteFile(path string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = normalize(path)
	if _, err := m.bfs.Stat(path); err == nil {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrExist}
	}
	if err := m.parentDir(path); err != nil {
		return err
	}
	f, err := m.bfs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if len(data) > 0 {
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return err
		}
	}
	return f.Close()
}

func (m *Memory) Remove(path string) error {
	return m.bfs.Remove(normalize(path))
}

func (m *Memory) parentDir(path string) error {
	parent := filepath.Dir(path)
	if parent == "/" {
		return nil
	}
	info, err := m.bfs.Stat(parent)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return nil
}
