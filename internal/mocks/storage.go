package mocks

import (
	"io/fs"
	"time"

	"github.com/brettbedarf/docfs"
	"github.com/stretchr/testify/mock"
)

// MockStorage implements docfs.Storage for testing across packages
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Stat(path string) (fs.FileInfo, error) {
	args := m.Called(path)

	// Handle function return types (for per-call behaviour)
	if fn, ok := args.Get(0).(func(string) fs.FileInfo); ok {
		return fn(path), args.Error(1)
	}

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(fs.FileInfo), args.Error(1)
}

func (m *MockStorage) ReadDir(path string) ([]fs.FileInfo, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fs.FileInfo), args.Error(1)
}

func (m *MockStorage) Writable(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) FreeSpace(path string) (uint64, error) {
	args := m.Called(path)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockStorage) MkdirAll(path string, perm fs.FileMode) error {
	return m.Called(path, perm).Error(0)
}

func (m *MockStorage) Mkdir(path string, perm fs.FileMode) error {
	return m.Called(path, perm).Error(0)
}

func (m *MockStorage) CreateFile(path string, perm fs.FileMode) error {
	return m.Called(path, perm).Error(0)
}

func (m *MockStorage) Remove(path string) error {
	return m.Called(path).Error(0)
}

var _ docfs.Storage = (*MockStorage)(nil)

// FileInfo is a static fs.FileInfo for feeding MockStorage
type FileInfo struct {
	FName    string
	FSize    int64
	FMode    fs.FileMode
	FModTime time.Time
}

func (fi FileInfo) Name() string       { return fi.FName }
func (fi FileInfo) Size() int64        { return fi.FSize }
func (fi FileInfo) Mode() fs.FileMode  { return fi.FMode }
func (fi FileInfo) ModTime() time.Time { return fi.FModTime }
func (fi FileInfo) IsDir() bool        { return fi.FMode.IsDir() }
func (fi FileInfo) Sys() any           { return nil }

var _ fs.FileInfo = FileInfo{}
