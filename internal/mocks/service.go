package mocks

import (
	"context"

	"github.com/brettbedarf/docfs"
	"github.com/stretchr/testify/mock"
)

// MockDocumentService implements docfs.DocumentService for testing across packages
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) RootInfo(ctx context.Context) (*docfs.RootSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docfs.RootSummary), args.Error(1)
}

func (m *MockDocumentService) Document(ctx context.Context, id string) (*docfs.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docfs.Entry), args.Error(1)
}

func (m *MockDocumentService) Children(ctx context.Context, id string, opts docfs.ListOptions) ([]*docfs.Entry, error) {
	args := m.Called(ctx, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*docfs.Entry), args.Error(1)
}

func (m *MockDocumentService) CreateDocument(ctx context.Context, parentID, mimeType, displayName string) (string, error) {
	args := m.Called(ctx, parentID, mimeType, displayName)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ docfs.DocumentService = (*MockDocumentService)(nil)
