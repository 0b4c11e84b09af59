package testutil

import (
	"context"

	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/repository"

	"github.com/stretchr/testify/mock"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Save(ctx context.Context, collection, ownerID string, doc model.Document, mode repository.SaveMode) error {
	args := m.Called(ctx, collection, ownerID, doc, mode)
	return args.Error(0)
}

func (m *MockDocumentStore) Delete(ctx context.Context, collection, ownerID, id string) error {
	args := m.Called(ctx, collection, ownerID, id)
	return args.Error(0)
}

// List fills results through a Run hook set by the test, if any.
func (m *MockDocumentStore) List(ctx context.Context, collection, ownerID string, results any) error {
	args := m.Called(ctx, collection, ownerID, results)
	return args.Error(0)
}

func (m *MockDocumentStore) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
