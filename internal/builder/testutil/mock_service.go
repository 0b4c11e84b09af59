package testutil

import (
	"context"

	"dashbuilder/internal/builder/dispatch"
	"dashbuilder/internal/builder/model"

	"github.com/stretchr/testify/mock"
)

type MockBuilderService struct {
	mock.Mock
}

func (m *MockBuilderService) OpenSession(ctx context.Context, user model.UserContext) (*model.SessionResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionResponse), args.Error(1)
}

func (m *MockBuilderService) CloseSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockBuilderService) Dispatch(ctx context.Context, sessionID string, ev dispatch.Event) error {
	args := m.Called(ctx, sessionID, ev)
	return args.Error(0)
}

func (m *MockBuilderService) Snapshot(ctx context.Context, sessionID, cell string) (any, error) {
	args := m.Called(ctx, sessionID, cell)
	return args.Get(0), args.Error(1)
}

func (m *MockBuilderService) Derived(ctx context.Context, sessionID, name string) (any, error) {
	args := m.Called(ctx, sessionID, name)
	return args.Get(0), args.Error(1)
}

func (m *MockBuilderService) Save(ctx context.Context, sessionID string, req model.SaveReq) (model.Document, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockBuilderService) Load(ctx context.Context, sessionID, collection string) (int, error) {
	args := m.Called(ctx, sessionID, collection)
	return args.Int(0), args.Error(1)
}

func (m *MockBuilderService) Delete(ctx context.Context, sessionID, collection, id string) error {
	args := m.Called(ctx, sessionID, collection, id)
	return args.Error(0)
}

func (m *MockBuilderService) DuplicateDashboard(ctx context.Context, sessionID, dashboardID string) (*model.Dashboard, error) {
	args := m.Called(ctx, sessionID, dashboardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}

func (m *MockBuilderService) Events() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
