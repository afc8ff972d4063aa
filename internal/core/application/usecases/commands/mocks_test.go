package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatchdesk/internal/core/application/usecases/commands"
	"dispatchdesk/internal/core/domain/model/courier"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockSessionUoW struct{ mock.Mock }

func (m *MockSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

type fixture struct {
	repo    *MockSessionRepository
	uow     *MockSessionUoW
	factory *MockSessionUoWFactory
}

func newFixture() fixture {
	f := fixture{
		repo:    new(MockSessionRepository),
		uow:     new(MockSessionUoW),
		factory: new(MockSessionUoWFactory),
	}
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

// expectCommit sets up a unit of work that loads s, saves it and commits.
func (f fixture) expectCommit(ctx context.Context, s *session.Session) {
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("SessionRepository").Return(f.repo).Once(),
		f.repo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		f.repo.On("Update", ctx, s).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

// expectAbort sets up a unit of work that loads s and is rolled back.
func (f fixture) expectAbort(ctx context.Context, s *session.Session) {
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("SessionRepository").Return(f.repo).Once(),
		f.repo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func (f fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.repo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.NewSession(
		kernel.NewUUID(),
		courier.DefaultRoster(),
		manifest.NewMeta(time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC).Format(commands.MetaDateLayout), ""),
		80,
		40,
	)
	require.NoError(t, err)
	return s
}

func newSessionWithoutCourier(t *testing.T) *session.Session {
	t.Helper()
	empty, err := courier.NewRoster()
	require.NoError(t, err)
	s, err := session.NewSession(kernel.NewUUID(), empty, manifest.NewMeta("", ""), 80, 40)
	require.NoError(t, err)
	return s
}
