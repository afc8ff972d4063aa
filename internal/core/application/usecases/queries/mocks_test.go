package queries_test

import (
	"context"
	"testing"

	"dispatchdesk/internal/core/domain/model/courier"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionReader struct{ mock.Mock }

func (m *MockSessionReader) View(ctx context.Context, id kernel.UUID, fn func(*session.Session) error) error {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return err
	}
	return fn(args.Get(0).(*session.Session))
}

type MockDocumentRenderer struct{ mock.Mock }

func (m *MockDocumentRenderer) RenderManifest(ctx context.Context, doc ports.ManifestDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

type MockSpreadsheetRenderer struct{ mock.Mock }

func (m *MockSpreadsheetRenderer) RenderWorkbook(ctx context.Context, doc ports.WorkbookDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

type MockClipboard struct{ mock.Mock }

func (m *MockClipboard) ReadText(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func amount(t *testing.T, v int) kernel.Amount {
	t.Helper()
	a, err := kernel.NewAmount(v)
	require.NoError(t, err)
	return a
}

// newSession returns a session with Nomonjon selected and three rows, two of
// them Nomonjon's.
func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.NewSession(
		kernel.NewUUID(),
		courier.DefaultRoster(),
		manifest.NewMeta("19.10.2026, 09:30:00", ""),
		80,
		40,
	)
	require.NoError(t, err)
	_, err = s.SelectCourier("Nomonjon")
	require.NoError(t, err)

	s.Manifest().Add(
		manifest.NewPackageRecord("A1", "John Doe", "+998901234567", "Tashkent St 5", amount(t, 15000), "Nomonjon"),
		manifest.NewPackageRecord("B2", "Jane", "998900000000", "Samarkand", amount(t, 7500), "Muzaffar Aliyev"),
		manifest.NewPackageRecord("C3", "Olim", "90", "Bukhara", amount(t, 2500), "Nomonjon"),
	)
	return s
}

func viewing(s *session.Session) *MockSessionReader {
	reader := new(MockSessionReader)
	reader.On("View", mock.Anything, s.ID()).Return(s, nil)
	return reader
}
