package session_test

import (
	"testing"

	"dispatchdesk/internal/core/domain/model/courier"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/domain/model/signature"
	"dispatchdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, roster courier.Roster) *session.Session {
	t.Helper()
	s, err := session.NewSession(kernel.NewUUID(), roster, manifest.NewMeta("19.10.2026", ""), 100, 40)
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	t.Run("should select the first roster courier", func(t *testing.T) {
		s := newSession(t, courier.DefaultRoster())

		name, ok := s.SelectedCourier()
		require.True(t, ok)
		assert.Equal(t, "Ulug'bek Nuriyev", name)
		assert.Equal(t, 0, s.Manifest().Len())
		require.NoError(t, s.Validate())
	})

	t.Run("should start without a courier for an empty roster", func(t *testing.T) {
		empty, err := courier.NewRoster()
		require.NoError(t, err)
		s := newSession(t, empty)

		_, err = s.RequireCourier()
		require.ErrorIs(t, err, session.ErrNoCourierSelected)
	})

	t.Run("should create two blank pads", func(t *testing.T) {
		s := newSession(t, courier.DefaultRoster())

		for _, kind := range signature.Kinds() {
			pad, err := s.Pad(kind)
			require.NoError(t, err)
			assert.Nil(t, pad.Capture())
		}
	})

	t.Run("should reject invalid arguments", func(t *testing.T) {
		_, err := session.NewSession(kernel.UUID{}, courier.Roster{}, manifest.Meta{}, 10, 10)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, courier.ErrRosterIsNotConstructed)
	})

	t.Run("should reject an invalid pad size", func(t *testing.T) {
		_, err := session.NewSession(kernel.NewUUID(), courier.DefaultRoster(), manifest.Meta{}, 0, 10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestSession_SelectCourier(t *testing.T) {
	t.Run("should switch selection", func(t *testing.T) {
		s := newSession(t, courier.DefaultRoster())

		name, err := s.SelectCourier("Nomonjon")

		require.NoError(t, err)
		assert.Equal(t, "Nomonjon", name)
		current, _ := s.SelectedCourier()
		assert.Equal(t, "Nomonjon", current)
	})

	t.Run("should keep selection on unknown courier", func(t *testing.T) {
		s := newSession(t, courier.DefaultRoster())

		_, err := s.SelectCourier("Nobody")

		require.ErrorIs(t, err, courier.ErrUnknownCourier)
		current, _ := s.SelectedCourier()
		assert.Equal(t, "Ulug'bek Nuriyev", current)
	})

	t.Run("should not rewrite existing rows", func(t *testing.T) {
		s := newSession(t, courier.DefaultRoster())
		first, _ := s.SelectedCourier()
		s.Manifest().Add(manifest.NewPackageRecord("A1", "", "", "", kernel.ZeroAmount, first))

		_, err := s.SelectCourier("Nomonjon")
		require.NoError(t, err)

		assert.Equal(t, first, s.Manifest().Records()[0].Courier())
	})
}

func TestSession_Pad(t *testing.T) {
	s := newSession(t, courier.DefaultRoster())

	_, err := s.Pad("witness")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSession_Meta(t *testing.T) {
	s := newSession(t, courier.DefaultRoster())

	s.SetMeta(manifest.NewMeta("20.10.2026", "evening"))

	assert.Equal(t, "20.10.2026", s.Meta().Date())
	assert.Equal(t, "evening", s.Meta().Note())
}
