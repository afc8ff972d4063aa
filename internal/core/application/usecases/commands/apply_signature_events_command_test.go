package commands_test

import (
	"testing"

	"dispatchdesk/internal/core/application/usecases/commands"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/signature"
	"dispatchdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stroke = []signature.Event{
	{Type: signature.Down, Point: signature.Point{X: 5, Y: 5}},
	{Type: signature.Move, Point: signature.Point{X: 60, Y: 30}},
	{Type: signature.Up},
}

func TestNewApplySignatureEventsCommand(t *testing.T) {
	t.Run("should reject unknown pad", func(t *testing.T) {
		_, err := commands.NewApplySignatureEventsCommand(kernel.NewUUID(), "witness", stroke)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty batch", func(t *testing.T) {
		_, err := commands.NewApplySignatureEventsCommand(kernel.NewUUID(), "courier", nil)

		require.ErrorIs(t, err, commands.ErrNoSignatureEvents)
	})

	t.Run("should reject unknown event before drawing", func(t *testing.T) {
		events := append([]signature.Event{}, stroke...)
		events = append(events, signature.Event{Type: "hover"})

		_, err := commands.NewApplySignatureEventsCommand(kernel.NewUUID(), "courier", events)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestApplySignatureEventsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	s := newSession(t)
	cmd, err := commands.NewApplySignatureEventsCommand(s.ID(), "receiver", stroke)
	require.NoError(t, err)
	f := newFixture()
	f.expectCommit(ctx, s)

	err = commands.NewApplySignatureEventsCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	receiver, _ := s.Pad(signature.Receiver)
	courierPad, _ := s.Pad(signature.Courier)
	assert.NotNil(t, receiver.Capture())
	assert.Nil(t, courierPad.Capture())
}

func TestClearSignatureCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	s := newSession(t)
	pad, _ := s.Pad(signature.Courier)
	require.NoError(t, pad.Apply(stroke...))
	cmd, err := commands.NewClearSignatureCommand(s.ID(), "courier")
	require.NoError(t, err)
	f := newFixture()
	f.expectCommit(ctx, s)

	err = commands.NewClearSignatureCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	assert.True(t, pad.IsBlank())
}
