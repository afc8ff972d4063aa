package commands_test

import (
	"testing"

	"dispatchdesk/internal/core/application/usecases/commands"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddScanLinesCommand(t *testing.T) {
	t.Run("should trim input", func(t *testing.T) {
		cmd, err := commands.NewAddScanLinesCommand(kernel.NewUUID(), "  A1|x  \n")

		require.NoError(t, err)
		assert.Equal(t, "A1|x", cmd.Raw())
	})

	t.Run("should reject whitespace input", func(t *testing.T) {
		_, err := commands.NewAddScanLinesCommand(kernel.NewUUID(), " \r\n\t ")

		require.ErrorIs(t, err, commands.ErrEmptyScannerInput)
	})
}

func TestAddScanLinesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	s := newSession(t)
	_, err := s.SelectCourier("Nomonjon")
	require.NoError(t, err)

	raw := "A1|John Doe|+998901234567|Tashkent St 5|15000\n\nB2,Jane,998900000000,Samarkand,7 500,extra"
	cmd, err := commands.NewAddScanLinesCommand(s.ID(), raw)
	require.NoError(t, err)
	f := newFixture()
	f.expectCommit(ctx, s)

	h := commands.NewAddScanLinesCommandHandler(f.factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
	rows := s.Manifest().Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "A1", rows[0].Record.ID())
	assert.Equal(t, "Tashkent St 5", rows[0].Record.Address())
	assert.Equal(t, 2, rows[1].Index)
	assert.Equal(t, "Samarkand", rows[1].Record.Address())
	assert.Equal(t, "Nomonjon", rows[1].Record.Courier())
	assert.Equal(t, 22500, s.Manifest().Total().Int())
}

func TestAddScanLinesCommandHandler_Handle_NoCourierSelected(t *testing.T) {
	ctx := t.Context()
	s := newSessionWithoutCourier(t)
	cmd, _ := commands.NewAddScanLinesCommand(s.ID(), "A1|x|||100")
	f := newFixture()
	f.expectAbort(ctx, s)

	h := commands.NewAddScanLinesCommandHandler(f.factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, session.ErrNoCourierSelected)
	f.assertExpectations(t)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, 0, s.Manifest().Len())
}

func TestAddScanLinesCommandHandler_Handle_SessionNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAddScanLinesCommand(id, "A1")
	f := newFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("SessionRepository").Return(f.repo).Once(),
		f.repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("session", id)).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddScanLinesCommandHandler(f.factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}
