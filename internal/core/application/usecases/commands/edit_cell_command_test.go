package commands_test

import (
	"testing"

	"dispatchdesk/internal/core/application/usecases/commands"
	"dispatchdesk/internal/core/domain/model/kernel"
	"dispatchdesk/internal/core/domain/model/manifest"
	"dispatchdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRows(t *testing.T, amounts ...int) []manifest.PackageRecord {
	t.Helper()
	records := make([]manifest.PackageRecord, 0, len(amounts))
	for i, v := range amounts {
		a, err := kernel.NewAmount(v)
		require.NoError(t, err)
		records = append(records, manifest.NewPackageRecord(string(rune('A'+i)), "", "", "", a, "Nomonjon"))
	}
	return records
}

func TestNewEditCellCommand(t *testing.T) {
	t.Run("should accept column aliases", func(t *testing.T) {
		cmd, err := commands.NewEditCellCommand(kernel.NewUUID(), 1, "sum", "12")

		require.NoError(t, err)
		assert.Equal(t, manifest.ColumnAmount, cmd.Column())
	})

	t.Run("should reject courier column", func(t *testing.T) {
		_, err := commands.NewEditCellCommand(kernel.NewUUID(), 1, "courier", "Nomonjon")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown column", func(t *testing.T) {
		_, err := commands.NewEditCellCommand(kernel.NewUUID(), 1, "weight", "3")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestEditCellCommandHandler_Handle(t *testing.T) {
	t.Run("should edit amount and recompute total", func(t *testing.T) {
		ctx := t.Context()
		s := newSession(t)
		s.Manifest().Add(seedRows(t, 100, 200)...)
		cmd, _ := commands.NewEditCellCommand(s.ID(), 2, "amount", "1 500 сум")
		f := newFixture()
		f.expectCommit(ctx, s)

		err := commands.NewEditCellCommandHandler(f.factory).Handle(ctx, cmd)

		require.NoError(t, err)
		f.assertExpectations(t)
		assert.Equal(t, 1500, s.Manifest().Records()[1].Amount().Int())
		assert.Equal(t, 1600, s.Manifest().Total().Int())
	})

	t.Run("should fail for row outside manifest", func(t *testing.T) {
		ctx := t.Context()
		s := newSession(t)
		s.Manifest().Add(seedRows(t, 100)...)
		cmd, _ := commands.NewEditCellCommand(s.ID(), 3, "name", "Ali")
		f := newFixture()
		f.expectAbort(ctx, s)

		err := commands.NewEditCellCommandHandler(f.factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		f.assertExpectations(t)
		assert.Equal(t, "", s.Manifest().Records()[0].RecipientName())
	})
}
