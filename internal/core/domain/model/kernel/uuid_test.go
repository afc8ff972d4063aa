package kernel_test

import (
	"testing"

	"dispatchdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should generate valid distinct UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.False(t, id1.IsEqual(id2))
	})

	t.Run("should be usable as map key", func(t *testing.T) {
		id := kernel.NewUUID()
		sessions := map[kernel.UUID]string{id: "operator"}

		copied := id
		assert.Equal(t, "operator", sessions[copied])
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should parse braced and urn forms", func(t *testing.T) {
		braced, err := kernel.UUIDFromString("{550e8400-e29b-41d4-a716-446655440000}")
		require.NoError(t, err)

		urn, err := kernel.UUIDFromString("urn:uuid:550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)

		assert.True(t, braced.IsEqual(urn))
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716"} {
			_, err := kernel.UUIDFromString(raw)

			require.Error(t, err, raw)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestMustUUIDFromString(t *testing.T) {
	assert.NotPanics(t, func() {
		kernel.MustUUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	})
	assert.Panics(t, func() {
		kernel.MustUUIDFromString("bogus")
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())
	assert.NoError(t, kernel.NewUUID().Validate())
}
