//go:build unit

package slot_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/slot"
	"studio-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SlotBuilder)
	errIs  error
}

func TestSlot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.Available())
		assert.Nil(t, actual.ClaimedBy())
		assert.Equal(t, 60*time.Minute, actual.Duration())
		assert.Equal(t, actual.StartTime().Add(60*time.Minute), actual.EndTime())
	})

	t.Run("duration validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "one minute",
				mutate: func(b *builder.SlotBuilder) { b.WithDurationMin(1) },
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.SlotBuilder) { b.WithDurationMin(0) },
				errIs:  slot.ErrInvalidDuration,
			},
			{
				name:   "negative duration",
				mutate: func(b *builder.SlotBuilder) { b.WithDurationMin(-30) },
				errIs:  slot.ErrInvalidDuration,
			},
		})
	})

	t.Run("past start time is allowed", func(t *testing.T) {
		past := time.Now().Add(-48 * time.Hour)
		actual, err := slot.NewSlot(past, 30)
		require.NoError(t, err)
		assert.Equal(t, past, actual.StartTime())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		start := time.Now().Add(time.Hour)
		slot1, err1 := slot.NewSlot(start, 60)
		slot2, err2 := slot.NewSlot(start, 60)

		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, slot1.ID(), slot2.ID())
	})
}

func TestSlotClaim(t *testing.T) {
	contact := slot.Contact{
		ClientName:  "Hanako Yamada",
		PhoneNumber: "090-1234-5678",
		Comment:     "First visit",
	}

	t.Run("claim available slot", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		claimant := uuid.New()
		require.NoError(t, s.Claim(contact, claimant))

		assert.False(t, s.Available())
		require.NotNil(t, s.ClaimedBy())
		assert.Equal(t, claimant, *s.ClaimedBy())
		assert.Equal(t, contact, s.Contact())
	})

	t.Run("claim is one-way", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		first := uuid.New()
		require.NoError(t, s.Claim(contact, first))

		err = s.Claim(contact, uuid.New())
		require.ErrorIs(t, err, slot.ErrAlreadyClaimed)

		// Loser must not overwrite the winner.
		assert.Equal(t, first, *s.ClaimedBy())
	})

	t.Run("claim requires client name", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		err = s.Claim(slot.Contact{ClientName: "   "}, uuid.New())
		require.ErrorIs(t, err, slot.ErrEmptyClientName)
		assert.True(t, s.Available())
	})

	t.Run("claim with name only", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		err = s.Claim(slot.Contact{ClientName: "Taro"}, uuid.New())
		require.NoError(t, err)
		assert.False(t, s.Available())
	})
}

func TestSlotReschedule(t *testing.T) {
	t.Run("reschedule keeps claim data", func(t *testing.T) {
		claimant := uuid.New()
		s := builder.NewSlotBuilder().AsClaimed(claimant).BuildReconstructed()

		newStart := time.Now().Add(72 * time.Hour)
		require.NoError(t, s.Reschedule(newStart, 90))

		assert.Equal(t, newStart, s.StartTime())
		assert.Equal(t, 90, s.DurationMin())
		assert.False(t, s.Available())
		require.NotNil(t, s.ClaimedBy())
		assert.Equal(t, claimant, *s.ClaimedBy())
	})

	t.Run("reschedule rejects invalid duration", func(t *testing.T) {
		s := builder.NewSlotBuilder().BuildReconstructed()
		err := s.Reschedule(time.Now(), 0)
		require.ErrorIs(t, err, slot.ErrInvalidDuration)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewSlotBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
