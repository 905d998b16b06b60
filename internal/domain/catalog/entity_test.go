//go:build unit

package catalog_test

import (
	"testing"

	"studio-booking/internal/domain/catalog"
	"studio-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ServiceBuilder)
	errIs  error
}

func TestService(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Deep Tissue Massage", actual.Name())
		assert.Equal(t, int64(8500), actual.PriceCents())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ServiceBuilder) { b.WithName("") },
				errIs:  catalog.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ServiceBuilder) { b.WithName("   ") },
				errIs:  catalog.ErrEmptyName,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.ServiceBuilder) { b.WithDescription("") },
				errIs:  catalog.ErrEmptyDescription,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ServiceBuilder) { b.WithPriceCents(-1) },
				errIs:  catalog.ErrNegativePrice,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.ServiceBuilder) { b.WithPriceCents(0) },
			},
		})
	})

	t.Run("update applies the same validation", func(t *testing.T) {
		s := builder.NewServiceBuilder().BuildReconstructed()

		require.ErrorIs(t, s.Update("", "desc", 100), catalog.ErrEmptyName)
		require.ErrorIs(t, s.Update("name", "", 100), catalog.ErrEmptyDescription)
		require.ErrorIs(t, s.Update("name", "desc", -100), catalog.ErrNegativePrice)

		// Failed updates leave the entity untouched.
		assert.Equal(t, "Deep Tissue Massage", s.Name())

		require.NoError(t, s.Update("Hot Stone Massage", "90 minute hot stone session", 12000))
		assert.Equal(t, "Hot Stone Massage", s.Name())
		assert.Equal(t, int64(12000), s.PriceCents())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewServiceBuilder().With(c.mutate).BuildDomain()

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
