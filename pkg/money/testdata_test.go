package money

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataGeneratorDeterminism(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	a := NewTestDataGenerator(42).Expenses(5, from, to)
	b := NewTestDataGenerator(42).Expenses(5, from, to)
	require.Len(t, a, 5)
	assert.Equal(t, a, b, "the same seed must replay the same fixtures")

	for _, e := range a {
		assert.NotEmpty(t, e.Supplier)
		assert.Contains(t, testCostCenters, e.CostCenter)
		assert.True(t, e.Amount.IsPositive())
		assert.False(t, e.PaymentDate.Before(from))
		assert.False(t, e.PaymentDate.After(to))
	}
}
