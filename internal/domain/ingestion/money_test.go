package ingestion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMoney_BrazilianText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		defaulted bool
	}{
		{"symbol and grouping", "R$ 1.234,56", "1234.56", false},
		{"no symbol", "1.234,56", "1234.56", false},
		{"plain comma decimal", "99,90", "99.9", false},
		{"millions", "R$ 2.500.000,00", "2500000", false},
		{"negative", "-1.000,50", "-1000.5", false},
		{"integer", "300", "300", false},
		{"internal whitespace", "R$  1 234,00", "1234", false},
		{"empty", "", "0", false},
		{"whitespace only", "   ", "0", false},
		{"garbage", "abc", "0", true},
		{"double comma", "1,2,3", "0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, defaulted := NormalizeMoney(TextCell(tt.input))
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.defaulted, defaulted)
		})
	}
}

func TestNormalizeMoney_Numbers(t *testing.T) {
	got, defaulted := NormalizeMoney(NumberCell(0))
	assert.True(t, got.IsZero())
	assert.False(t, defaulted)

	got, defaulted = NormalizeMoney(NumberCell(1234.56))
	assert.Equal(t, "1234.56", got.String())
	assert.False(t, defaulted)

	got, defaulted = NormalizeMoney(NumberCell(math.NaN()))
	assert.True(t, got.IsZero())
	assert.True(t, defaulted)
}

func TestNormalizeMoney_Empty(t *testing.T) {
	got, defaulted := NormalizeMoney(EmptyCell())
	assert.True(t, got.IsZero())
	assert.False(t, defaulted)
}

func BenchmarkNormalizeMoney(b *testing.B) {
	cell := TextCell("R$ 1.234.567,89")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NormalizeMoney(cell)
	}
}
