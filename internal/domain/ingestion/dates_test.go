package ingestion

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate_ExcelSerial(t *testing.T) {
	got, defaulted := NormalizeDate(NumberCell(44197))
	assert.Equal(t, "2021-01-01", got)
	assert.False(t, defaulted)
}

func TestNormalizeDate_Sentinels(t *testing.T) {
	for _, raw := range []string{"", "N/A", "n/a", "-", "NaN", "undefined", "  N/A  "} {
		t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
			got, defaulted := NormalizeDate(TextCell(raw))
			assert.Empty(t, got)
			assert.False(t, defaulted, "sentinels mean absent, not degraded")
		})
	}

	got, defaulted := NormalizeDate(EmptyCell())
	assert.Empty(t, got)
	assert.False(t, defaulted)
}

func TestNormalizeDate_Text(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		defaulted bool
	}{
		{"slash full year", "15/03/2024", "2024-03-15", false},
		{"slash short year", "01/07/23", "2023-07-01", false},
		{"slash padded", " 05/12/2022 ", "2022-12-05", false},
		{"iso", "2021-05-10", "2021-05-10", false},
		{"iso with time", "2021-05-10 14:30:00", "2021-05-10", false},
		{"impossible day", "32/01/2024", "", true},
		{"impossible month", "10/13/2024", "", true},
		{"garbage", "amanhã", "", true},
		{"bad iso", "2021-13-40", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, defaulted := NormalizeDate(TextCell(tt.input))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.defaulted, defaulted)
		})
	}
}

func TestNormalizeDate_SlashRoundTrip(t *testing.T) {
	// Any valid DD/MM/YYYY renders back to the identical string.
	for _, input := range []string{"01/01/2020", "29/02/2024", "31/12/1999", "09/10/2021"} {
		got, defaulted := NormalizeDate(TextCell(input))
		require.False(t, defaulted, input)
		parsed, err := time.Parse("2006-01-02", got)
		require.NoError(t, err)
		assert.Equal(t, input, parsed.Format("02/01/2006"))
	}
}

func TestNormalizeDate_NativeDate(t *testing.T) {
	got, defaulted := NormalizeDate(DateCell(time.Date(2023, 8, 17, 9, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2023-08-17", got)
	assert.False(t, defaulted)
}

func BenchmarkNormalizeDate_Slash(b *testing.B) {
	cell := TextCell("15/03/2024")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NormalizeDate(cell)
	}
}

func TestParseCanonicalDate(t *testing.T) {
	got, err := ParseCanonicalDate("2021-01-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseCanonicalDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseCanonicalDate("not-a-date")
	assert.Error(t, err)
}
