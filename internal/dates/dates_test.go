package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYM(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		year  int
		month int
	}{
		{"valid january", "2020-01", true, 2020, 1},
		{"valid december", "1999-12", true, 1999, 12},
		{"surrounding whitespace", " 2021-06 ", true, 2021, 6},
		{"month zero", "2020-00", false, 0, 0},
		{"month thirteen", "2020-13", false, 0, 0},
		{"year only", "2020", false, 0, 0},
		{"full date", "2020-01-15", false, 0, 0},
		{"empty", "", false, 0, 0},
		{"garbage", "abcd-ef", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ym, ok := ParseYM(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.year, ym.Year)
				assert.Equal(t, tt.month, ym.Month)
			}
		})
	}
}

func TestMonthDiff(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		ok    bool
		diff  int
	}{
		{"same month", "2020-01", "2020-01", true, 0},
		{"one year", "2020-01", "2021-01", true, 12},
		{"partial", "2021-01", "2023-04", true, 27},
		{"inverted", "2023-01", "2021-01", false, 0},
		{"bad start", "20x0-01", "2021-01", false, 0},
		{"bad end", "2020-01", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff, ok := MonthDiff(tt.start, tt.end)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.diff, diff)
			}
		})
	}
}

func TestMonthDiff_ValidPairsNeverNegative(t *testing.T) {
	// For every valid pair with end >= start the diff is >= 0, and the
	// inverted pair is rejected.
	pairs := [][2]string{
		{"2018-09", "2021-06"},
		{"2020-02", "2020-02"},
		{"1995-12", "2026-01"},
	}
	for _, pair := range pairs {
		diff, ok := MonthDiff(pair[0], pair[1])
		require.True(t, ok)
		assert.GreaterOrEqual(t, diff, 0)
		if pair[0] != pair[1] {
			_, ok = MonthDiff(pair[1], pair[0])
			assert.False(t, ok)
		}
	}
}

func TestFormatMonthFR(t *testing.T) {
	assert.Equal(t, "janvier 2020", FormatMonthFR("2020-01"))
	assert.Equal(t, "décembre 1999", FormatMonthFR("1999-12"))
	assert.Equal(t, "", FormatMonthFR("not-a-month"))
	assert.Equal(t, "", FormatMonthFR(""))
}

func TestFormatDurationFR(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, ""},
		{-4, ""},
		{1, "1 mois"},
		{11, "11 mois"},
		{12, "1 an"},
		{13, "1 an 1 mois"},
		{24, "2 ans"},
		{27, "2 ans 3 mois"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDurationFR(tt.months))
	}
}

func TestRangeFR(t *testing.T) {
	assert.Equal(t, "janvier 2020 – mars 2021 (1 an 3 mois)", RangeFR("2020-01", "2021-03", false))
	assert.Equal(t, "janvier 2020", RangeFR("2020-01", "", false))
	assert.Equal(t, "", RangeFR("", "", false))

	got := RangeFR("2020-01", "", true)
	assert.Contains(t, got, "janvier 2020 – En cours")
}
