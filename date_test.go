package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultPuzzleDate_UsesUTC(t *testing.T) {
	// 2023-12-07 23:30 in UTC-5 is already the 8th in UTC.
	loc := time.FixedZone("EST", -5*60*60)
	now := time.Date(2023, 12, 7, 23, 30, 0, 0, loc)

	require.Equal(t, puzzleDate{Year: 2023, Day: 8}, defaultPuzzleDate(now))
}

func TestDefaultPuzzleDate_DayOfMonthOutsideDecember(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	d := defaultPuzzleDate(now)
	require.Equal(t, puzzleDate{Year: 2024, Day: 31}, d)
	require.False(t, d.inRange())
}

func TestResolveDate(t *testing.T) {
	now := time.Date(2024, 12, 3, 6, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		cfg  appConfig
		want puzzleDate
	}{
		{"both set", appConfig{Year: intPtr(2022), Day: intPtr(5)}, puzzleDate{2022, 5}},
		{"neither set", appConfig{}, puzzleDate{2024, 3}},
		{"year only", appConfig{Year: intPtr(2019)}, puzzleDate{2019, 3}},
		{"day only", appConfig{Day: intPtr(17)}, puzzleDate{2024, 17}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, resolveDate(tt.cfg, now))
		})
	}
}

func TestPuzzleDate_InRange(t *testing.T) {
	require.False(t, puzzleDate{2022, 0}.inRange())
	require.True(t, puzzleDate{2022, 1}.inRange())
	require.True(t, puzzleDate{2022, 25}.inRange())
	require.False(t, puzzleDate{2022, 26}.inRange())
}

func TestPuzzleDate_PathsAgree(t *testing.T) {
	d := puzzleDate{Year: 2022, Day: 5}

	require.Equal(t, filepath.Join("2022", "5"), d.dir())
	require.Equal(t, "/2022/day/5/input", d.urlPath())
}
