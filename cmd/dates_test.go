package cmd

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/go-radio-playlist/pkg/playlist"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		date, err := parseDate(" 2023-05-01 ")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), date)
	})

	for _, input := range []string{"", "1-5-2023", "2023/05/01", "2023-13-01"} {
		t.Run("invalid_"+input, func(t *testing.T) {
			_, err := parseDate(input)
			assert.Error(t, err)
		})
	}
}

// ローカルタイムゾーンで 0:00 が存在しない日でも、指定した暦日のURLになる
func TestParseDate_IgnoresLocalDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	original := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = original })

	date, err := parseDate("2023-09-03")
	require.NoError(t, err)
	assert.Equal(t, 3, date.Day())
	assert.Contains(t, playlist.BuildURL(date, playlist.DefaultStation), "&date=3-9-2023&")
}
