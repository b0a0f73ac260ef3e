package playlist

import (
	"testing"
	"time"
	_ "time/tzdata" // 夏時間のあるタイムゾーンを環境に依存せず読み込む

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected []time.Time
	}{
		{
			name:     "same_day",
			start:    day(2023, time.May, 1),
			end:      day(2023, time.May, 1),
			expected: []time.Time{day(2023, time.May, 1)},
		},
		{
			name:     "inclusive_range",
			start:    day(2023, time.May, 1),
			end:      day(2023, time.May, 3),
			expected: []time.Time{day(2023, time.May, 1), day(2023, time.May, 2), day(2023, time.May, 3)},
		},
		{
			name:     "across_month_boundary",
			start:    day(2024, time.February, 28),
			end:      day(2024, time.March, 1),
			expected: []time.Time{day(2024, time.February, 28), day(2024, time.February, 29), day(2024, time.March, 1)},
		},
		{
			// 時刻部分は切り捨てられる
			name:     "time_of_day_is_dropped",
			start:    time.Date(2023, time.May, 1, 22, 30, 0, 0, time.UTC),
			end:      time.Date(2023, time.May, 2, 1, 0, 0, 0, time.UTC),
			expected: []time.Time{day(2023, time.May, 1), day(2023, time.May, 2)},
		},
		{
			name:     "start_after_end",
			start:    day(2023, time.May, 3),
			end:      day(2023, time.May, 1),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Days(tt.start, tt.end))
		})
	}
}

// 夏時間の切り替えで 0:00 が存在しない、または2回ある日をまたいでも、暦日は1日ずつ進む
func TestDays_DaylightSavingTransitions(t *testing.T) {
	utcDay := func(m time.Month, d int) time.Time {
		return time.Date(2023, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		zone     string
		start    [2]int // 月, 日
		end      [2]int
		expected []time.Time
	}{
		{
			// 2023-09-03 0:00 が 1:00 に進む
			name:  "santiago_spring_forward",
			zone:  "America/Santiago",
			start: [2]int{9, 2},
			end:   [2]int{9, 5},
			expected: []time.Time{
				utcDay(time.September, 2), utcDay(time.September, 3),
				utcDay(time.September, 4), utcDay(time.September, 5),
			},
		},
		{
			// 2023-03-26 0:00 が 1:00 に進む
			name:  "beirut_spring_forward",
			zone:  "Asia/Beirut",
			start: [2]int{3, 25},
			end:   [2]int{3, 28},
			expected: []time.Time{
				utcDay(time.March, 25), utcDay(time.March, 26),
				utcDay(time.March, 27), utcDay(time.March, 28),
			},
		},
		{
			// 2023-04-02 0:00 が 23:00 に戻る
			name:  "santiago_fall_back",
			zone:  "America/Santiago",
			start: [2]int{4, 1},
			end:   [2]int{4, 3},
			expected: []time.Time{
				utcDay(time.April, 1), utcDay(time.April, 2), utcDay(time.April, 3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.zone)
			require.NoError(t, err)

			start := time.Date(2023, time.Month(tt.start[0]), tt.start[1], 0, 0, 0, 0, loc)
			end := time.Date(2023, time.Month(tt.end[0]), tt.end[1], 0, 0, 0, 0, loc)

			days := Days(start, end)
			assert.Equal(t, tt.expected, days)
			for i, d := range days {
				assert.Equal(t, tt.expected[i].Day(), d.Day())
			}
		})
	}
}

func TestCivilDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	// ロケーション上の年月日が保たれ、時刻は切り捨てられる
	late := time.Date(2023, time.September, 2, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2023, time.September, 2, 0, 0, 0, 0, time.UTC), CivilDate(late))
}
