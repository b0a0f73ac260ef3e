package playlist

import "time"

// Days は start から end までの暦日を1日刻みで返します (両端を含む)。
// 各日付は start と end の年月日から求めた UTC の 0:00 で、時刻部分とロケーションは無視されます。
// 夏時間の切り替えがあるタイムゾーンでも、同じ日の重複や欠落は起きません。
// start が end より後の場合は空のスライスを返します。
func Days(start, end time.Time) []time.Time {
	y, m, d := start.Date()
	last := CivilDate(end)

	var days []time.Time
	for i := 0; ; i++ {
		day := time.Date(y, m, d+i, 0, 0, 0, 0, time.UTC)
		if day.After(last) {
			break
		}
		days = append(days, day)
	}
	return days
}

// CivilDate は t のロケーションでの年月日を UTC の 0:00 として返します。
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
