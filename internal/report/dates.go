package report

import (
	"fmt"
	"time"
)

var japaneseWeekdays = []string{"日", "月", "火", "水", "木", "金", "土"}

// formatJapaneseDate renders a date as "YYYY年M月D日(曜)".
func formatJapaneseDate(date time.Time) string {
	return fmt.Sprintf("%d年%d月%d日(%s)",
		date.Year(), int(date.Month()), date.Day(), japaneseWeekdays[int(date.Weekday())])
}

// FormatJapaneseDateRange renders a date range as
// "2023年10月26日(木) 〜 2023年11月1日(水)".
func FormatJapaneseDateRange(start, end time.Time) string {
	return formatJapaneseDate(start) + " 〜 " + formatJapaneseDate(end)
}
