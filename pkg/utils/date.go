package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate interpreta datas no formato YYYY-MM-DD usado pela API
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(dateLayout, dateStr)
}

// TruncateToDay descarta a parte de hora de um instante, mantendo o fuso
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
