package store

import "time"

// sqliteTimeLayout is the timestamp format the sqlite driver parses back into
// time.Time for DATETIME columns. Timestamps are always written in UTC so
// ORDER BY created_at compares chronologically.
const sqliteTimeLayout = "2006-01-02 15:04:05.999999999-07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}
