package entity

import "time"

// StorageTime truncates t to the microsecond precision Postgres keeps. Values
// stamped before a write then compare equal to the rows read back.
func StorageTime(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}
