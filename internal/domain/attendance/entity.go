package attendance

import "time"

// DayStatus enum
type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusPartial DayStatus = "partial"
	StatusAbsent  DayStatus = "absent"
	StatusOnLeave DayStatus = "on_leave"
	StatusHoliday DayStatus = "holiday"
)

// Fact - one employee's closed attendance day. Immutable once the day has
// closed; the settlement engine treats the series as read-only input
// keyed by (user, date).
type Fact struct {
	UserID          string
	Date            time.Time
	WorkedSeconds   int64
	OvertimeSeconds int64
	Status          DayStatus
}
