package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the boundary to the attendance/time-log
// provider. Facts come back ordered by date ascending.
type AttendanceRepository interface {
	GetFacts(ctx context.Context, companyID string, userID string, start, end time.Time) ([]Fact, error)
}
