package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetFacts(ctx context.Context, companyID string, userID string, start, end time.Time) ([]attendance.Fact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, date, worked_seconds, overtime_seconds, status
		FROM attendance_facts
		WHERE company_id = $1 AND user_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, companyID, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance facts: %w", err)
	}
	defer rows.Close()

	var facts []attendance.Fact
	for rows.Next() {
		var f attendance.Fact
		if err := rows.Scan(&f.UserID, &f.Date, &f.WorkedSeconds, &f.OvertimeSeconds, &f.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance fact: %w", err)
		}
		facts = append(facts, f)
	}

	return facts, nil
}
