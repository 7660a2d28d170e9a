package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, employee_id, date, status, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date, string(status)).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time, department *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at,
			e.employee_id, e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		  AND ($2::text IS NULL OR e.department = $2)
		ORDER BY e.employee_id
	`

	rows, err := q.Query(ctx, query, date, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeCode, &att.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
