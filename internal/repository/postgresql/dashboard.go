package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployees returns the roster size, optionally scoped to a department
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context, department *string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM employees
		WHERE ($1::text IS NULL OR department = $1)
	`

	var total int64
	if err := q.QueryRow(ctx, query, department).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// GetAttendanceStatsByDay returns present/absent for a specific day
func (r *dashboardRepositoryImpl) GetAttendanceStatsByDay(ctx context.Context, date time.Time, department *string) (*dashboard.AttendanceStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT 
			COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) as present,
			COALESCE(SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END), 0) as absent
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		  AND ($2::text IS NULL OR e.department = $2)
	`

	var stats dashboard.AttendanceStats
	err := q.QueryRow(ctx, query, date, department).Scan(&stats.Present, &stats.Absent)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance stats by day: %w", err)
	}
	return &stats, nil
}
