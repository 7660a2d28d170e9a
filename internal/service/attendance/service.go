package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	txManager database.TxManager
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock clock.Clock
}

func NewAttendanceService(
	txManager database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		txManager:            txManager,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
	}
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeCode,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format(clock.DateLayout),
		Status:       att.Status,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, filter.ParsedDate, filter.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	results := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		results = append(results, mapAttendanceToResponse(record))
	}

	return results, nil
}

// MarkAttendance implements attendance.AttendanceService.
// Entries are applied one by one; a rejected entry stops the batch but does not undo earlier ones.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// One reading of the clock for the whole batch.
	now := s.clock.Now()
	today := now.Format(clock.DateLayout)
	todayDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	results := make([]attendance.AttendanceResponse, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if !entry.IsComplete() {
			slog.DebugContext(ctx, "Skipping incomplete attendance entry", "employee_id", entry.EmployeeID)
			continue
		}

		if entry.Date != today {
			return nil, &attendance.DateNotTodayError{Today: today}
		}

		var marked attendance.Attendance
		err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
			emp, err := s.EmployeeRepository.GetByEmployeeID(txCtx, entry.EmployeeID)
			if err != nil {
				return err
			}

			marked, err = s.AttendanceRepository.Upsert(txCtx, emp.ID, todayDate, entry.Status)
			if err != nil {
				return err
			}

			marked.EmployeeCode = emp.EmployeeID
			marked.EmployeeName = emp.FullName
			return nil
		})
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil, employee.ErrEmployeeNotFound
			}
			return nil, fmt.Errorf("failed to mark attendance for employee %s: %w", entry.EmployeeID, err)
		}

		slog.InfoContext(ctx, "Attendance marked",
			"employee_id", entry.EmployeeID,
			"date", today,
			"status", marked.Status.String(),
		)
		results = append(results, mapAttendanceToResponse(marked))
	}

	return results, nil
}
