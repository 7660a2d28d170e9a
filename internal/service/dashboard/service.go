package dashboard

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	clock clock.Clock
}

func NewDashboardService(repo dashboard.DashboardRepository, clk clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		clock:               clk,
	}
}

// attendancePercentage rounds present/total*100 to one decimal place. Rounding is applied to the
// exact binary value of the ratio with ties to even, so 1/16 gives 6.2.
func attendancePercentage(present, total int64) dashboard.Percentage {
	if total <= 0 {
		return 0
	}
	ratio := float64(present) / float64(total) * 100
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(ratio, 'f', 1, 64), 64)
	if err != nil {
		return 0
	}
	return dashboard.Percentage(rounded)
}

// GetDashboard computes the snapshot from two queries run in parallel
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, filter dashboard.DashboardFilter) (*dashboard.DashboardResponse, error) {
	department := filter.Department
	if department != nil && strings.TrimSpace(*department) == "" {
		department = nil
	}

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		total int64
		stats *dashboard.AttendanceStats
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Scoped roster size
	g.Go(func() error {
		count, err := s.CountEmployees(gCtx, department)
		if err != nil {
			return err
		}
		total = count
		return nil
	})

	// 2. Today's present/absent counts within the same scope
	g.Go(func() error {
		result, err := s.GetAttendanceStatsByDay(gCtx, today, department)
		if err != nil {
			return err
		}
		stats = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// A record can outlive its employee's membership in the scope, so never go below zero.
	pending := total - (stats.Present + stats.Absent)
	if pending < 0 {
		pending = 0
	}

	return &dashboard.DashboardResponse{
		Date:                 now.Format(clock.DateLayout),
		TotalEmployees:       total,
		PresentToday:         stats.Present,
		AbsentToday:          stats.Absent,
		PendingAttendance:    pending,
		AttendancePercentage: attendancePercentage(stats.Present, total),
		LastUpdated:          now.Format(clock.DateTimeLayout),
	}, nil
}
