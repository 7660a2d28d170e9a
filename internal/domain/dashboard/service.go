package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard computes today's roster-wide attendance snapshot
	GetDashboard(ctx context.Context, filter DashboardFilter) (*DashboardResponse, error)
}
