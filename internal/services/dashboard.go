package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hrms/backend/internal/dbx"
	"hrms/backend/internal/models"
	"hrms/backend/internal/repositories/repomanager"
)

const (
	recentAttendanceLimit = 5
	recentEmployeesLimit  = 6
)

// DashboardService composes the read-only rollups for the dashboard.
// "Today" is resolved in the configured location rather than ambient server
// time, so the date boundary is explicit and reproducible.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	loc         *time.Location
	now         func() time.Time
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{db: db, repomanager: m, loc: loc, now: time.Now}
}

// today returns the current calendar date in the configured location,
// truncated to midnight.
func (s *DashboardService) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

// Get computes the full dashboard in one read-only transaction: the active
// headcount, today's present/absent split, the not-marked remainder (clamped
// at zero), the per-department histogram, and the two recency feeds.
func (s *DashboardService) Get(ctx context.Context) (*models.Dashboard, error) {
	today := s.today()

	d := &models.Dashboard{}

	err := dbx.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx dbx.DBTX) error {
		employeeRepo := s.repomanager.Employees(tx)
		attendanceRepo := s.repomanager.Attendance(tx)

		total, err := employeeRepo.CountActive(ctx)
		if err != nil {
			return err
		}

		present, absent, err := attendanceRepo.StatusCountsOn(ctx, today)
		if err != nil {
			return err
		}

		// Marks can reference employees outside the active set (e.g. rows
		// created before a hard delete of a different employee shifted the
		// totals), so the remainder is clamped rather than trusted.
		notMarked := total - present - absent
		if notMarked < 0 {
			notMarked = 0
		}

		d.Stats = models.DashboardStats{
			TotalEmployees: total,
			PresentToday:   present,
			AbsentToday:    absent,
			NotMarked:      notMarked,
			Date:           today,
		}

		if d.Departments, err = employeeRepo.CountByDepartment(ctx); err != nil {
			return err
		}
		if d.RecentAttendance, err = attendanceRepo.ListRecent(ctx, recentAttendanceLimit); err != nil {
			return err
		}
		d.RecentEmployees, err = employeeRepo.ListRecent(ctx, recentEmployeesLimit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error building dashboard: %w", err)
	}

	return d, nil
}
