// Package attendance contains the ledger storage layer: the repository
// contract and its PostgreSQL implementation.
package attendance

import (
	"context"
	"time"

	"hrms/backend/internal/models"
)

// ListFilter narrows and pages ledger listings. Nil filter fields match
// every row.
type ListFilter struct {
	Date       *time.Time
	EmployeeID *int64
	Offset     int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, att *models.Attendance) (*models.Attendance, error)
	List(ctx context.Context, f ListFilter) ([]*models.AttendanceWithEmployee, error)
	Count(ctx context.Context, f ListFilter) (int64, error)
	StatusCountsOn(ctx context.Context, day time.Time) (present, absent int64, err error)
	ListRecent(ctx context.Context, limit int) ([]*models.AttendanceWithEmployee, error)
}
