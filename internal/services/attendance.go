package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hrms/backend/internal/common"
	"hrms/backend/internal/dbx"
	"hrms/backend/internal/models"
	"hrms/backend/internal/pagex"
	"hrms/backend/internal/repositories/attendance"
	"hrms/backend/internal/repositories/repomanager"
)

// AttendanceList is one page of joined ledger rows plus paging totals.
type AttendanceList struct {
	Items      []*models.AttendanceWithEmployee
	Total      int64
	Page       int
	Limit      int
	TotalPages int64
}

// AttendanceService implements the ledger operations: the mark-once insert
// and the filtered, paged listing.
type AttendanceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAttendanceService(db *sql.DB, m repomanager.RepositoryManager) *AttendanceService {
	return &AttendanceService{db: db, repomanager: m}
}

// Mark records one status for (employeeID, day). A second mark for the same
// pair yields common.ErrorConflict regardless of status: the operation is
// idempotent by rejection, never by merge. An unknown employee yields
// common.ErrorNotFound.
func (s *AttendanceService) Mark(ctx context.Context, employeeID int64, day time.Time, status models.AttendanceStatus) (*models.Attendance, error) {
	if !status.Valid() {
		return nil, common.ErrorValidation
	}

	att := &models.Attendance{
		EmployeeID: employeeID,
		Date:       day,
		Status:     status,
	}

	repo := s.repomanager.Attendance(s.db)
	a, err := repo.Create(ctx, att)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) || errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error marking attendance: %w", err)
	}
	return a, nil
}

// List returns one page of marks joined with employee identity, optionally
// narrowed to an exact date and/or employee, ordered by date descending.
func (s *AttendanceService) List(ctx context.Context, date *time.Time, employeeID *int64, page, limit int) (*AttendanceList, error) {
	p, l, offset := pagex.Normalize(page, limit)

	filter := attendance.ListFilter{
		Date:       date,
		EmployeeID: employeeID,
		Offset:     offset,
		Limit:      l,
	}

	var (
		items []*models.AttendanceWithEmployee
		total int64
	)

	err := dbx.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Attendance(tx)

		var err error
		if total, err = repo.Count(ctx, filter); err != nil {
			return err
		}
		items, err = repo.List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}

	return &AttendanceList{
		Items:      items,
		Total:      total,
		Page:       p,
		Limit:      l,
		TotalPages: pagex.TotalPages(total, l),
	}, nil
}
