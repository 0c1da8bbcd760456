// Package services contains the business logic of the HRMS backend: the
// employee directory, the attendance ledger, and the dashboard aggregation.
// Services hold a *sql.DB plus a RepositoryManager and run multi-statement
// operations through dbx.WithTx.
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
	"hrms/backend/internal/repositories/repomanager"
)

// EmployeeList is one page of active directory records plus paging totals.
type EmployeeList struct {
	Items      []*models.Employee
	Total      int64
	Page       int
	Limit      int
	TotalPages int64
}

// EmployeeService implements the directory operations: create, paged list,
// hard delete, and the active headcount.
type EmployeeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewEmployeeService(db *sql.DB, m repomanager.RepositoryManager) *EmployeeService {
	return &EmployeeService{db: db, repomanager: m, now: time.Now}
}

// Create persists a new directory record. An empty code is replaced with a
// generated "EMP-<unix-milliseconds>" token. Duplicate email or code (against
// any existing row, soft-deleted included) yields common.ErrorConflict.
func (s *EmployeeService) Create(ctx context.Context, fullName, email, department, code string) (*models.Employee, error) {
	if code == "" {
		code = fmt.Sprintf("EMP-%d", s.now().UnixMilli())
	}

	employee := &models.Employee{
		Code:       code,
		FullName:   fullName,
		Email:      email,
		Department: department,
	}

	repo := s.repomanager.Employees(s.db)
	e, err := repo.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating employee: %w", err)
	}
	return e, nil
}

// List returns one page of active employees, newest first, with the page and
// limit normalized (limit is clamped, see pagex). The count and the page rows
// come from a single read-only transaction so the totals stay coherent.
func (s *EmployeeService) List(ctx context.Context, page, limit int) (*EmployeeList, error) {
	p, l, offset := pagex.Normalize(page, limit)

	var (
		items []*models.Employee
		total int64
	)

	err := dbx.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Employees(tx)

		var err error
		if total, err = repo.CountActive(ctx); err != nil {
			return err
		}
		items, err = repo.ListActive(ctx, offset, l)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}

	return &EmployeeList{
		Items:      items,
		Total:      total,
		Page:       p,
		Limit:      l,
		TotalPages: pagex.TotalPages(total, l),
	}, nil
}

// Delete hard-removes the employee; owned attendance rows are removed by the
// schema's cascade. Unknown ids yield common.ErrorNotFound.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Employees(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}

// CountActive returns the number of non-deleted employees.
func (s *EmployeeService) CountActive(ctx context.Context) (int64, error) {
	repo := s.repomanager.Employees(s.db)
	total, err := repo.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting employees: %w", err)
	}
	return total, nil
}
