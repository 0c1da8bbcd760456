package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hrms/backend/internal/common"
	"hrms/backend/internal/dbx"
	"hrms/backend/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts one daily mark and fills in the server-assigned id and
// timestamps. The schema's UNIQUE (employee_id, date) makes a repeated mark
// surface as common.ErrorConflict; an unknown employee id trips the foreign
// key and surfaces as common.ErrorNotFound.
func (r *PostgresRepository) Create(ctx context.Context, att *models.Attendance) (*models.Attendance, error) {

	query :=
		`INSERT INTO attendance (employee_id, date, status)
		 VALUES ($1, $2::date, $3)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		att.EmployeeID, att.Date, string(att.Status)).
		Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return att, nil
}

// filterClause renders the optional date/employee conditions starting at
// placeholder $1 and returns the WHERE clause (possibly empty) plus its args.
func filterClause(f ListFilter) (string, []any) {
	conds := []string{}
	args := []any{}

	if f.Date != nil {
		args = append(args, *f.Date)
		conds = append(conds, fmt.Sprintf("a.date = $%d::date", len(args)))
	}
	if f.EmployeeID != nil {
		args = append(args, *f.EmployeeID)
		conds = append(conds, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostgresRepository) List(ctx context.Context, f ListFilter) ([]*models.AttendanceWithEmployee, error) {
	where, args := filterClause(f)

	query :=
		`SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at, e.full_name, e.employee_id
		 FROM attendance a
		 JOIN employees e ON e.id = a.employee_id` +
			where +
			fmt.Sprintf(`
		 ORDER BY a.date DESC, a.id DESC
		 OFFSET $%d LIMIT $%d
		 `, len(args)+1, len(args)+2)

	args = append(args, f.Offset, f.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanJoined(rows)
}

func (r *PostgresRepository) Count(ctx context.Context, f ListFilter) (int64, error) {
	where, args := filterClause(f)

	query :=
		`SELECT COUNT(*)
		 FROM attendance a
		 JOIN employees e ON e.id = a.employee_id` + where

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}

// StatusCountsOn partitions the marks of one calendar day by status.
func (r *PostgresRepository) StatusCountsOn(ctx context.Context, day time.Time) (int64, int64, error) {
	query :=
		`SELECT
		   COUNT(*) FILTER (WHERE status = $2),
		   COUNT(*) FILTER (WHERE status = $3)
		 FROM attendance
		 WHERE date = $1::date
		 `

	var present, absent int64
	err := r.db.QueryRowContext(ctx, query, day,
		string(models.StatusPresent), string(models.StatusAbsent)).
		Scan(&present, &absent)
	if err != nil {
		return 0, 0, fmt.Errorf("db error: %w", err)
	}

	return present, absent, nil
}

// ListRecent returns the newest marks by creation time (not calendar date),
// joined with the owner's identity, for the dashboard activity feed.
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]*models.AttendanceWithEmployee, error) {
	query :=
		`SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at, e.full_name, e.employee_id
		 FROM attendance a
		 JOIN employees e ON e.id = a.employee_id
		 ORDER BY a.created_at DESC, a.id DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanJoined(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanJoined(rows rowScanner) ([]*models.AttendanceWithEmployee, error) {
	result := []*models.AttendanceWithEmployee{}
	for rows.Next() {
		a := &models.AttendanceWithEmployee{}
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.EmployeeCode)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
