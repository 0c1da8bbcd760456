package employees

import (
	"context"
	"fmt"

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

// Create inserts the employee and fills in the server-assigned id and
// timestamps. A duplicate email or employee code surfaces as
// common.ErrorConflict via the schema's unique constraints; there is no
// pre-insert existence check.
func (r *PostgresRepository) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {

	query :=
		`INSERT INTO employees (employee_id, full_name, email, department)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		employee.Code, employee.FullName, employee.Email, employee.Department).
		Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return employee, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context, offset, limit int) ([]*models.Employee, error) {
	query :=
		`SELECT id, employee_id, full_name, email, department, created_at, updated_at
		 FROM employees
		 WHERE deleted_at IS NULL
		 ORDER BY created_at DESC, id DESC
		 OFFSET $1 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func (r *PostgresRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL`

	var total int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}

// Delete hard-removes the row; owned attendance goes with it through the
// ON DELETE CASCADE foreign key.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) CountByDepartment(ctx context.Context) ([]models.DepartmentCount, error) {
	query :=
		`SELECT department, COUNT(id)
		 FROM employees
		 WHERE deleted_at IS NULL
		 GROUP BY department
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	counts := []models.DepartmentCount{}
	for rows.Next() {
		var dc models.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return counts, nil
}

func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]*models.Employee, error) {
	query :=
		`SELECT id, employee_id, full_name, email, department, created_at, updated_at
		 FROM employees
		 WHERE deleted_at IS NULL
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEmployees(rows rowScanner) ([]*models.Employee, error) {
	result := []*models.Employee{}
	for rows.Next() {
		e := &models.Employee{}
		err := rows.Scan(&e.ID, &e.Code, &e.FullName, &e.Email, &e.Department, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
