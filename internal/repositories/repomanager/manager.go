package repomanager

import (
	"context"
	"database/sql"

	"hrms/backend/internal/dbx"
	"hrms/backend/internal/repositories/attendance"
	"hrms/backend/internal/repositories/employees"
)

// RepositoryManager vends repositories bound to a concrete DB handle.
// Passing a transactional DBTX makes every repository returned from the
// same call participate in that transaction.
type RepositoryManager interface {
	Employees(db dbx.DBTX) employees.Repository
	Attendance(db dbx.DBTX) attendance.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
