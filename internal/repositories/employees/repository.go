// Package employees contains the directory storage layer: the repository
// contract and its PostgreSQL implementation.
package employees

import (
	"context"

	"hrms/backend/internal/models"
)

type Repository interface {
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	ListActive(ctx context.Context, offset, limit int) ([]*models.Employee, error)
	CountActive(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	CountByDepartment(ctx context.Context) ([]models.DepartmentCount, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Employee, error)
}
