// Package httpapi exposes the HRMS services over the legacy HTTP+JSON
// contract: success envelopes with a "success" flag, errors as
// {"detail": "..."} client/server status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hrms/backend/internal/logging"
	"hrms/backend/internal/models"
	"hrms/backend/internal/services"
)

// EmployeeService is the directory surface the handlers need.
type EmployeeService interface {
	Create(ctx context.Context, fullName, email, department, code string) (*models.Employee, error)
	List(ctx context.Context, page, limit int) (*services.EmployeeList, error)
	Delete(ctx context.Context, id int64) error
	CountActive(ctx context.Context) (int64, error)
}

// AttendanceService is the ledger surface the handlers need.
type AttendanceService interface {
	Mark(ctx context.Context, employeeID int64, day time.Time, status models.AttendanceStatus) (*models.Attendance, error)
	List(ctx context.Context, date *time.Time, employeeID *int64, page, limit int) (*services.AttendanceList, error)
}

// DashboardService is the aggregation surface the handlers need.
type DashboardService interface {
	Get(ctx context.Context) (*models.Dashboard, error)
}

// Server runs the HTTP endpoint with graceful shutdown driven by the
// provided context.
type Server struct {
	address string
	logger  logging.Logger
	handler http.Handler
}

func NewServer(address string, production bool, l logging.Logger,
	es EmployeeService, as AttendanceService, ds DashboardService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		handler: NewRouter(production, l, es, as, ds),
	}
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.handler}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
