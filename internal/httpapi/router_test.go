package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/backend/internal/logging"
	"hrms/backend/internal/models"
	"hrms/backend/internal/services"
)

// --- stubs ---

type stubEmployeeService struct {
	createOut *models.Employee
	createErr error
	listOut   *services.EmployeeList
	listErr   error
	deleteErr error
	countOut  int64
	countErr  error

	lastCode string
	lastID   int64
}

func (s *stubEmployeeService) Create(ctx context.Context, fullName, email, department, code string) (*models.Employee, error) {
	s.lastCode = code
	return s.createOut, s.createErr
}

func (s *stubEmployeeService) List(ctx context.Context, page, limit int) (*services.EmployeeList, error) {
	return s.listOut, s.listErr
}

func (s *stubEmployeeService) Delete(ctx context.Context, id int64) error {
	s.lastID = id
	return s.deleteErr
}

func (s *stubEmployeeService) CountActive(ctx context.Context) (int64, error) {
	return s.countOut, s.countErr
}

type stubAttendanceService struct {
	markOut *models.Attendance
	markErr error
	listOut *services.AttendanceList
	listErr error

	lastEmployeeID int64
	lastDay        time.Time
	lastStatus     models.AttendanceStatus
	lastDate       *time.Time
	lastEmployee   *int64
}

func (s *stubAttendanceService) Mark(ctx context.Context, employeeID int64, day time.Time, status models.AttendanceStatus) (*models.Attendance, error) {
	s.lastEmployeeID = employeeID
	s.lastDay = day
	s.lastStatus = status
	return s.markOut, s.markErr
}

func (s *stubAttendanceService) List(ctx context.Context, date *time.Time, employeeID *int64, page, limit int) (*services.AttendanceList, error) {
	s.lastDate = date
	s.lastEmployee = employeeID
	return s.listOut, s.listErr
}

type stubDashboardService struct {
	out *models.Dashboard
	err error
}

func (s *stubDashboardService) Get(ctx context.Context) (*models.Dashboard, error) {
	return s.out, s.err
}

// --- helpers ---

func newTestRouter(t *testing.T, es EmployeeService, as AttendanceService, ds DashboardService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewRouter(false, log, es, as, ds)
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), "body: %s", w.Body.String())
	return w, decoded
}

// --- tests ---

func TestRoot(t *testing.T) {
	r := newTestRouter(t, &stubEmployeeService{}, &stubAttendanceService{}, &stubDashboardService{})

	w, body := doRequest(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HRMS API is running", body["message"])
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &stubEmployeeService{}, &stubAttendanceService{}, &stubDashboardService{})

	w, body := doRequest(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t, &stubEmployeeService{}, &stubAttendanceService{}, &stubDashboardService{})

	w, _ := doRequest(t, r, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
