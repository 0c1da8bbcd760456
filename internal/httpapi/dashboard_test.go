package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/backend/internal/models"
)

func TestDashboard_Shape(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	ds := &stubDashboardService{out: &models.Dashboard{
		Stats: models.DashboardStats{
			TotalEmployees: 10,
			PresentToday:   6,
			AbsentToday:    1,
			NotMarked:      3,
			Date:           today,
		},
		Departments: []models.DepartmentCount{
			{Department: "Engineering", Count: 6},
		},
		RecentAttendance: []*models.AttendanceWithEmployee{
			{
				Attendance:   models.Attendance{ID: 5, Date: today, Status: models.StatusPresent},
				EmployeeName: "Asha Rao",
			},
		},
		RecentEmployees: []*models.Employee{
			{ID: 2, FullName: "Priya Nair", Department: "Design"},
		},
	}}
	r := newTestRouter(t, &stubEmployeeService{}, &stubAttendanceService{}, ds)

	w, body := doRequest(t, r, http.MethodGet, "/dashboard", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)

	stats := data["stats"].(map[string]any)
	assert.Equal(t, float64(10), stats["totalEmployees"])
	assert.Equal(t, float64(6), stats["presentToday"])
	assert.Equal(t, float64(1), stats["absentToday"])
	assert.Equal(t, float64(3), stats["notMarked"])
	assert.Equal(t, "2026-08-28", stats["date"])

	departments := data["departments"].([]any)
	require.Len(t, departments, 1)
	assert.Equal(t, "Engineering", departments[0].(map[string]any)["department"])

	recentAttendance := data["recentAttendance"].([]any)
	require.Len(t, recentAttendance, 1)
	feedRow := recentAttendance[0].(map[string]any)
	assert.Equal(t, "2026-08-28", feedRow["date"])
	assert.Equal(t, "Asha Rao", feedRow["employee"].(map[string]any)["name"])

	recentEmployees := data["recentEmployees"].([]any)
	require.Len(t, recentEmployees, 1)
	assert.Equal(t, "Priya Nair", recentEmployees[0].(map[string]any)["name"])
}

func TestDashboard_StorageError(t *testing.T) {
	ds := &stubDashboardService{err: assert.AnError}
	r := newTestRouter(t, &stubEmployeeService{}, &stubAttendanceService{}, ds)

	w, body := doRequest(t, r, http.MethodGet, "/dashboard", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, body["detail"])
}
