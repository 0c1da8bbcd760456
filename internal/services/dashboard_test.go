package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/backend/internal/models"
)

func newDashboardService(t *testing.T, emp *fakeEmployeesRepo, att *fakeAttendanceRepo, loc *time.Location, now time.Time) (*DashboardService, interface{ ExpectationsWereMet() error }) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	s := NewDashboardService(db, &fakeRepoManager{employees: emp, attendance: att}, loc)
	s.now = func() time.Time { return now }
	return s, mock
}

func TestDashboard_ComposesRollups(t *testing.T) {
	emp := &fakeEmployeesRepo{
		countOut: 10,
		deptOut: []models.DepartmentCount{
			{Department: "Engineering", Count: 6},
			{Department: "Design", Count: 4},
		},
		recentOut: []*models.Employee{{ID: 2, FullName: "Priya Nair", Department: "Design"}},
	}
	att := &fakeAttendanceRepo{
		presentOut: 6,
		absentOut:  1,
		recentOut: []*models.AttendanceWithEmployee{
			{Attendance: models.Attendance{ID: 5, Status: models.StatusPresent}, EmployeeName: "Asha Rao"},
		},
	}

	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	s, mock := newDashboardService(t, emp, att, time.UTC, now)

	d, err := s.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), d.Stats.TotalEmployees)
	assert.Equal(t, int64(6), d.Stats.PresentToday)
	assert.Equal(t, int64(1), d.Stats.AbsentToday)
	assert.Equal(t, int64(3), d.Stats.NotMarked)
	assert.Equal(t, "2026-08-28", d.Stats.Date.Format(time.DateOnly))
	assert.Len(t, d.Departments, 2)
	assert.Len(t, d.RecentAttendance, 1)
	assert.Len(t, d.RecentEmployees, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboard_NotMarkedClampedAtZero(t *testing.T) {
	// Marks can outnumber active employees after hard deletes; the
	// remainder must never go negative.
	emp := &fakeEmployeesRepo{countOut: 2}
	att := &fakeAttendanceRepo{presentOut: 2, absentOut: 3}

	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	s, _ := newDashboardService(t, emp, att, time.UTC, now)

	d, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), d.Stats.NotMarked)
}

func TestDashboard_TodayUsesConfiguredTimezone(t *testing.T) {
	emp := &fakeEmployeesRepo{}
	att := &fakeAttendanceRepo{}

	// 03:00 UTC on the 28th is still the 27th five and a half hours west.
	west := time.FixedZone("WEST", -int(5*time.Hour+30*time.Minute)/int(time.Second))
	now := time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC)
	s, _ := newDashboardService(t, emp, att, west, now)

	_, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-08-27", att.lastDay.Format(time.DateOnly))
}

func TestDashboard_ErrorRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	emp := &fakeEmployeesRepo{countErr: assert.AnError}
	s := NewDashboardService(db, &fakeRepoManager{employees: emp, attendance: &fakeAttendanceRepo{}}, time.UTC)

	_, err := s.Get(context.Background())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
