package models

import "time"

// DepartmentCount is one bucket of the active-headcount histogram.
type DepartmentCount struct {
	Department string
	Count      int64
}

// DashboardStats are the headline counters for the configured "today".
// NotMarked is clamped to zero by the service.
type DashboardStats struct {
	TotalEmployees int64
	PresentToday   int64
	AbsentToday    int64
	NotMarked      int64
	Date           time.Time
}

// Dashboard is the full read-only composition returned by the
// aggregation service.
type Dashboard struct {
	Stats            DashboardStats
	Departments      []DepartmentCount
	RecentAttendance []*AttendanceWithEmployee
	RecentEmployees  []*Employee
}
