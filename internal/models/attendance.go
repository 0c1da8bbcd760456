package models

import "time"

// AttendanceStatus enumerates the valid daily marks.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance is one daily mark. At most one row exists per
// (EmployeeID, Date) pair; the schema enforces this.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     AttendanceStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AttendanceWithEmployee is the joined read model for ledger listings and
// the dashboard activity feed: the mark plus the owner's display identity.
type AttendanceWithEmployee struct {
	Attendance
	EmployeeName string
	EmployeeCode string
}
