// Package models holds the persistence-level records of the HRMS domain.
// Wire-format shaping lives in the HTTP layer, not here.
package models

import "time"

// Employee is a directory record. Code is the external employee code
// (the employee_id column), distinct from the internal numeric ID.
// A non-nil DeletedAt excludes the record from every active view, but the
// row still blocks email/code reuse.
type Employee struct {
	ID         int64
	Code       string
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
