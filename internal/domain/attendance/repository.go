package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include companyID parameter to prevent cross-company data access.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)

	// GetOpenSession retrieves the employee's open (no check-out) session, if any.
	// Used to enforce the one-open-session invariant; call it inside the same
	// transaction as Create so concurrent check-ins cannot both pass the check.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	// GetForDay retrieves the employee's record for one work day, if any.
	// A day with a record is terminal for check-in purposes.
	GetForDay(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// AcquireCheckInLock serializes check-ins per employee for the duration of
	// the current transaction. A plain SELECT ... FOR UPDATE cannot lock a row
	// that does not exist yet, so two first check-ins could both pass the
	// open-session check and insert; the lock closes that window.
	AcquireCheckInLock(ctx context.Context, employeeID string) error

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter, companyID string) ([]Attendance, int64, error)

	// GetMyAttendance retrieves attendance records for a specific employee
	GetMyAttendance(ctx context.Context, employeeID string, filter AttendanceFilter, companyID string) ([]Attendance, int64, error)

	// GetApprovedInRange retrieves approved records for one employee inside a
	// pay period's date range. Feeds the payroll calculator.
	GetApprovedInRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]Attendance, error)

	// GetStaleOpenSessions retrieves open sessions older than maxAgeHours.
	GetStaleOpenSessions(ctx context.Context, maxAgeHours int) ([]Attendance, error)
}
