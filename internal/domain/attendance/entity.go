package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance statuses. The tracker only ever sets CheckedIn and CheckedOut;
// the review states are set by an approver, and AutoClosed by the cron job.
const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusAutoClosed = "auto_closed"
)

type Attendance struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	Date            time.Time
	CheckIn         *time.Time
	CheckOut        *time.Time
	TotalHours      *decimal.Decimal
	Status          string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}

// Open reports whether the session is still waiting for a check-out.
func (a Attendance) Open() bool {
	return a.CheckOut == nil
}
