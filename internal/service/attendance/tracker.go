package attendance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/attendance"
)

// Tracker holds the check-in/check-out state machine and session time math.
// It is a pure calculator: the open-session state is passed in on every call,
// never held here, so the one-open-session invariant can be enforced
// transactionally by the repository layer.
type Tracker struct {
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// CheckIn opens a session for the given work day. The caller passes the
// employee's current open session and the record already stored for the work
// day (nil when there is none). An existing open session makes the transition
// illegal, and so does any prior record for the day: a checked-out day is
// terminal, otherwise a second session would get its own regular-hours cap in
// payroll.
func (t *Tracker) CheckIn(open, sameDay *attendance.Attendance, employeeID, companyID string, date time.Time, now time.Time) (attendance.Attendance, error) {
	if open != nil && open.Open() {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	if sameDay != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}

	checkIn := now
	return attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       date.Truncate(24 * time.Hour),
		CheckIn:    &checkIn,
		CheckOut:   nil,
		TotalHours: nil,
		Status:     attendance.StatusCheckedIn,
	}, nil
}

// CheckOut closes the session, computing total hours with midnight rollover.
func (t *Tracker) CheckOut(session *attendance.Attendance, now time.Time) error {
	if session == nil || session.CheckIn == nil {
		return attendance.ErrNotCheckedIn
	}
	if session.CheckOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}

	checkOut := now
	hours := SessionHours(*session.CheckIn, checkOut)

	session.CheckOut = &checkOut
	session.TotalHours = &hours
	session.Status = attendance.StatusCheckedOut
	return nil
}

// SessionHours computes the worked hours between two instants compared as
// times of day anchored to the check-in date. When the check-out time of day
// is earlier than the check-in time of day the session crossed midnight, so a
// day is added before differencing. Result is rounded to 2 decimals and
// never negative.
func SessionHours(checkIn, checkOut time.Time) decimal.Decimal {
	in := secondsOfDay(checkIn)
	out := secondsOfDay(checkOut)

	diff := out - in
	if diff < 0 {
		diff += 24 * 3600
	}

	hours := decimal.NewFromInt(int64(diff)).Div(decimal.NewFromInt(3600)).Round(2)
	if hours.IsNegative() {
		return decimal.Zero
	}
	return hours
}

// Elapsed formats the running session duration as H:MM:SS for the live
// "currently working" display. A negative time-of-day difference means the
// clock crossed midnight since check-in, so a day's worth of seconds is
// added before formatting.
func Elapsed(checkIn, now time.Time) string {
	diff := secondsOfDay(now) - secondsOfDay(checkIn)
	if diff < 0 {
		diff += 24 * 3600
	}

	h := diff / 3600
	m := (diff % 3600) / 60
	s := diff % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
