package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/worklane-hr/worklane-backend-go/internal/domain/attendance"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/clock"
)

// AutoCloser closes sessions whose owner forgot to check out. Closed sessions
// get the auto_closed status so reviewers can spot them; hours are computed
// from the stale check-in to the moment the job runs.
type AutoCloser struct {
	repo        attendance.AttendanceRepository
	clock       clock.Clock
	maxAgeHours int
}

func NewAutoCloser(repo attendance.AttendanceRepository, clk clock.Clock, maxAgeHours int) *AutoCloser {
	return &AutoCloser{
		repo:        repo,
		clock:       clk,
		maxAgeHours: maxAgeHours,
	}
}

// Run closes every stale open session. Intended as a cron job body.
func (c *AutoCloser) Run(ctx context.Context) error {
	sessions, err := c.repo.GetStaleOpenSessions(ctx, c.maxAgeHours)
	if err != nil {
		return fmt.Errorf("failed to get stale open sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil
	}

	now := c.clock.Now()
	closed := 0
	for _, session := range sessions {
		if session.CheckIn == nil {
			continue
		}

		checkOut := now
		hours := SessionHours(*session.CheckIn, checkOut)
		session.CheckOut = &checkOut
		session.TotalHours = &hours
		session.Status = attendance.StatusAutoClosed

		if err := c.repo.Update(ctx, session); err != nil {
			slog.Error("Failed to auto-close attendance session",
				"attendance_id", session.ID, "employee_id", session.EmployeeID, "error", err)
			continue
		}
		closed++
	}

	slog.Info("Auto-closed stale attendance sessions", "stale", len(sessions), "closed", closed)
	return nil
}
