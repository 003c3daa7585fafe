package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/attendance"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/clock"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/database"
	"github.com/worklane-hr/worklane-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db      *database.DB
	repo    attendance.AttendanceRepository
	tracker *Tracker
	clock   clock.Clock
}

func NewAttendanceService(db *database.DB, repo attendance.AttendanceRepository, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:      db,
		repo:    repo,
		tracker: NewTracker(),
		clock:   clk,
	}
}

// Helper to get company_id and employee_id from JWT context
func claimsFromContext(ctx context.Context) (companyID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return companyID, employeeID, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	companyID, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	date := now
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err == nil {
			date = parsed
		}
	}

	// The existence checks and the insert share one transaction, serialized
	// per employee by an advisory lock so concurrent check-ins cannot both
	// pass the checks and insert.
	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.repo.AcquireCheckInLock(txCtx, employeeID); err != nil {
			return err
		}

		var open *attendance.Attendance
		session, err := a.repo.GetOpenSession(txCtx, employeeID)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("failed to get open session: %w", err)
			}
		} else {
			open = &session
		}

		var sameDay *attendance.Attendance
		existing, err := a.repo.GetForDay(txCtx, employeeID, date.Truncate(24*time.Hour))
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("failed to get attendance for day: %w", err)
			}
		} else {
			sameDay = &existing
		}

		record, err := a.tracker.CheckIn(open, sameDay, employeeID, companyID, date, now)
		if err != nil {
			return err
		}

		created, err = a.repo.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created, now), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	_, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	session, err := a.repo.GetOpenSession(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	now := a.clock.Now()
	if err := a.tracker.CheckOut(&session, now); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.repo.Update(ctx, session); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(session, now), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	companyID, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.repo.GetMyAttendance(ctx, employeeID, filter, companyID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	return a.buildListResponse(attendances, total, filter), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.repo.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return a.buildListResponse(attendances, total, filter), nil
}

func (a *AttendanceServiceImpl) buildListResponse(attendances []attendance.Attendance, total int64, filter attendance.AttendanceFilter) attendance.ListAttendanceResponse {
	now := a.clock.Now()
	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att, now))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Attendances: responses,
	}
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.repo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return mapAttendanceToResponse(att, a.clock.Now()), nil
}

// ApproveAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ApproveAttendance(ctx context.Context, req attendance.ApproveAttendanceRequest) (attendance.AttendanceResponse, error) {
	return a.review(ctx, req.ID, attendance.StatusApproved, nil)
}

// RejectAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RejectAttendance(ctx context.Context, req attendance.RejectAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return a.review(ctx, req.ID, attendance.StatusRejected, &req.Reason)
}

// review applies an approval decision; a record can only be reviewed once.
func (a *AttendanceServiceImpl) review(ctx context.Context, id, status string, reason *string) (attendance.AttendanceResponse, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return attendance.AttendanceResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	att, err := a.repo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if att.Status == attendance.StatusApproved || att.Status == attendance.StatusRejected {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceAlreadyProcessed
	}

	now := a.clock.Now()
	att.Status = status
	att.ApprovedBy = &userID
	att.ApprovedAt = &now
	att.RejectionReason = reason

	if err := a.repo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return mapAttendanceToResponse(att, now), nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse.
// Open sessions get a live elapsed H:MM:SS string against now.
func mapAttendanceToResponse(att attendance.Attendance, now time.Time) attendance.AttendanceResponse {
	var employeeName string
	if att.EmployeeName != nil {
		employeeName = *att.EmployeeName
	}

	var totalHours *string
	if att.TotalHours != nil {
		str := att.TotalHours.StringFixed(2)
		totalHours = &str
	}

	var elapsed *string
	if att.Open() && att.CheckIn != nil {
		str := Elapsed(*att.CheckIn, now)
		elapsed = &str
	}

	return attendance.AttendanceResponse{
		ID:              att.ID,
		EmployeeID:      att.EmployeeID,
		EmployeeName:    employeeName,
		Date:            att.Date.Format("2006-01-02"),
		CheckInTime:     timePtrToString(att.CheckIn),
		CheckOutTime:    timePtrToString(att.CheckOut),
		TotalHours:      totalHours,
		Elapsed:         elapsed,
		Status:          att.Status,
		RejectionReason: att.RejectionReason,
		CreatedAt:       att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
