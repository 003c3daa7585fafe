package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/attendance"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/employee"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/payroll"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusConflict},
		{"already checked out", attendance.ErrAlreadyCheckedOut, http.StatusConflict},
		{"already processed", attendance.ErrAttendanceAlreadyProcessed, http.StatusConflict},
		{"attendance not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"period not found", payroll.ErrPeriodNotFound, http.StatusNotFound},
		{"period not open", payroll.ErrPeriodNotOpen, http.StatusBadRequest},
		{"period already closed", payroll.ErrPeriodAlreadyClosed, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}

func TestHandleErrorUnwrapsWrappedSentinels(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("run payroll: %w", payroll.ErrPeriodNotOpen))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
