package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckInRequestValidate(t *testing.T) {
	empty := CheckInRequest{}
	assert.NoError(t, empty.Validate())

	dated := CheckInRequest{Date: "2026-03-02"}
	assert.NoError(t, dated.Validate())

	bad := CheckInRequest{Date: "03/02/2026"}
	assert.Error(t, bad.Validate())
}

func TestRejectAttendanceRequestValidate(t *testing.T) {
	ok := RejectAttendanceRequest{ID: "att-1", Reason: "No matching schedule"}
	assert.NoError(t, ok.Validate())

	missing := RejectAttendanceRequest{ID: "att-1"}
	assert.Error(t, missing.Validate())
}

func TestAttendanceFilterValidate(t *testing.T) {
	status := StatusApproved
	start := "2026-03-01"
	valid := AttendanceFilter{Status: &status, StartDate: &start, SortOrder: "asc"}
	assert.NoError(t, valid.Validate())

	badStatus := "archived"
	assert.Error(t, (&AttendanceFilter{Status: &badStatus}).Validate())

	badDate := "tomorrow"
	assert.Error(t, (&AttendanceFilter{Date: &badDate}).Validate())

	assert.Error(t, (&AttendanceFilter{SortOrder: "sideways"}).Validate())
}
