package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/attendance"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return parsed
}

func TestCheckInOpensSession(t *testing.T) {
	tracker := NewTracker()
	now := mustTime(t, "2026-03-02 09:00:00")

	record, err := tracker.CheckIn(nil, nil, "emp-1", "company-1", now, now)
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "emp-1", record.EmployeeID)
	assert.Equal(t, "company-1", record.CompanyID)
	assert.Equal(t, attendance.StatusCheckedIn, record.Status)
	require.NotNil(t, record.CheckIn)
	assert.True(t, record.CheckIn.Equal(now))
	assert.Nil(t, record.CheckOut)
	assert.Nil(t, record.TotalHours)
	assert.True(t, record.Open())
}

func TestCheckInRejectsSecondOpenSession(t *testing.T) {
	tracker := NewTracker()
	now := mustTime(t, "2026-03-02 09:00:00")

	open, err := tracker.CheckIn(nil, nil, "emp-1", "company-1", now, now)
	require.NoError(t, err)

	_, err = tracker.CheckIn(&open, &open, "emp-1", "company-1", now, now.Add(time.Hour))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInRejectedAfterSameDayCheckOut(t *testing.T) {
	tracker := NewTracker()
	morning := mustTime(t, "2026-03-02 09:00:00")

	session, err := tracker.CheckIn(nil, nil, "emp-1", "company-1", morning, morning)
	require.NoError(t, err)
	require.NoError(t, tracker.CheckOut(&session, morning.Add(8*time.Hour)))

	// The day already has a checked-out record; a second session would earn
	// a fresh regular-hours cap in payroll.
	_, err = tracker.CheckIn(nil, &session, "emp-1", "company-1", morning, morning.Add(9*time.Hour))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInAllowedOnNextDay(t *testing.T) {
	tracker := NewTracker()
	monday := mustTime(t, "2026-03-02 09:00:00")
	tuesday := mustTime(t, "2026-03-03 09:00:00")

	session, err := tracker.CheckIn(nil, nil, "emp-1", "company-1", monday, monday)
	require.NoError(t, err)
	require.NoError(t, tracker.CheckOut(&session, monday.Add(8*time.Hour)))

	record, err := tracker.CheckIn(nil, nil, "emp-1", "company-1", tuesday, tuesday)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCheckedIn, record.Status)
}

func TestCheckOutComputesHours(t *testing.T) {
	tracker := NewTracker()
	checkIn := mustTime(t, "2026-03-02 09:00:00")
	checkOut := mustTime(t, "2026-03-02 17:30:00")

	session, err := tracker.CheckIn(nil, nil, "emp-1", "company-1", checkIn, checkIn)
	require.NoError(t, err)

	require.NoError(t, tracker.CheckOut(&session, checkOut))

	assert.Equal(t, attendance.StatusCheckedOut, session.Status)
	require.NotNil(t, session.CheckOut)
	require.NotNil(t, session.TotalHours)
	assert.True(t, session.TotalHours.Equal(decimal.RequireFromString("8.5")),
		"total hours = %s", session.TotalHours)
	assert.False(t, session.Open())
}

func TestCheckOutWithoutSession(t *testing.T) {
	tracker := NewTracker()
	now := mustTime(t, "2026-03-02 17:30:00")

	err := tracker.CheckOut(nil, now)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutTwice(t *testing.T) {
	tracker := NewTracker()
	checkIn := mustTime(t, "2026-03-02 09:00:00")

	session, err := tracker.CheckIn(nil, nil, "emp-1", "company-1", checkIn, checkIn)
	require.NoError(t, err)
	require.NoError(t, tracker.CheckOut(&session, checkIn.Add(8*time.Hour)))

	err = tracker.CheckOut(&session, checkIn.Add(9*time.Hour))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestSessionHours(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     string
	}{
		{"standard day", "2026-03-02 09:00:00", "2026-03-02 17:30:00", "8.5"},
		{"night shift crossing midnight", "2026-03-02 22:00:00", "2026-03-03 02:00:00", "4"},
		{"instant checkout", "2026-03-02 09:00:00", "2026-03-02 09:00:00", "0"},
		{"short session with rounding", "2026-03-02 09:00:00", "2026-03-02 09:10:00", "0.17"},
		{"full day shift", "2026-03-02 00:00:00", "2026-03-02 23:59:59", "24"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := mustTime(t, c.checkIn)
			out := mustTime(t, c.checkOut)

			got := SessionHours(in, out)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"SessionHours(%s, %s) = %s, want %s", c.checkIn, c.checkOut, got, c.want)
		})
	}
}

func TestElapsed(t *testing.T) {
	cases := []struct {
		name    string
		checkIn string
		now     string
		want    string
	}{
		{"under a minute", "2026-03-02 09:00:00", "2026-03-02 09:00:42", "0:00:42"},
		{"hours and minutes", "2026-03-02 09:00:00", "2026-03-02 12:34:05", "3:34:05"},
		{"across midnight", "2026-03-02 22:00:00", "2026-03-03 01:30:15", "3:30:15"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Elapsed(mustTime(t, c.checkIn), mustTime(t, c.now))
			assert.Equal(t, c.want, got)
		})
	}
}
