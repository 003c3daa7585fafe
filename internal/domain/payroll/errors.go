package payroll

import "errors"

// Payroll domain errors
var (
	ErrPeriodNotFound      = errors.New("pay period not found")
	ErrPeriodNotOpen       = errors.New("pay period is not open")
	ErrPeriodAlreadyClosed = errors.New("pay period is already closed")
)
