package attendance

import "errors"

var (
	ErrRecordNotFound   = errors.New("Attendance record not found")
	ErrAlreadyCheckedIn = errors.New("Employee has already checked in today")
)
