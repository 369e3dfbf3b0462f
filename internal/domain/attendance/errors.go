package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance not found")
)
