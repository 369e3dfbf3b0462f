package hrms

import "errors"

var (
	ErrConnectionNotFound = errors.New("hrms connection not found")
)
