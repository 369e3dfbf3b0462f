package attendance

// Attendance is the month summary imported from the HR system for one employee.
type Attendance struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	PresentDays   int     `json:"presentDays"`
	LeaveDays     int     `json:"leaveDays"`
	OvertimeHours float64 `json:"overtimeHours"`
}
