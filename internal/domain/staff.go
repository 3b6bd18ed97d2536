package domain

type Staff struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// StaffStats holds the staff counters for the comprehensive snapshot.
// ByDepartment is a display string like "Front Desk: 4, Housekeeping: 7".
type StaffStats struct {
	Total        int    `json:"total"`
	ByDepartment string `json:"by_department"`
}
