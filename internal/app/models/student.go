package models

import (
	"time"
)

// Student defines the student role record based on the 'students' table
type Student struct {
	ID              int64     `json:"id" db:"id"`
	PersonID        int64     `json:"personId" db:"person_id"`
	EnrolmentNumber int64     `json:"enrolmentNumber" db:"enrolment_number"`
	BranchID        int64     `json:"branchId" db:"branch_id"`
	CurrentYear     int       `json:"currentYear" db:"current_year"`
	CurrentSemester int       `json:"currentSemester" db:"current_semester"`
	StartDate       time.Time `json:"startDate" db:"start_date"`

	// Relations (populated when needed)
	Person *Person `json:"person,omitempty"`
	Branch *Branch `json:"branch,omitempty"`
}
