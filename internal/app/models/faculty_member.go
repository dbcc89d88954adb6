package models

import (
	"strings"
	"time"
)

// FacultyMember defines the faculty role record based on the
// 'faculty_members' table
type FacultyMember struct {
	ID           int64     `json:"id" db:"id"`
	PersonID     int64     `json:"personId" db:"person_id"`
	EmployeeID   int64     `json:"employeeId" db:"employee_id"`
	DepartmentID int64     `json:"departmentId" db:"department_id"`
	Designation  string    `json:"designation" db:"designation"`
	StartDate    time.Time `json:"startDate" db:"start_date"`

	// Relations (populated when needed)
	Person     *Person     `json:"person,omitempty"`
	Department *Department `json:"department,omitempty"`
}

// DesignationChoices restricts faculty designations to a fixed set of codes.
var DesignationChoices = map[string]string{
	"prof":      "Professor",
	"assocprof": "Associate Professor",
	"asstprof":  "Assistant Professor",
	"emeritus":  "Emeritus Professor",
	"visiting":  "Visiting Professor",
	"lecturer":  "Lecturer",
}

// designationByTitle maps the free-text designation strings ACAD sends to
// their canonical codes.
var designationByTitle = map[string]string{
	"professor":           "prof",
	"associate professor": "assocprof",
	"assistant professor": "asstprof",
	"emeritus professor":  "emeritus",
	"emeritus fellow":     "emeritus",
	"visiting professor":  "visiting",
	"visiting faculty":    "visiting",
	"lecturer":            "lecturer",
}

// DesignationCode resolves an ACAD designation string to its canonical code.
// Unknown designations resolve to the empty string.
func DesignationCode(title string) string {
	return designationByTitle[strings.ToLower(strings.TrimSpace(title))]
}
