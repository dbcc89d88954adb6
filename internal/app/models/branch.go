package models

// Branch represents a degree programme a student is enrolled in, keyed by
// the ACAD ProgramID.
type Branch struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}
