package models

import (
	"time"
)

// Sync batch kinds.
const (
	SyncKindStudents = "students"
	SyncKindFaculty  = "faculty"
)

// SyncBatch records one run of an ACAD pull, with per-record and
// per-sub-profile outcome counts.
type SyncBatch struct {
	ID              string     `json:"id" db:"id"` // uuid
	Kind            string     `json:"kind" db:"kind"`
	StartedAt       time.Time  `json:"startedAt" db:"started_at"`
	FinishedAt      *time.Time `json:"finishedAt,omitempty" db:"finished_at"`
	Total           int        `json:"total" db:"total"`
	Imported        int        `json:"imported" db:"imported"`
	Failed          int        `json:"failed" db:"failed"`
	ProfileFailures int        `json:"profileFailures" db:"profile_failures"`
}
