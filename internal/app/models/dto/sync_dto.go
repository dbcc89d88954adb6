package dto

import (
	"time"

	"github.com/omniport/acadsync/internal/acad"
)

// ImportRecordRequest pushes a single raw ACAD record through the importer.
// Record carries the ACAD payload unchanged.
type ImportRecordRequest struct {
	Record acad.Record `json:"record" binding:"required"`
}

// ImportRecordResponse reports the outcome of a single-record import
type ImportRecordResponse struct {
	Username        string   `json:"username"`
	PersonID        int64    `json:"personId"`
	ProfileFailures []string `json:"profileFailures,omitempty"`
}

// SyncBatchResponse reports the outcome of a full ACAD pull
type SyncBatchResponse struct {
	ID              string     `json:"id"`
	Kind            string     `json:"kind"`
	StartedAt       time.Time  `json:"startedAt"`
	FinishedAt      *time.Time `json:"finishedAt,omitempty"`
	Total           int        `json:"total"`
	Imported        int        `json:"imported"`
	Failed          int        `json:"failed"`
	ProfileFailures int        `json:"profileFailures"`
}
