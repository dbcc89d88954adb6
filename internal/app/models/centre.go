package models

// Centre represents an academic centre. Codes are restricted to the
// CentreChoices set.
type Centre struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
}

// Name resolves the stored code to its display name.
func (c *Centre) Name() string {
	return CentreChoices[c.Code]
}

// CentreChoices is the closed choice set of centre codes.
var CentreChoices = map[string]string{
	"qip": "Quality Improvement Programme Centre",
	"cec": "Continuing Education Centre",
	"icc": "Institute Computer Centre",
	"iic": "Institute Instrumentation Centre",
	"cnt": "Centre of Nanotechnology",
	"cts": "Centre for Transportation Systems",
	"cdm": "Centre of Excellence in Disaster Mitigation and Management",
	"dic": "Design Innovation Centre",
	"mrc": "Mahatma Gandhi Central Library and Resource Centre",
	"ccb": "Centre for Continuing Business Education",
}
