package models

import "strings"

// NonResidentCode is the fallback residence for persons living off campus or
// whose Bhawan could not be matched.
const NonResidentCode = "nor"

// Residence represents a residence hall (Bhawan). Codes are restricted to
// the ResidenceChoices set.
type Residence struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
}

// Name resolves the stored code to its display name.
func (r *Residence) Name() string {
	return ResidenceChoices[r.Code]
}

// ResidenceChoices is the closed choice set of residence codes.
var ResidenceChoices = map[string]string{
	NonResidentCode: "Not a resident",
	"azd":           "Azad Bhawan",
	"cat":           "Cautley Bhawan",
	"gng":           "Ganga Bhawan",
	"gvd":           "Govind Bhawan",
	"ind":           "Indira Bhawan",
	"jwr":           "Jawahar Bhawan",
	"kst":           "Kasturba Bhawan",
	"mlv":           "Malviya Bhawan",
	"rkb":           "Radhakrishnan Bhawan",
	"rjn":           "Rajendra Bhawan",
	"rvd":           "Ravindra Bhawan",
	"srj":           "Sarojini Bhawan",
}

// ResidenceCodeForName resolves a Bhawan name to its code, matching
// case-insensitively. Unmatched names resolve to NonResidentCode.
func ResidenceCodeForName(name string) string {
	for code, n := range ResidenceChoices {
		if strings.EqualFold(n, name) {
			return code
		}
	}
	return NonResidentCode
}
