package models

import "strings"

// Department represents an academic department. Codes are restricted to the
// DepartmentChoices set.
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
}

// Name resolves the stored code to its display name.
func (d *Department) Name() string {
	return DepartmentChoices[d.Code]
}

// DepartmentChoices is the closed choice set of department codes.
var DepartmentChoices = map[string]string{
	"ase":  "Applied Science and Engineering",
	"ar":   "Architecture and Planning",
	"bt":   "Biosciences and Bioengineering",
	"che":  "Chemical Engineering",
	"cy":   "Chemistry",
	"ce":   "Civil Engineering",
	"cse":  "Computer Science and Engineering",
	"es":   "Earth Sciences",
	"eq":   "Earthquake Engineering",
	"ee":   "Electrical Engineering",
	"ece":  "Electronics and Communication Engineering",
	"hs":   "Humanities and Social Sciences",
	"hre":  "Hydro and Renewable Energy",
	"ms":   "Management Studies",
	"ma":   "Mathematics",
	"me":   "Mechanical and Industrial Engineering",
	"mt":   "Metallurgical and Materials Engineering",
	"ph":   "Physics",
	"pt":   "Paper Technology",
	"wrdm": "Water Resources Development and Management",
}

// departmentByAlphaCode maps the DepartmentAlphaCode values ACAD sends to
// department codes.
var departmentByAlphaCode = map[string]string{
	"asn": "ase",
	"arp": "ar",
	"btd": "bt",
	"chn": "che",
	"cyd": "cy",
	"cen": "ce",
	"csn": "cse",
	"esd": "es",
	"eqd": "eq",
	"een": "ee",
	"ecn": "ece",
	"hsn": "hs",
	"hrd": "hre",
	"dms": "ms",
	"mnd": "ma",
	"men": "me",
	"mtn": "mt",
	"phn": "ph",
	"ptd": "pt",
	"wrd": "wrdm",
}

// DepartmentCodeForAlphaCode resolves an ACAD DepartmentAlphaCode to a
// department code. The second return is false when the alpha code is unknown.
func DepartmentCodeForAlphaCode(alphaCode string) (string, bool) {
	code, ok := departmentByAlphaCode[strings.ToLower(strings.TrimSpace(alphaCode))]
	return code, ok
}
