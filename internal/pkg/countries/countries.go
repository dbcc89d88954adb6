package countries

import "strings"

// DefaultCode is used when a nationality cannot be matched against the table.
const DefaultCode = "IN"

// byCode maps ISO 3166-1 alpha-2 codes to English country names. The table
// covers the nationalities that actually appear in ACAD exports; anything
// outside it falls back to DefaultCode.
var byCode = map[string]string{
	"AF": "Afghanistan",
	"AU": "Australia",
	"BD": "Bangladesh",
	"BT": "Bhutan",
	"BR": "Brazil",
	"CA": "Canada",
	"CN": "China",
	"EG": "Egypt",
	"ET": "Ethiopia",
	"FR": "France",
	"DE": "Germany",
	"GH": "Ghana",
	"ID": "Indonesia",
	"IN": "India",
	"IR": "Iran",
	"IQ": "Iraq",
	"IT": "Italy",
	"JP": "Japan",
	"JO": "Jordan",
	"KE": "Kenya",
	"KR": "South Korea",
	"KW": "Kuwait",
	"LK": "Sri Lanka",
	"MY": "Malaysia",
	"MV": "Maldives",
	"MU": "Mauritius",
	"MM": "Myanmar",
	"NP": "Nepal",
	"NL": "Netherlands",
	"NG": "Nigeria",
	"OM": "Oman",
	"PK": "Pakistan",
	"PH": "Philippines",
	"QA": "Qatar",
	"RU": "Russia",
	"RW": "Rwanda",
	"SA": "Saudi Arabia",
	"SG": "Singapore",
	"ZA": "South Africa",
	"SD": "Sudan",
	"SY": "Syria",
	"TZ": "Tanzania",
	"TH": "Thailand",
	"TR": "Turkey",
	"UG": "Uganda",
	"AE": "United Arab Emirates",
	"GB": "United Kingdom",
	"US": "United States of America",
	"VN": "Vietnam",
	"YE": "Yemen",
	"ZM": "Zambia",
	"ZW": "Zimbabwe",
}

// Name returns the country name for an ISO code, or the empty string if the
// code is not in the table.
func Name(code string) string {
	return byCode[strings.ToUpper(code)]
}

// CodeForName resolves a country name to its ISO code, matching
// case-insensitively. Unknown or empty names resolve to DefaultCode.
func CodeForName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultCode
	}
	for code, n := range byCode {
		if strings.EqualFold(n, name) {
			return code
		}
	}
	return DefaultCode
}
