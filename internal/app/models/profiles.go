package models

import (
	"strings"
	"time"
)

// Defaults applied when source fields are absent or malformed.
const (
	DefaultBloodGroup = "O+"
	DefaultSex        = "male"
	DefaultGender     = "man"
	DefaultPronoun    = "h"
	DefaultImpairment = "none"
	DefaultRoomNumber = "NIL"
	DefaultCategory   = "oth"
)

// BloodGroups is the closed set of accepted blood group values.
var BloodGroups = []string{"O+", "O-", "A+", "A-", "B+", "B-", "AB+", "AB-"}

// NormalizeBloodGroup uppercases and strips a source blood group, falling
// back to DefaultBloodGroup when the result is not in the accepted set.
func NormalizeBloodGroup(raw string) string {
	bg := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), " ", "")
	for _, known := range BloodGroups {
		if bg == known {
			return bg
		}
	}
	return DefaultBloodGroup
}

// CategoryChoices restricts reservation categories to a fixed set of codes.
var CategoryChoices = map[string]string{
	"gen": "General",
	"obc": "Other Backward Classes",
	"sc":  "Scheduled Castes",
	"st":  "Scheduled Tribes",
	"ews": "Economically Weaker Section",
	"oth": "Other",
}

// categoryByName maps the Category strings ACAD sends to category codes.
var categoryByName = map[string]string{
	"general":                     "gen",
	"gen":                         "gen",
	"other backward classes":      "obc",
	"obc":                         "obc",
	"scheduled castes":            "sc",
	"sc":                          "sc",
	"scheduled tribes":            "st",
	"st":                          "st",
	"economically weaker section": "ews",
	"ews":                         "ews",
}

// CategoryCode resolves an ACAD category string to its code, defaulting to
// DefaultCategory.
func CategoryCode(raw string) string {
	if code, ok := categoryByName[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return code
	}
	return DefaultCategory
}

// LocationInformation holds the permanent address of a person.
type LocationInformation struct {
	ID       int64  `json:"id" db:"id"`
	PersonID int64  `json:"personId" db:"person_id"`
	Address  string `json:"address" db:"address"`
	City     string `json:"city" db:"city"`
	State    string `json:"state" db:"state"`
	Country  string `json:"country" db:"country"` // ISO 3166-1 alpha-2
}

// ContactInformation holds phone numbers and email addresses of a person.
type ContactInformation struct {
	ID                       int64   `json:"id" db:"id"`
	PersonID                 int64   `json:"personId" db:"person_id"`
	PrimaryPhoneNumber       *string `json:"primaryPhoneNumber,omitempty" db:"primary_phone_number"`
	SecondaryPhoneNumber     *string `json:"secondaryPhoneNumber,omitempty" db:"secondary_phone_number"`
	EmailAddress             string  `json:"emailAddress" db:"email_address"`
	InstituteWebmailAddress  string  `json:"instituteWebmailAddress" db:"institute_webmail_address"`
}

// PoliticalInformation holds nationality and reservation data of a person.
type PoliticalInformation struct {
	ID                  int64  `json:"id" db:"id"`
	PersonID            int64  `json:"personId" db:"person_id"`
	Nationality         string `json:"nationality" db:"nationality"` // ISO 3166-1 alpha-2
	Religion            string `json:"religion" db:"religion"`
	ReservationCategory string `json:"reservationCategory" db:"reservation_category"`
}

// BiologicalInformation holds the biological details of a person.
type BiologicalInformation struct {
	ID          int64     `json:"id" db:"id"`
	PersonID    int64     `json:"personId" db:"person_id"`
	DateOfBirth time.Time `json:"dateOfBirth" db:"date_of_birth"`
	BloodGroup  string    `json:"bloodGroup" db:"blood_group"`
	Sex         string    `json:"sex" db:"sex"`
	Gender      string    `json:"gender" db:"gender"`
	Pronoun     string    `json:"pronoun" db:"pronoun"`
	Impairment  string    `json:"impairment" db:"impairment"`
}

// FinancialInformation holds bank details of a person. ACAD does not export
// them, so imported rows start empty and are filled in later by the person.
type FinancialInformation struct {
	ID            int64   `json:"id" db:"id"`
	PersonID      int64   `json:"personId" db:"person_id"`
	BankName      *string `json:"bankName,omitempty" db:"bank_name"`
	AccountNumber *string `json:"accountNumber,omitempty" db:"account_number"`
	IFSCCode      *string `json:"ifscCode,omitempty" db:"ifsc_code"`
}

// ResidentialInformation places a person in a residence hall.
type ResidentialInformation struct {
	ID          int64  `json:"id" db:"id"`
	PersonID    int64  `json:"personId" db:"person_id"`
	ResidenceID int64  `json:"residenceId" db:"residence_id"`
	RoomNumber  string `json:"roomNumber" db:"room_number"`

	// Relation (populated when needed)
	Residence *Residence `json:"residence,omitempty"`
}
