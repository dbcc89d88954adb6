package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/omniport/acadsync/internal/acad"
	"github.com/omniport/acadsync/internal/app/models"
	"github.com/omniport/acadsync/internal/pkg/apperrors"
	"github.com/omniport/acadsync/internal/pkg/countries"
)

// instituteDomain is stripped from institute email addresses before the
// faculty username is derived.
const instituteDomain = "iitr.ac.in"

// dateOfBirthLayout is the timestamp format ACAD uses for DateofBirth.
const dateOfBirthLayout = "2006-01-02T15:04:05"

// Sub-profile kinds reported by PopulateDetails.
const (
	profileLocation    = "location"
	profileContact     = "contact"
	profilePolitical   = "political"
	profileBiological  = "biological"
	profileFinancial   = "financial"
	profileResidential = "residential"
)

// Storage dependencies of the importer, satisfied by the repositories
// package.
type userStore interface {
	GetOrCreateByUsername(ctx context.Context, username string) (*models.User, bool, error)
}

type personStore interface {
	GetOrCreate(ctx context.Context, userID int64, fullName string) (*models.Person, bool, error)
	Create(ctx context.Context, fullName string) (*models.Person, error)
	AddParent(ctx context.Context, personID, parentID int64) error
}

type studentStore interface {
	GetOrCreate(ctx context.Context, student *models.Student) (*models.Student, bool, error)
}

type facultyStore interface {
	GetOrCreate(ctx context.Context, faculty *models.FacultyMember) (*models.FacultyMember, bool, error)
}

type departmentStore interface {
	GetByCode(ctx context.Context, code string) (*models.Department, error)
}

type branchStore interface {
	GetByCode(ctx context.Context, code string) (*models.Branch, error)
}

type residenceStore interface {
	GetOrCreateByCode(ctx context.Context, code string) (*models.Residence, error)
}

type profileStore interface {
	CreateLocation(ctx context.Context, info *models.LocationInformation) error
	CreateContact(ctx context.Context, info *models.ContactInformation) error
	CreatePolitical(ctx context.Context, info *models.PoliticalInformation) error
	CreateBiological(ctx context.Context, info *models.BiologicalInformation) error
	CreateFinancial(ctx context.Context, info *models.FinancialInformation) error
	CreateResidential(ctx context.Context, info *models.ResidentialInformation) error
}

// titleCase normalizes the mixed-case names ACAD sends. Casers are stateful,
// so one is created per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// ImportService turns raw ACAD records into persons, role records and
// sub-profiles.
//
// Two failure policies coexist by design of the source system: a faculty
// record whose username cannot be derived fails hard and aborts that record,
// while sub-profile and guardian creation fail soft. Soft failures are
// logged and reported back in counts rather than silently dropped.
type ImportService struct {
	users       userStore
	persons     personStore
	students    studentStore
	faculty     facultyStore
	departments departmentStore
	branches    branchStore
	residences  residenceStore
	profiles    profileStore
	logger      zerolog.Logger

	// now is swappable in tests
	now func() time.Time
}

// NewImportService creates a new import service instance
func NewImportService(
	users userStore,
	persons personStore,
	students studentStore,
	faculty facultyStore,
	departments departmentStore,
	branches branchStore,
	residences residenceStore,
	profiles profileStore,
	lgr zerolog.Logger,
) *ImportService {
	return &ImportService{
		users:       users,
		persons:     persons,
		students:    students,
		faculty:     faculty,
		departments: departments,
		branches:    branches,
		residences:  residences,
		profiles:    profiles,
		logger:      lgr,
		now:         time.Now,
	}
}

// DeriveFacultyUsername derives a username from the institute email of a
// faculty record. The institute domain is stripped and a sub-address part,
// when present, is re-encoded with a literal 'f' separator:
//
//	ab@iitr.ac.in   -> ab
//	ab@1.iitr.ac.in -> abf1
func DeriveFacultyUsername(instituteEmail string) (string, bool) {
	uname := strings.ReplaceAll(instituteEmail, instituteDomain, "")
	parts := strings.Split(uname, "@")
	if len(parts) < 2 {
		return "", false
	}

	if parts[1] == "" {
		return parts[0], true
	}
	return parts[0] + "f" + strings.Trim(parts[1], "."), true
}

// CreateUser gets or creates the user and person for a record. For faculty
// the username is derived from IITREmailID; a missing or overlong username
// is a hard failure that aborts the record.
func (s *ImportService) CreateUser(ctx context.Context, username string, isFaculty bool, record acad.Record) (*models.User, *models.Person, error) {
	if isFaculty {
		if derived, ok := DeriveFacultyUsername(record.Str("IITREmailID")); ok {
			username = derived
		}
	}

	if username == "" || len(username) > models.MaxUsernameLength {
		return nil, nil, fmt.Errorf("%w: %q", apperrors.ErrUsernameNotDerivable, username)
	}

	name := record.Str("Name")
	if name == "" {
		return nil, nil, fmt.Errorf("%w: Name", apperrors.ErrMissingField)
	}

	user, _, err := s.users.GetOrCreateByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating user: %w", err)
	}

	person, _, err := s.persons.GetOrCreate(ctx, user.ID, titleCase(name))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating person: %w", err)
	}

	return user, person, nil
}

// CreateFaculty gets or creates the faculty role record for a person. The
// department is resolved through the DepartmentAlphaCode table and the start
// date defaults to import time.
func (s *ImportService) CreateFaculty(ctx context.Context, record acad.Record, person *models.Person) (*models.FacultyMember, error) {
	employeeID, err := record.Int("EmployeeNo")
	if err != nil {
		return nil, fmt.Errorf("%w: EmployeeNo", apperrors.ErrMissingField)
	}

	deptCode, ok := models.DepartmentCodeForAlphaCode(record.Str("DepartmentAlphaCode"))
	if !ok {
		return nil, fmt.Errorf("%w: alpha code %q", apperrors.ErrDepartmentNotFound, record.Str("DepartmentAlphaCode"))
	}

	department, err := s.departments.GetByCode(ctx, deptCode)
	if err != nil {
		return nil, fmt.Errorf("error resolving department: %w", err)
	}

	faculty := &models.FacultyMember{
		PersonID:     person.ID,
		EmployeeID:   employeeID,
		DepartmentID: department.ID,
		Designation:  models.DesignationCode(record.Str("Designation")),
		StartDate:    s.now(),
	}

	faculty, _, err = s.faculty.GetOrCreate(ctx, faculty)
	if err != nil {
		return nil, fmt.Errorf("error creating faculty member: %w", err)
	}

	return faculty, nil
}

// ParseSemesterCode splits a semester code into the current year and the
// current semester. The second character is the year Y and the third the
// half H within it; the semester is (Y-1)*2 + H + 1.
func ParseSemesterCode(code string) (year, semester int, err error) {
	if len(code) < 3 {
		return 0, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidSemesterCode, code)
	}

	y := code[1]
	h := code[2]
	if y < '0' || y > '9' || h < '0' || h > '9' {
		return 0, 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidSemesterCode, code)
	}

	year = int(y - '0')
	semester = (year-1)*2 + int(h-'0') + 1
	return year, semester, nil
}

// CreateStudent gets or creates the student role record for a person, then
// best-effort creates the guardian persons. Guardian failures never fail the
// student.
func (s *ImportService) CreateStudent(ctx context.Context, record acad.Record, person *models.Person) (*models.Student, error) {
	enrolmentNumber, err := record.Int("EnrollmentNo")
	if err != nil {
		return nil, fmt.Errorf("%w: EnrollmentNo", apperrors.ErrMissingField)
	}

	year, semester, err := ParseSemesterCode(record.Str("SemesterID"))
	if err != nil {
		return nil, err
	}

	branch, err := s.branches.GetByCode(ctx, record.Str("ProgramID"))
	if err != nil {
		return nil, fmt.Errorf("error resolving branch: %w", err)
	}

	student := &models.Student{
		PersonID:        person.ID,
		EnrolmentNumber: enrolmentNumber,
		BranchID:        branch.ID,
		CurrentYear:     year,
		CurrentSemester: semester,
		StartDate:       s.now(),
	}

	s.addGuardians(ctx, record, person)

	student, _, err = s.students.GetOrCreate(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// addGuardians creates the parent persons from the guardian name fields and
// links them. Any failure is logged and skipped.
func (s *ImportService) addGuardians(ctx context.Context, record acad.Record, person *models.Person) {
	for _, key := range []string{"Fathersname", "MotherName"} {
		name := record.Str(key)
		if name == "" {
			s.logger.Debug().Int64("personID", person.ID).Str("field", key).Msg("Guardian name missing, skipping")
			continue
		}

		parent, err := s.persons.Create(ctx, titleCase(name))
		if err != nil {
			s.logger.Warn().Err(err).Int64("personID", person.ID).Str("field", key).Msg("Failed to create guardian")
			return
		}

		if err := s.persons.AddParent(ctx, person.ID, parent.ID); err != nil {
			s.logger.Warn().Err(err).Int64("personID", person.ID).Str("field", key).Msg("Failed to link guardian")
			return
		}
	}
}

// PopulateLocationInfo creates the location sub-profile. It reports success
// instead of returning an error.
func (s *ImportService) PopulateLocationInfo(ctx context.Context, person *models.Person, details acad.Record) bool {
	info := &models.LocationInformation{
		PersonID: person.ID,
		Address:  details.Str("PermanentAddress"),
		State:    details.Str("State"),
		City:     details.Str("City"),
		Country:  countries.CodeForName(details.FirstOf("Nationality", "Pcountry")),
	}

	if err := s.profiles.CreateLocation(ctx, info); err != nil {
		s.logger.Warn().Err(err).Int64("personID", person.ID).Msg("Failed to create location information")
		return false
	}
	return true
}

// PopulateContactInfo creates the contact sub-profile. A record without a
// personal email fails soft, matching the source system.
func (s *ImportService) PopulateContactInfo(ctx context.Context, person *models.Person, details acad.Record) bool {
	if !details.Has("EmailID") {
		s.logger.Warn().Int64("personID", person.ID).Msg("EmailID missing, skipping contact information")
		return false
	}

	webmail := details.Str("PRIEMAIL")
	if webmail == "" {
		webmail = details.Str("IITREmailID")
	}

	info := &models.ContactInformation{
		PersonID:                person.ID,
		PrimaryPhoneNumber:      optional(details.Str("Mobileno")),
		SecondaryPhoneNumber:    optional(details.Str("ContactNo")),
		EmailAddress:            details.Str("EmailID"),
		InstituteWebmailAddress: webmail,
	}

	if err := s.profiles.CreateContact(ctx, info); err != nil {
		s.logger.Warn().Err(err).Int64("personID", person.ID).Msg("Failed to create contact information")
		return false
	}
	return true
}

// PopulateDetails creates all six sub-profiles for a person. Each kind is
// isolated: a failure is logged and reported in the returned list, and never
// blocks the remaining kinds.
func (s *ImportService) PopulateDetails(ctx context.Context, person *models.Person, details acad.Record) []string {
	var failed []string

	if !s.PopulateLocationInfo(ctx, person, details) {
		failed = append(failed, profileLocation)
	}
	if !s.PopulateContactInfo(ctx, person, details) {
		failed = append(failed, profileContact)
	}
	if !s.populatePoliticalInfo(ctx, person, details) {
		failed = append(failed, profilePolitical)
	}
	if !s.populateBiologicalInfo(ctx, person, details) {
		failed = append(failed, profileBiological)
	}
	if !s.populateFinancialInfo(ctx, person) {
		failed = append(failed, profileFinancial)
	}
	if !s.populateResidentialInfo(ctx, person, details) {
		failed = append(failed, profileResidential)
	}

	return failed
}

func (s *ImportService) populatePoliticalInfo(ctx context.Context, person *models.Person, details acad.Record) bool {
	info := &models.PoliticalInformation{
		PersonID:            person.ID,
		Nationality:         countries.CodeForName(details.FirstOf("Nationality", "Pcountry")),
		Religion:            titleCase(details.Str("Religion")),
		ReservationCategory: models.CategoryCode(details.Str("Category")),
	}

	if err := s.profiles.CreatePolitical(ctx, info); err != nil {
		s.logger.Warn().Err(err).Int64("personID", person.ID).Msg("Failed to create political information")
		return false
	}
	return true
}

func (s *ImportService) populateBiologicalInfo(ctx context.Context, person *models.Person, details acad.Record) bool {
	dateOfBirth := s.now()
	if details.Has("DateofBirth") {
		parsed, err := time.Parse(dateOfBirthLayout, details.Str("DateofBirth"))
		if err != nil {
			s.logger.Warn().Err(err).Int64("personID", person.ID).Str("dateOfBirth", details.Str("DateofBirth")).Msg("Malformed date of birth, skipping biological information")
			return false
		}
		dateOfBirth = parsed
	}

	sex := models.DefaultSex
	gender := models.DefaultGender
	pronoun := models.DefaultPronoun
	if g := details.Str("Gender"); g != "" {
		sex = strings.ToLower(g)
		if strings.HasPrefix(sex, "f") {
			gender = "woman"
			pronoun = "s"
		}
	}

	info := &models.BiologicalInformation{
		PersonID:    person.ID,
		DateOfBirth: dateOfBirth,
		BloodGroup:  models.NormalizeBloodGroup(details.StrOr("BloodGroup", models.DefaultBloodGroup)),
		Sex:         sex,
		Gender:      gender,
		Pronoun:     pronoun,
		Impairment:  models.DefaultImpairment,
	}

	if err := s.profiles.CreateBiological(ctx, info); err != nil {
		s.logger.Warn().Err(err).Int64("personID", person.ID).Msg("Failed to create biological information")
		return false
	}
	return true
}

func (s *ImportService) populateFinancialInfo(ctx context.Context, person *models.Person) bool {
	info := &models.FinancialInformation{PersonID: person.ID}

	if err := s.profiles.CreateFinancial(ctx, info); err != nil {
		s.logger.Warn().Err(err).Int64("personID", person.ID).Msg("Failed to create financial information")
		return false
	}
	return true
}

func (s *ImportService) populateResidentialInfo(ctx context.Context, person *models.Person, details acad.Record) bool {
	code := models.ResidenceCodeForName(details.Str("Bhawan"))

	residence, err := s.residences.GetOrCreateByCode(ctx, code)
	if err != nil {
		s.logger.Warn().Err(err).Int64("personID", person.ID).Str("code", code).Msg("Failed to resolve residence")
		return false
	}

	info := &models.ResidentialInformation{
		PersonID:    person.ID,
		ResidenceID: residence.ID,
		RoomNumber:  details.StrOr("RoomNo", models.DefaultRoomNumber),
	}

	if err := s.profiles.CreateResidential(ctx, info); err != nil {
		s.logger.Warn().Err(err).Int64("personID", person.ID).Msg("Failed to create residential information")
		return false
	}
	return true
}

// ImportResult reports the outcome of one record import.
type ImportResult struct {
	Username        string
	PersonID        int64
	ProfileFailures []string
}

// ImportFacultyRecord runs the whole pipeline for one faculty record.
func (s *ImportService) ImportFacultyRecord(ctx context.Context, record acad.Record) (*ImportResult, error) {
	user, person, err := s.CreateUser(ctx, "", true, record)
	if err != nil {
		return nil, err
	}

	if _, err := s.CreateFaculty(ctx, record, person); err != nil {
		return nil, err
	}

	failed := s.PopulateDetails(ctx, person, record)

	return &ImportResult{
		Username:        user.Username,
		PersonID:        person.ID,
		ProfileFailures: failed,
	}, nil
}

// ImportStudentRecord runs the whole pipeline for one student record. The
// enrolment number doubles as the username.
func (s *ImportService) ImportStudentRecord(ctx context.Context, record acad.Record) (*ImportResult, error) {
	user, person, err := s.CreateUser(ctx, record.Str("EnrollmentNo"), false, record)
	if err != nil {
		return nil, err
	}

	if _, err := s.CreateStudent(ctx, record, person); err != nil {
		return nil, err
	}

	failed := s.PopulateDetails(ctx, person, record)

	return &ImportResult{
		Username:        user.Username,
		PersonID:        person.ID,
		ProfileFailures: failed,
	}, nil
}

// optional maps an empty string to a nil pointer.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
