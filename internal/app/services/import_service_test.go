package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/omniport/acadsync/internal/acad"
	"github.com/omniport/acadsync/internal/app/models"
	"github.com/omniport/acadsync/internal/pkg/apperrors"
)

// In-memory stores covering the importer's storage dependencies.

type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) GetOrCreateByUsername(_ context.Context, username string) (*models.User, bool, error) {
	if user, ok := s.users[username]; ok {
		return user, false, nil
	}
	user := &models.User{ID: s.nextID, Username: username, IsActive: true}
	s.nextID++
	s.users[username] = user
	return user, true, nil
}

type fakePersonStore struct {
	persons   []*models.Person
	parents   map[int64][]int64
	nextID    int64
	createErr error
}

func newFakePersonStore() *fakePersonStore {
	return &fakePersonStore{parents: map[int64][]int64{}, nextID: 1}
}

func (s *fakePersonStore) GetOrCreate(_ context.Context, userID int64, fullName string) (*models.Person, bool, error) {
	for _, p := range s.persons {
		if p.UserID != nil && *p.UserID == userID && p.FullName == fullName {
			return p, false, nil
		}
	}
	person := &models.Person{ID: s.nextID, UserID: &userID, FullName: fullName}
	s.nextID++
	s.persons = append(s.persons, person)
	return person, true, nil
}

func (s *fakePersonStore) Create(_ context.Context, fullName string) (*models.Person, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	person := &models.Person{ID: s.nextID, FullName: fullName}
	s.nextID++
	s.persons = append(s.persons, person)
	return person, nil
}

func (s *fakePersonStore) AddParent(_ context.Context, personID, parentID int64) error {
	s.parents[personID] = append(s.parents[personID], parentID)
	return nil
}

type fakeStudentStore struct {
	students []*models.Student
}

func (s *fakeStudentStore) GetOrCreate(_ context.Context, student *models.Student) (*models.Student, bool, error) {
	for _, existing := range s.students {
		if existing.EnrolmentNumber == student.EnrolmentNumber {
			return existing, false, nil
		}
	}
	student.ID = int64(len(s.students) + 1)
	s.students = append(s.students, student)
	return student, true, nil
}

type fakeFacultyStore struct {
	members []*models.FacultyMember
}

func (s *fakeFacultyStore) GetOrCreate(_ context.Context, faculty *models.FacultyMember) (*models.FacultyMember, bool, error) {
	for _, existing := range s.members {
		if existing.EmployeeID == faculty.EmployeeID {
			return existing, false, nil
		}
	}
	faculty.ID = int64(len(s.members) + 1)
	s.members = append(s.members, faculty)
	return faculty, true, nil
}

type fakeDepartmentStore struct{}

func (fakeDepartmentStore) GetByCode(_ context.Context, code string) (*models.Department, error) {
	if _, ok := models.DepartmentChoices[code]; !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return &models.Department{ID: 42, Code: code}, nil
}

type fakeBranchStore struct{}

func (fakeBranchStore) GetByCode(_ context.Context, code string) (*models.Branch, error) {
	if code == "" {
		return nil, apperrors.ErrBranchNotFound
	}
	return &models.Branch{ID: 7, Code: code}, nil
}

type fakeResidenceStore struct{}

func (fakeResidenceStore) GetOrCreateByCode(_ context.Context, code string) (*models.Residence, error) {
	if _, ok := models.ResidenceChoices[code]; !ok {
		return nil, apperrors.ErrUnknownCode
	}
	return &models.Residence{ID: 3, Code: code}, nil
}

type fakeProfileStore struct {
	location    *models.LocationInformation
	contact     *models.ContactInformation
	political   *models.PoliticalInformation
	biological  *models.BiologicalInformation
	financial   *models.FinancialInformation
	residential *models.ResidentialInformation

	failContact bool
}

var errInsert = errors.New("insert failed")

func (s *fakeProfileStore) CreateLocation(_ context.Context, info *models.LocationInformation) error {
	s.location = info
	return nil
}

func (s *fakeProfileStore) CreateContact(_ context.Context, info *models.ContactInformation) error {
	if s.failContact {
		return errInsert
	}
	s.contact = info
	return nil
}

func (s *fakeProfileStore) CreatePolitical(_ context.Context, info *models.PoliticalInformation) error {
	s.political = info
	return nil
}

func (s *fakeProfileStore) CreateBiological(_ context.Context, info *models.BiologicalInformation) error {
	s.biological = info
	return nil
}

func (s *fakeProfileStore) CreateFinancial(_ context.Context, info *models.FinancialInformation) error {
	s.financial = info
	return nil
}

func (s *fakeProfileStore) CreateResidential(_ context.Context, info *models.ResidentialInformation) error {
	s.residential = info
	return nil
}

type importFixture struct {
	service  *ImportService
	users    *fakeUserStore
	persons  *fakePersonStore
	students *fakeStudentStore
	faculty  *fakeFacultyStore
	profiles *fakeProfileStore
}

func newImportFixture() *importFixture {
	f := &importFixture{
		users:    newFakeUserStore(),
		persons:  newFakePersonStore(),
		students: &fakeStudentStore{},
		faculty:  &fakeFacultyStore{},
		profiles: &fakeProfileStore{},
	}
	f.service = NewImportService(
		f.users, f.persons, f.students, f.faculty,
		fakeDepartmentStore{}, fakeBranchStore{}, fakeResidenceStore{}, f.profiles,
		zerolog.Nop(),
	)
	f.service.now = func() time.Time {
		return time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	}
	return f
}

func TestDeriveFacultyUsername(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
		ok    bool
	}{
		{"plain institute address", "ab@iitr.ac.in", "ab", true},
		{"sub-addressed institute address", "ab@1.iitr.ac.in", "abf1", true},
		{"multi char local part", "ramesh@2.iitr.ac.in", "rameshf2", true},
		{"no at sign", "nothing here", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveFacultyUsername(tt.email)
			if got != tt.want || ok != tt.ok {
				t.Errorf("DeriveFacultyUsername(%q) = (%q, %v), want (%q, %v)", tt.email, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseSemesterCode(t *testing.T) {
	tests := []struct {
		code     string
		year     int
		semester int
		wantErr  bool
	}{
		{code: "110", year: 1, semester: 1},
		{code: "111", year: 1, semester: 2},
		{code: "120", year: 2, semester: 3},
		{code: "121", year: 2, semester: 4},
		{code: "140", year: 4, semester: 7},
		{code: "1", wantErr: true},
		{code: "", wantErr: true},
		{code: "1x0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			year, semester, err := ParseSemesterCode(tt.code)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidSemesterCode) {
					t.Fatalf("ParseSemesterCode(%q) error = %v, want ErrInvalidSemesterCode", tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSemesterCode(%q) unexpected error: %v", tt.code, err)
			}
			if year != tt.year || semester != tt.semester {
				t.Errorf("ParseSemesterCode(%q) = (%d, %d), want (%d, %d)", tt.code, year, semester, tt.year, tt.semester)
			}
		})
	}
}

func TestCreateUserFaculty(t *testing.T) {
	f := newImportFixture()

	user, person, err := f.service.CreateUser(context.Background(), "", true, acad.Record{
		"IITREmailID": "ab@1.iitr.ac.in",
		"Name":        "ANIL bose",
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if user.Username != "abf1" {
		t.Errorf("username = %q, want %q", user.Username, "abf1")
	}
	if person.FullName != "Anil Bose" {
		t.Errorf("full name = %q, want title cased %q", person.FullName, "Anil Bose")
	}
}

func TestCreateUserFacultyUsernameErrors(t *testing.T) {
	tests := []struct {
		name   string
		record acad.Record
	}{
		{"missing email", acad.Record{"Name": "Anil Bose"}},
		{"overlong derived username", acad.Record{
			"IITREmailID": "averylongusername@1.iitr.ac.in",
			"Name":        "Anil Bose",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newImportFixture()
			_, _, err := f.service.CreateUser(context.Background(), "", true, tt.record)
			if !errors.Is(err, apperrors.ErrUsernameNotDerivable) {
				t.Fatalf("CreateUser error = %v, want ErrUsernameNotDerivable", err)
			}
		})
	}
}

func TestCreateUserIsIdempotent(t *testing.T) {
	f := newImportFixture()
	record := acad.Record{"Name": "Priya Sharma"}

	first, firstPerson, err := f.service.CreateUser(context.Background(), "21114001", false, record)
	if err != nil {
		t.Fatalf("first CreateUser returned error: %v", err)
	}
	second, secondPerson, err := f.service.CreateUser(context.Background(), "21114001", false, record)
	if err != nil {
		t.Fatalf("second CreateUser returned error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("user IDs differ: %d vs %d", first.ID, second.ID)
	}
	if firstPerson.ID != secondPerson.ID {
		t.Errorf("person IDs differ: %d vs %d", firstPerson.ID, secondPerson.ID)
	}
}

func TestCreateFaculty(t *testing.T) {
	f := newImportFixture()
	person := &models.Person{ID: 10}

	faculty, err := f.service.CreateFaculty(context.Background(), acad.Record{
		"EmployeeNo":          "100234",
		"DepartmentAlphaCode": "csn",
		"Designation":         "Associate Professor",
	}, person)
	if err != nil {
		t.Fatalf("CreateFaculty returned error: %v", err)
	}

	if faculty.EmployeeID != 100234 {
		t.Errorf("employee ID = %d, want 100234", faculty.EmployeeID)
	}
	if faculty.DepartmentID != 42 {
		t.Errorf("department ID = %d, want 42", faculty.DepartmentID)
	}
	if faculty.Designation != "assocprof" {
		t.Errorf("designation = %q, want %q", faculty.Designation, "assocprof")
	}
}

func TestCreateFacultyUnknownDepartment(t *testing.T) {
	f := newImportFixture()

	_, err := f.service.CreateFaculty(context.Background(), acad.Record{
		"EmployeeNo":          "100234",
		"DepartmentAlphaCode": "zzz",
	}, &models.Person{ID: 10})
	if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Fatalf("CreateFaculty error = %v, want ErrDepartmentNotFound", err)
	}
}

func TestCreateStudent(t *testing.T) {
	f := newImportFixture()
	person := &models.Person{ID: 10}

	student, err := f.service.CreateStudent(context.Background(), acad.Record{
		"EnrollmentNo": "21114001",
		"SemesterID":   "120",
		"ProgramID":    "BT-CSE",
		"Fathersname":  "mohan kumar",
		"MotherName":   "radha kumari",
	}, person)
	if err != nil {
		t.Fatalf("CreateStudent returned error: %v", err)
	}

	if student.EnrolmentNumber != 21114001 {
		t.Errorf("enrolment number = %d, want 21114001", student.EnrolmentNumber)
	}
	if student.CurrentYear != 2 || student.CurrentSemester != 3 {
		t.Errorf("year/semester = %d/%d, want 2/3", student.CurrentYear, student.CurrentSemester)
	}

	parents := f.persons.parents[person.ID]
	if len(parents) != 2 {
		t.Fatalf("linked %d guardians, want 2", len(parents))
	}
	var names []string
	for _, p := range f.persons.persons {
		names = append(names, p.FullName)
	}
	want := map[string]bool{"Mohan Kumar": true, "Radha Kumari": true}
	found := 0
	for _, n := range names {
		if want[n] {
			found++
		}
	}
	if found != 2 {
		t.Errorf("guardian names = %v, want title cased Mohan Kumar and Radha Kumari", names)
	}
}

func TestCreateStudentGuardianFailureIsIsolated(t *testing.T) {
	f := newImportFixture()
	f.persons.createErr = errInsert

	_, err := f.service.CreateStudent(context.Background(), acad.Record{
		"EnrollmentNo": "21114001",
		"SemesterID":   "110",
		"ProgramID":    "BT-CSE",
		"Fathersname":  "Mohan Kumar",
	}, &models.Person{ID: 10})
	if err != nil {
		t.Fatalf("CreateStudent returned error despite guardian failure: %v", err)
	}
	if len(f.students.students) != 1 {
		t.Errorf("created %d students, want 1", len(f.students.students))
	}
}

func TestPopulateContactInfoRequiresEmail(t *testing.T) {
	f := newImportFixture()
	person := &models.Person{ID: 10}

	if ok := f.service.PopulateContactInfo(context.Background(), person, acad.Record{
		"Mobileno": "9876543210",
	}); ok {
		t.Fatal("PopulateContactInfo succeeded without EmailID")
	}
	if f.profiles.contact != nil {
		t.Error("contact information was created without EmailID")
	}
}

func TestPopulateContactInfoWebmailFallback(t *testing.T) {
	f := newImportFixture()
	person := &models.Person{ID: 10}

	if ok := f.service.PopulateContactInfo(context.Background(), person, acad.Record{
		"EmailID":     "someone@example.com",
		"IITREmailID": "someone@iitr.ac.in",
	}); !ok {
		t.Fatal("PopulateContactInfo failed")
	}
	if f.profiles.contact.InstituteWebmailAddress != "someone@iitr.ac.in" {
		t.Errorf("webmail = %q, want IITREmailID fallback", f.profiles.contact.InstituteWebmailAddress)
	}
	if f.profiles.contact.SecondaryPhoneNumber != nil {
		t.Error("secondary phone should be nil when ContactNo is absent")
	}
}

func TestPopulateDetailsDefaults(t *testing.T) {
	f := newImportFixture()
	person := &models.Person{ID: 10}

	failed := f.service.PopulateDetails(context.Background(), person, acad.Record{
		"EmailID": "someone@example.com",
	})
	if len(failed) != 0 {
		t.Fatalf("failed profiles = %v, want none", failed)
	}

	bio := f.profiles.biological
	if bio.BloodGroup != models.DefaultBloodGroup {
		t.Errorf("blood group = %q, want default %q", bio.BloodGroup, models.DefaultBloodGroup)
	}
	if bio.Sex != "male" || bio.Gender != "man" || bio.Pronoun != "h" {
		t.Errorf("sex/gender/pronoun = %q/%q/%q, want defaults", bio.Sex, bio.Gender, bio.Pronoun)
	}
	if bio.Impairment != models.DefaultImpairment {
		t.Errorf("impairment = %q, want %q", bio.Impairment, models.DefaultImpairment)
	}

	if f.profiles.location.Country != "IN" {
		t.Errorf("country = %q, want IN", f.profiles.location.Country)
	}
	if f.profiles.political.ReservationCategory != models.DefaultCategory {
		t.Errorf("category = %q, want %q", f.profiles.political.ReservationCategory, models.DefaultCategory)
	}
	if f.profiles.residential.RoomNumber != models.DefaultRoomNumber {
		t.Errorf("room = %q, want %q", f.profiles.residential.RoomNumber, models.DefaultRoomNumber)
	}
}

func TestPopulateDetailsGender(t *testing.T) {
	f := newImportFixture()
	person := &models.Person{ID: 10}

	f.service.PopulateDetails(context.Background(), person, acad.Record{
		"EmailID": "someone@example.com",
		"Gender":  "Female",
	})

	bio := f.profiles.biological
	if bio.Sex != "female" || bio.Gender != "woman" || bio.Pronoun != "s" {
		t.Errorf("sex/gender/pronoun = %q/%q/%q, want female/woman/s", bio.Sex, bio.Gender, bio.Pronoun)
	}
}

func TestPopulateDetailsMalformedDateFailsBiologicalOnly(t *testing.T) {
	f := newImportFixture()
	person := &models.Person{ID: 10}

	failed := f.service.PopulateDetails(context.Background(), person, acad.Record{
		"EmailID":     "someone@example.com",
		"DateofBirth": "15-07-2002",
	})

	if len(failed) != 1 || failed[0] != profileBiological {
		t.Fatalf("failed profiles = %v, want [biological]", failed)
	}
	if f.profiles.biological != nil {
		t.Error("biological information was created from a malformed date")
	}
	if f.profiles.location == nil || f.profiles.residential == nil {
		t.Error("other sub-profiles were not created")
	}
}

func TestPopulateDetailsFailureIsolation(t *testing.T) {
	f := newImportFixture()
	f.profiles.failContact = true
	person := &models.Person{ID: 10}

	failed := f.service.PopulateDetails(context.Background(), person, acad.Record{
		"EmailID": "someone@example.com",
	})

	if len(failed) != 1 || failed[0] != profileContact {
		t.Fatalf("failed profiles = %v, want [contact]", failed)
	}
	if f.profiles.location == nil || f.profiles.political == nil ||
		f.profiles.biological == nil || f.profiles.financial == nil ||
		f.profiles.residential == nil {
		t.Error("sub-profiles other than contact should all be created")
	}
}

func TestImportStudentRecord(t *testing.T) {
	f := newImportFixture()

	result, err := f.service.ImportStudentRecord(context.Background(), acad.Record{
		"EnrollmentNo": "21114001",
		"Name":         "priya sharma",
		"SemesterID":   "111",
		"ProgramID":    "BT-CSE",
		"EmailID":      "priya@example.com",
		"Bhawan":       "Kasturba Bhawan",
		"RoomNo":       "C-204",
		"BloodGroup":   "b +",
	})
	if err != nil {
		t.Fatalf("ImportStudentRecord returned error: %v", err)
	}

	if result.Username != "21114001" {
		t.Errorf("username = %q, want enrolment number", result.Username)
	}
	if len(result.ProfileFailures) != 0 {
		t.Errorf("profile failures = %v, want none", result.ProfileFailures)
	}
	if f.profiles.biological.BloodGroup != "B+" {
		t.Errorf("blood group = %q, want normalized B+", f.profiles.biological.BloodGroup)
	}
	if f.profiles.residential.RoomNumber != "C-204" {
		t.Errorf("room = %q, want C-204", f.profiles.residential.RoomNumber)
	}
}

func TestImportFacultyRecord(t *testing.T) {
	f := newImportFixture()

	result, err := f.service.ImportFacultyRecord(context.Background(), acad.Record{
		"IITREmailID":         "ab@iitr.ac.in",
		"Name":                "Anil Bose",
		"EmployeeNo":          "100234",
		"DepartmentAlphaCode": "ecn",
		"Designation":         "Professor",
		"EmailID":             "anil@example.com",
	})
	if err != nil {
		t.Fatalf("ImportFacultyRecord returned error: %v", err)
	}

	if result.Username != "ab" {
		t.Errorf("username = %q, want ab", result.Username)
	}
	if len(f.faculty.members) != 1 {
		t.Fatalf("created %d faculty members, want 1", len(f.faculty.members))
	}
	if f.faculty.members[0].Designation != "prof" {
		t.Errorf("designation = %q, want prof", f.faculty.members[0].Designation)
	}
}
