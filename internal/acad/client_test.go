package acad

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
)

func TestFetchStudentsPagesUntilShortPage(t *testing.T) {
	const pageSize = 2
	pages := [][]Record{
		{{"EnrollmentNo": "1"}, {"EnrollmentNo": "2"}},
		{{"EnrollmentNo": "3"}},
	}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != studentsPath {
			t.Errorf("path = %q, want %q", r.URL.Path, studentsPath)
		}
		gotAuth = r.Header.Get("Authorization")

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if size := r.URL.Query().Get("size"); size != strconv.Itoa(pageSize) {
			t.Errorf("size = %q, want %d", size, pageSize)
		}

		records := []Record{}
		if page >= 1 && page <= len(pages) {
			records = pages[page-1]
		}
		json.NewEncoder(w).Encode(records)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL:  srv.URL,
		APIToken: "secret",
		PageSize: pageSize,
	}, zerolog.Nop())

	records, err := client.FetchStudents(context.Background())
	if err != nil {
		t.Fatalf("FetchStudents returned error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", gotAuth)
	}
}

func TestFetchFacultyErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL}, zerolog.Nop())

	if _, err := client.FetchFaculty(context.Background()); err == nil {
		t.Fatal("FetchFaculty succeeded despite error status")
	}
}
