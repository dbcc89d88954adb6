package acad

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/omniport/acadsync/internal/pkg/apperrors"
)

// Endpoints exposed by the ACAD API.
const (
	studentsPath = "/api/students"
	facultyPath  = "/api/faculty"
)

// ClientConfig holds the settings for the ACAD API client.
type ClientConfig struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
	PageSize int
}

// Client pulls raw records from the institute academic-records API.
type Client struct {
	baseURL  string
	apiToken string
	pageSize int
	http     *http.Client
	logger   zerolog.Logger
}

// NewClient creates a new ACAD API client.
func NewClient(cfg ClientConfig, lgr zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 200
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		apiToken: cfg.APIToken,
		pageSize: pageSize,
		http:     &http.Client{Timeout: timeout},
		logger:   lgr,
	}
}

// FetchStudents retrieves all student records.
func (c *Client) FetchStudents(ctx context.Context) ([]Record, error) {
	return c.fetchAll(ctx, studentsPath)
}

// FetchFaculty retrieves all faculty records.
func (c *Client) FetchFaculty(ctx context.Context) ([]Record, error) {
	return c.fetchAll(ctx, facultyPath)
}

// fetchAll pages through an ACAD endpoint until a short page is returned.
func (c *Client) fetchAll(ctx context.Context, path string) ([]Record, error) {
	var all []Record

	for page := 1; ; page++ {
		records, err := c.fetchPage(ctx, path, page)
		if err != nil {
			return nil, err
		}

		all = append(all, records...)
		c.logger.Debug().Str("path", path).Int("page", page).Int("records", len(records)).Msg("Fetched ACAD page")

		if len(records) < c.pageSize {
			break
		}
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, path string, page int) ([]Record, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid acad endpoint: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build acad request: %w", err)
	}

	q := req.URL.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(c.pageSize))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAcadRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", apperrors.ErrAcadRequest, resp.StatusCode, path)
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode acad response: %w", err)
	}

	return records, nil
}
