package jobfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-jobportal-backend/internal/domain"
)

const (
	jsearchBaseURL = "https://jsearch.p.rapidapi.com"
	jsearchHost    = "jsearch.p.rapidapi.com"
)

// JSearchClient talks to the JSearch API on RapidAPI.
type JSearchClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewJSearchClient(apiKey string) *JSearchClient {
	return &JSearchClient{
		apiKey:  apiKey,
		baseURL: jsearchBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *JSearchClient) Name() string { return "JSearch" }

func (c *JSearchClient) IsConfigured() bool { return c.apiKey != "" }

// jsearchJob is the vendor payload shape we consume.
type jsearchJob struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	EmployerLogo      string   `json:"employer_logo"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobDescription    string   `json:"job_description"`
	JobEmploymentType string   `json:"job_employment_type"`
	JobPostedAtUTC    string   `json:"job_posted_at_datetime_utc"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency"`
	JobRequiredSkills []string `json:"job_required_skills"`
	JobIsRemote       bool     `json:"job_is_remote"`
}

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// Search queries JSearch and normalizes the results.
func (c *JSearchClient) Search(ctx context.Context, q domain.ExternalSearchQuery) ([]domain.ExternalJob, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	query := q.Query
	if query == "" {
		query = "software developer"
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	numPages := q.NumPages
	if numPages < 1 {
		numPages = 1
	}
	datePosted := q.DatePosted
	if datePosted == "" {
		datePosted = "all"
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", strconv.Itoa(numPages))
	params.Set("date_posted", datePosted)
	params.Set("remote_jobs_only", strconv.FormatBool(q.RemoteOnly))
	if q.EmploymentTypes != "" {
		params.Set("employment_types", q.EmploymentTypes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", jsearchHost)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsearch: unexpected status %d", resp.StatusCode)
	}

	var body jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	jobs := make([]domain.ExternalJob, 0, len(body.Data))
	for _, j := range body.Data {
		jobs = append(jobs, normalizeJSearchJob(j))
	}
	return jobs, nil
}

// Ping performs a minimal live query to verify the provider responds.
func (c *JSearchClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := c.Search(ctx, domain.ExternalSearchQuery{Query: "test", Page: 1, NumPages: 1})
	return err
}

func normalizeJSearchJob(j jsearchJob) domain.ExternalJob {
	location := j.JobCountry
	if j.JobCity != "" && j.JobState != "" {
		location = j.JobCity + ", " + j.JobState
	}
	if location == "" {
		location = "Remote"
	}

	skills := j.JobRequiredSkills
	if skills == nil {
		skills = []string{}
	}

	return domain.ExternalJob{
		ID:             j.JobID,
		Title:          j.JobTitle,
		Company:        j.EmployerName,
		Location:       location,
		Description:    j.JobDescription,
		EmploymentType: j.JobEmploymentType,
		PostedDate:     j.JobPostedAtUTC,
		ApplyLink:      j.JobApplyLink,
		SalaryMin:      j.JobMinSalary,
		SalaryMax:      j.JobMaxSalary,
		SalaryCurrency: j.JobSalaryCurrency,
		Requirements:   skills,
		IsRemote:       j.JobIsRemote,
		Source:         "jsearch",
		ExternalID:     j.JobID,
		LogoURL:        j.EmployerLogo,
	}
}
