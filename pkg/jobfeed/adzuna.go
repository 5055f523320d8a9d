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

const adzunaBaseURL = "https://api.adzuna.com/v1/api"

// AdzunaClient talks to the Adzuna jobs API. It serves as the fallback
// provider when JSearch is not configured.
type AdzunaClient struct {
	appID   string
	appKey  string
	country string
	baseURL string
	http    *http.Client
}

func NewAdzunaClient(appID, appKey, country string) *AdzunaClient {
	if country == "" {
		country = "gb"
	}
	return &AdzunaClient{
		appID:   appID,
		appKey:  appKey,
		country: country,
		baseURL: adzunaBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *AdzunaClient) Name() string { return "Adzuna" }

func (c *AdzunaClient) IsConfigured() bool { return c.appID != "" && c.appKey != "" }

type adzunaJob struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description  string   `json:"description"`
	ContractTime string   `json:"contract_time"`
	Created      string   `json:"created"`
	RedirectURL  string   `json:"redirect_url"`
	SalaryMin    *float64 `json:"salary_min"`
	SalaryMax    *float64 `json:"salary_max"`
}

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

func (c *AdzunaClient) Search(ctx context.Context, q domain.ExternalSearchQuery) ([]domain.ExternalJob, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("results_per_page", "10")
	if q.Query != "" {
		params.Set("what", q.Query)
	}
	if q.Location != "" {
		params.Set("where", q.Location)
	}

	endpoint := fmt.Sprintf("%s/jobs/%s/search/%s?%s", c.baseURL, c.country, strconv.Itoa(page), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna: unexpected status %d", resp.StatusCode)
	}

	var body adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	jobs := make([]domain.ExternalJob, 0, len(body.Results))
	for _, j := range body.Results {
		employmentType := "Full-time"
		if j.ContractTime == "part_time" {
			employmentType = "Part-time"
		}
		jobs = append(jobs, domain.ExternalJob{
			ID:             j.ID,
			Title:          j.Title,
			Company:        j.Company.DisplayName,
			Location:       j.Location.DisplayName,
			Description:    j.Description,
			EmploymentType: employmentType,
			PostedDate:     j.Created,
			ApplyLink:      j.RedirectURL,
			SalaryMin:      j.SalaryMin,
			SalaryMax:      j.SalaryMax,
			Requirements:   []string{},
			Source:         "adzuna",
			ExternalID:     j.ID,
		})
	}
	return jobs, nil
}
