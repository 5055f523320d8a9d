package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `j.id, j.employer_id, j.title, j.company_name, j.location, j.description,
	j.requirements, j.skills, j.salary_min, j.salary_max, j.job_type, j.posted_date,
	j.application_deadline, j.is_active, j.views, j.applications_count,
	j.is_external, j.external_id, j.source, j.apply_link, j.logo_url,
	j.created_at, j.updated_at`

// sortColumns whitelists client-supplied sort keys. A leading '-' means
// descending, mirroring the public API's "-postedDate" convention.
var sortColumns = map[string]string{
	"postedDate": "j.posted_date",
	"title":      "j.title",
	"views":      "j.views",
	"salaryMax":  "j.salary_max",
	"updatedAt":  "j.updated_at",
}

func orderClause(sort, fallback string) string {
	if sort == "" {
		sort = fallback
	}
	dir := "ASC"
	if strings.HasPrefix(sort, "-") {
		dir = "DESC"
		sort = sort[1:]
	}
	col, ok := sortColumns[sort]
	if !ok {
		return "j.posted_date DESC"
	}
	return col + " " + dir
}

func scanJob(row pgx.Row, job *domain.Job, withEmployer bool) error {
	var requirements, skills []string
	dest := []any{
		&job.ID, &job.EmployerID, &job.Title, &job.CompanyName, &job.Location, &job.Description,
		pq.Array(&requirements), pq.Array(&skills), &job.SalaryMin, &job.SalaryMax,
		&job.JobType, &job.PostedDate, &job.ApplicationDeadline, &job.IsActive,
		&job.Views, &job.ApplicationsCount, &job.IsExternal, &job.ExternalID,
		&job.Source, &job.ApplyLink, &job.LogoURL, &job.CreatedAt, &job.UpdatedAt,
	}
	if withEmployer {
		dest = append(dest, &job.EmployerName)
	}
	if err := row.Scan(dest...); err != nil {
		return err
	}
	job.Requirements = requirements
	job.Skills = skills
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	return nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, title, company_name, location, description,
	            requirements, skills, salary_min, salary_max, job_type, posted_date,
	            application_deadline, is_active, is_external, external_id, source,
	            apply_link, logo_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	          RETURNING id`

	now := time.Now()
	job.PostedDate = now
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Source == "" {
		job.Source = "internal"
	}
	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.CompanyName, job.Location, job.Description,
		pq.Array(job.Requirements), pq.Array(job.Skills), job.SalaryMin, job.SalaryMax,
		job.JobType, job.PostedDate, job.ApplicationDeadline, job.IsActive,
		job.IsExternal, job.ExternalID, job.Source, job.ApplyLink, job.LogoURL,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + `, u.name
	          FROM jobs j LEFT JOIN users u ON j.employer_id = u.id
	          WHERE j.id = $1`
	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job, true); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Search composes the public job filter as an AND of whatever criteria are
// present; is_active is always enforced here, never client-side.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter, limit, offset int, sort string) ([]domain.Job, int64, error) {
	where := []string{"j.is_active = TRUE"}
	args := []any{}

	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(j.title ILIKE $%d OR j.company_name ILIKE $%d OR j.description ILIKE $%d OR j.location ILIKE $%d)",
			n, n, n, n))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		where = append(where, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		where = append(where, fmt.Sprintf("j.job_type = $%d", len(args)))
	}
	if len(filter.Skills) > 0 {
		args = append(args, pq.Array(filter.Skills))
		where = append(where, fmt.Sprintf("j.skills @> $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs j WHERE ` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s, u.name
	          FROM jobs j LEFT JOIN users u ON j.employer_id = u.id
	          WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		jobColumns, whereClause, orderClause(sort, "-postedDate"), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job, true); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) FetchByEmployer(ctx context.Context, employerID int64, filter domain.EmployerJobFilter, limit, offset int, sort string) ([]domain.Job, int64, error) {
	where := "j.employer_id = $1"
	switch filter {
	case domain.EmployerJobsActive:
		where += " AND j.is_active = TRUE"
	case domain.EmployerJobsInactive:
		where += " AND j.is_active = FALSE"
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j WHERE `+where, employerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s, u.name
	          FROM jobs j LEFT JOIN users u ON j.employer_id = u.id
	          WHERE %s ORDER BY %s LIMIT $2 OFFSET $3`,
		jobColumns, where, orderClause(sort, "-postedDate"))

	rows, err := r.db.Query(ctx, query, employerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job, true); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2, location = $3, description = $4, requirements = $5, skills = $6,
		salary_min = $7, salary_max = $8, job_type = $9, application_deadline = $10,
		is_active = $11, updated_at = $12
	WHERE id = $1`
	job.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Location, job.Description,
		pq.Array(job.Requirements), pq.Array(job.Skills),
		job.SalaryMin, job.SalaryMax, job.JobType, job.ApplicationDeadline,
		job.IsActive, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Deactivate(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE jobs SET is_active = FALSE, updated_at = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the counter in a single UPDATE so concurrent bumps
// never lose increments. Inactive jobs are not counted.
func (r *jobRepo) IncrementViews(ctx context.Context, id int64) (int64, error) {
	var views int64
	err := r.db.QueryRow(ctx,
		`UPDATE jobs SET views = views + 1 WHERE id = $1 AND is_active = TRUE RETURNING views`,
		id).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return views, nil
}

func (r *jobRepo) GetByExternalID(ctx context.Context, externalID, source string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + `
	          FROM jobs j WHERE j.external_id = $1 AND j.source = $2`
	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, externalID, source), &job, false); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}
