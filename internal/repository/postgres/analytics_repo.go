package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type analyticsRepo struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) domain.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

// EmployerJobStats includes deactivated jobs: historical postings still count
// toward the employer's totals.
func (r *analyticsRepo) EmployerJobStats(ctx context.Context, employerID int64) ([]domain.JobPostingStat, error) {
	query := `SELECT id, title, views, applications_count, is_active, posted_date
	          FROM jobs WHERE employer_id = $1 ORDER BY posted_date DESC`
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.JobPostingStat
	for rows.Next() {
		var s domain.JobPostingStat
		if err := rows.Scan(&s.JobID, &s.Title, &s.Views, &s.ApplicationsCount, &s.IsActive, &s.PostedDate); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *analyticsRepo) CountApplicationsByStatus(ctx context.Context, employerID int64) (map[domain.ApplicationStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM applications WHERE employer_id = $1 GROUP BY status`
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ApplicationStatus]int64)
	for rows.Next() {
		var status domain.ApplicationStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *analyticsRepo) PlatformCounts(ctx context.Context) (*domain.PlatformReport, error) {
	query := `SELECT
	            (SELECT COUNT(*) FROM users),
	            (SELECT COUNT(*) FROM users WHERE role = 'candidate'),
	            (SELECT COUNT(*) FROM users WHERE role = 'employer'),
	            (SELECT COUNT(*) FROM jobs),
	            (SELECT COUNT(*) FROM jobs WHERE is_active = TRUE),
	            (SELECT COUNT(*) FROM applications)`
	var report domain.PlatformReport
	err := r.db.QueryRow(ctx, query).Scan(
		&report.TotalUsers, &report.TotalCandidates, &report.TotalEmployers,
		&report.TotalJobs, &report.TotalActiveJobs, &report.TotalApplications,
	)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *analyticsRepo) TopJobsByApplications(ctx context.Context, limit int) ([]domain.TopJob, error) {
	query := `SELECT id, title, company_name, applications_count
	          FROM jobs ORDER BY applications_count DESC, id ASC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.TopJob
	for rows.Next() {
		var t domain.TopJob
		if err := rows.Scan(&t.JobID, &t.Title, &t.Company, &t.Applications); err != nil {
			return nil, err
		}
		top = append(top, t)
	}
	return top, rows.Err()
}
