package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `a.id, a.job_id, a.candidate_id, a.employer_id, a.status,
	a.application_date, a.cover_letter, a.profile_snapshot, a.notes,
	a.assignment_submission_id, a.updated_at`

func scanApplication(row pgx.Row, a *domain.Application, dest ...any) error {
	var snapshotJSON, notesJSON []byte
	base := []any{
		&a.ID, &a.JobID, &a.CandidateID, &a.EmployerID, &a.Status,
		&a.ApplicationDate, &a.CoverLetter, &snapshotJSON, &notesJSON,
		&a.AssignmentSubmissionID, &a.UpdatedAt,
	}
	if err := row.Scan(append(base, dest...)...); err != nil {
		return err
	}
	if len(snapshotJSON) > 0 {
		if err := json.Unmarshal(snapshotJSON, &a.ProfileSnapshot); err != nil {
			return err
		}
	}
	a.Notes = []domain.ApplicationNote{}
	if len(notesJSON) > 0 {
		if err := json.Unmarshal(notesJSON, &a.Notes); err != nil {
			return err
		}
	}
	return nil
}

// Create inserts the application and bumps the job's applications_count in one
// transaction, so the counter can never drift from the rows it summarizes.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	snapshot, err := json.Marshal(app.ProfileSnapshot)
	if err != nil {
		return err
	}
	if app.Notes == nil {
		app.Notes = []domain.ApplicationNote{}
	}
	notes, err := json.Marshal(app.Notes)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	app.ApplicationDate = now
	app.UpdatedAt = now
	query := `INSERT INTO applications (job_id, candidate_id, employer_id, status,
	            application_date, cover_letter, profile_snapshot, notes, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := tx.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.EmployerID, app.Status,
		app.ApplicationDate, app.CoverLetter, snapshot, notes, app.UpdatedAt,
	).Scan(&app.ID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE jobs SET applications_count = applications_count + 1 WHERE id = $1`,
		app.JobID,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + `, j.title, j.company_name, j.location, u.name, u.email
	          FROM applications a
	          LEFT JOIN jobs j ON a.job_id = j.id
	          LEFT JOIN users u ON a.candidate_id = u.id
	          WHERE a.id = $1`
	var a domain.Application
	err := scanApplication(r.db.QueryRow(ctx, query, id), &a,
		&a.JobTitle, &a.JobCompanyName, &a.JobLocation, &a.CandidateName, &a.CandidateEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`,
		jobID, candidateID,
	).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + `, u.name, u.email
	          FROM applications a
	          LEFT JOIN users u ON a.candidate_id = u.id
	          WHERE a.job_id = $1
	          ORDER BY a.application_date DESC`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := scanApplication(rows, &a, &a.CandidateName, &a.CandidateEmail); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + `, j.title, j.company_name, j.location
	          FROM applications a
	          LEFT JOIN jobs j ON a.job_id = j.id
	          WHERE a.candidate_id = $1
	          ORDER BY a.application_date DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := scanApplication(rows, &a, &a.JobTitle, &a.JobCompanyName, &a.JobLocation); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus, note *domain.ApplicationNote) error {
	if note != nil {
		noteJSON, err := json.Marshal(note)
		if err != nil {
			return err
		}
		tag, err := r.db.Exec(ctx,
			`UPDATE applications
			 SET status = $2, notes = notes || $3::jsonb, updated_at = $4
			 WHERE id = $1`,
			id, status, noteJSON, time.Now())
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Withdraw flips the status and decrements the job counter together. The
// GREATEST guard keeps historical data with an already-zero counter from
// going negative.
func (r *applicationRepo) Withdraw(ctx context.Context, id, jobID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		id, domain.StatusWithdrawn, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx,
		`UPDATE jobs SET applications_count = GREATEST(applications_count - 1, 0) WHERE id = $1`,
		jobID,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
