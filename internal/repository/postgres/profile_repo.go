package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `p.id, p.candidate_id, p.headline, p.summary, p.skills,
	p.experience, p.education, p.resume_url, p.contact, p.is_visible,
	p.created_at, p.updated_at`

func scanProfile(row pgx.Row, p *domain.Profile, withCandidate bool) error {
	var skills []string
	var experienceJSON, educationJSON, contactJSON []byte
	dest := []any{
		&p.ID, &p.CandidateID, &p.Headline, &p.Summary, pq.Array(&skills),
		&experienceJSON, &educationJSON, &p.ResumeURL, &contactJSON, &p.IsVisible,
		&p.CreatedAt, &p.UpdatedAt,
	}
	if withCandidate {
		dest = append(dest, &p.CandidateName, &p.CandidateEmail)
	}
	if err := row.Scan(dest...); err != nil {
		return err
	}
	p.Skills = skills
	if p.Skills == nil {
		p.Skills = []string{}
	}
	p.Experience = []domain.Experience{}
	p.Education = []domain.Education{}
	if len(experienceJSON) > 0 {
		if err := json.Unmarshal(experienceJSON, &p.Experience); err != nil {
			return err
		}
	}
	if len(educationJSON) > 0 {
		if err := json.Unmarshal(educationJSON, &p.Education); err != nil {
			return err
		}
	}
	if len(contactJSON) > 0 {
		if err := json.Unmarshal(contactJSON, &p.Contact); err != nil {
			return err
		}
	}
	return nil
}

func marshalProfileDocs(p *domain.Profile) (experience, education, contact []byte, err error) {
	if experience, err = json.Marshal(p.Experience); err != nil {
		return
	}
	if education, err = json.Marshal(p.Education); err != nil {
		return
	}
	contact, err = json.Marshal(p.Contact)
	return
}

func (r *profileRepo) GetByCandidateID(ctx context.Context, candidateID int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `, u.name, u.email
	          FROM profiles p LEFT JOIN users u ON p.candidate_id = u.id
	          WHERE p.candidate_id = $1`
	var p domain.Profile
	if err := scanProfile(r.db.QueryRow(ctx, query, candidateID), &p, true); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetVisibleByCandidateID deliberately reports hidden profiles as not found
// so callers cannot probe for their existence.
func (r *profileRepo) GetVisibleByCandidateID(ctx context.Context, candidateID int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `, u.name, u.email
	          FROM profiles p LEFT JOIN users u ON p.candidate_id = u.id
	          WHERE p.candidate_id = $1 AND p.is_visible = TRUE`
	var p domain.Profile
	if err := scanProfile(r.db.QueryRow(ctx, query, candidateID), &p, true); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	experience, education, contact, err := marshalProfileDocs(profile)
	if err != nil {
		return err
	}
	query := `INSERT INTO profiles (candidate_id, headline, summary, skills, experience,
	            education, resume_url, contact, is_visible, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return r.db.QueryRow(ctx, query,
		profile.CandidateID, profile.Headline, profile.Summary, pq.Array(profile.Skills),
		experience, education, profile.ResumeURL, contact, profile.IsVisible,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	experience, education, contact, err := marshalProfileDocs(profile)
	if err != nil {
		return err
	}
	query := `UPDATE profiles SET headline = $2, summary = $3, skills = $4, experience = $5,
	            education = $6, resume_url = $7, contact = $8, is_visible = $9, updated_at = $10
	          WHERE candidate_id = $1`
	profile.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		profile.CandidateID, profile.Headline, profile.Summary, pq.Array(profile.Skills),
		experience, education, profile.ResumeURL, contact, profile.IsVisible,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) Search(ctx context.Context, filter domain.ProfileFilter, limit, offset int, sort string) ([]domain.Profile, int64, error) {
	where := []string{"p.is_visible = TRUE"}
	args := []any{}

	if filter.Keyword != "" {
		args = append(args, "%"+filter.Keyword+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(p.headline ILIKE $%d OR p.summary ILIKE $%d)", n, n))
	}
	if len(filter.Skills) > 0 {
		args = append(args, pq.Array(filter.Skills))
		where = append(where, fmt.Sprintf("p.skills @> $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles p WHERE `+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "p.updated_at DESC"
	if sort == "updatedAt" {
		order = "p.updated_at ASC"
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s, u.name, u.email
	          FROM profiles p LEFT JOIN users u ON p.candidate_id = u.id
	          WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		profileColumns, whereClause, order, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := scanProfile(rows, &p, true); err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, p)
	}
	return profiles, total, rows.Err()
}

// Delete removes the row outright; unlike jobs, profile deletion is a hard
// delete.
func (r *profileRepo) Delete(ctx context.Context, candidateID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE candidate_id = $1`, candidateID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
