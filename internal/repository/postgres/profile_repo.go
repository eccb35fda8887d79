package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/pkg/apperror"

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

const profileColumns = `id, user_id, company, website, location, status, bio, github_username,
	skills, social, experience, education, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		p         domain.Profile
		skills    []string
		socialRaw []byte
		expRaw    []byte
		eduRaw    []byte
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Status, &p.Bio, &p.GithubUsername,
		pq.Array(&skills), &socialRaw, &expRaw, &eduRaw, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Skills = skills
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if err := json.Unmarshal(socialRaw, &p.Social); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(expRaw, &p.Experience); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(eduRaw, &p.Education); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT p.id, p.user_id, p.company, p.website, p.location, p.status, p.bio,
			p.github_username, p.skills, p.social, p.experience, p.education, p.updated_at,
			u.name, u.avatar
		FROM profiles p JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	var (
		p         domain.Profile
		skills    []string
		socialRaw []byte
		expRaw    []byte
		eduRaw    []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Status, &p.Bio, &p.GithubUsername,
		pq.Array(&skills), &socialRaw, &expRaw, &eduRaw, &p.UpdatedAt,
		&p.Name, &p.Avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}

	p.Skills = skills
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if err := json.Unmarshal(socialRaw, &p.Social); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := json.Unmarshal(expRaw, &p.Experience); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := json.Unmarshal(eduRaw, &p.Education); err != nil {
		return nil, apperror.Internal(err)
	}
	return &p, nil
}

func (r *profileRepo) GetAll(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT p.id, p.user_id, p.company, p.website, p.location, p.status, p.bio,
			p.github_username, p.skills, p.social, p.experience, p.education, p.updated_at,
			u.name, u.avatar
		FROM profiles p JOIN users u ON u.id = p.user_id
		ORDER BY p.updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		var (
			p         domain.Profile
			skills    []string
			socialRaw []byte
			expRaw    []byte
			eduRaw    []byte
		)
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Status, &p.Bio, &p.GithubUsername,
			pq.Array(&skills), &socialRaw, &expRaw, &eduRaw, &p.UpdatedAt,
			&p.Name, &p.Avatar,
		)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		p.Skills = skills
		if p.Skills == nil {
			p.Skills = []string{}
		}
		if err := json.Unmarshal(socialRaw, &p.Social); err != nil {
			return nil, apperror.Internal(err)
		}
		if err := json.Unmarshal(expRaw, &p.Experience); err != nil {
			return nil, apperror.Internal(err)
		}
		if err := json.Unmarshal(eduRaw, &p.Education); err != nil {
			return nil, apperror.Internal(err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return profiles, nil
}

// Upsert replaces scalar fields wholesale on conflict; experience and
// education collections are untouched by a re-upsert.
func (r *profileRepo) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	socialJSON, err := json.Marshal(profile.Social)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	query := `INSERT INTO profiles
			(id, user_id, company, website, location, status, bio, github_username, skills, social, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username,
			skills = EXCLUDED.skills,
			social = EXCLUDED.social,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + profileColumns

	row := r.db.QueryRow(ctx, query,
		profile.ID, profile.UserID, profile.Company, profile.Website, profile.Location,
		profile.Status, profile.Bio, profile.GithubUsername, pq.Array(profile.Skills),
		string(socialJSON), time.Now(),
	)
	updated, err := scanProfile(row)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

// AddExperience prepends atomically so the collection stays most-recent-first
// under concurrent writers.
func (r *profileRepo) AddExperience(ctx context.Context, userID string, exp domain.Experience) (*domain.Profile, error) {
	entry, err := json.Marshal([]domain.Experience{exp})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	query := `UPDATE profiles
		SET experience = $2::jsonb || experience, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	updated, err := scanProfile(r.db.QueryRow(ctx, query, userID, string(entry)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

// RemoveExperience drops the matching entry and preserves the relative order
// of the rest. An unknown id is a no-op returning the unchanged profile.
func (r *profileRepo) RemoveExperience(ctx context.Context, userID, expID string) (*domain.Profile, error) {
	query := `UPDATE profiles
		SET experience = COALESCE(
			(SELECT jsonb_agg(elem ORDER BY ord)
			   FROM jsonb_array_elements(experience) WITH ORDINALITY AS t(elem, ord)
			  WHERE elem->>'id' <> $2),
			'[]'::jsonb),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	updated, err := scanProfile(r.db.QueryRow(ctx, query, userID, expID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (r *profileRepo) AddEducation(ctx context.Context, userID string, edu domain.Education) (*domain.Profile, error) {
	entry, err := json.Marshal([]domain.Education{edu})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	query := `UPDATE profiles
		SET education = $2::jsonb || education, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	updated, err := scanProfile(r.db.QueryRow(ctx, query, userID, string(entry)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (r *profileRepo) RemoveEducation(ctx context.Context, userID, eduID string) (*domain.Profile, error) {
	query := `UPDATE profiles
		SET education = COALESCE(
			(SELECT jsonb_agg(elem ORDER BY ord)
			   FROM jsonb_array_elements(education) WITH ORDINALITY AS t(elem, ord)
			  WHERE elem->>'id' <> $2),
			'[]'::jsonb),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	updated, err := scanProfile(r.db.QueryRow(ctx, query, userID, eduID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

func (r *profileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
