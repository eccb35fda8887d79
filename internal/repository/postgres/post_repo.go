package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &postRepo{db: db}
}

const postColumns = `id, user_id, text, name, avatar, likes, comments, created_at`

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		p           domain.Post
		likesRaw    []byte
		commentsRaw []byte
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.Avatar, &likesRaw, &commentsRaw, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(likesRaw, &p.Likes); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(commentsRaw, &p.Comments); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `INSERT INTO posts (id, user_id, text, name, avatar, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, post.ID, post.UserID, post.Text, post.Name, post.Avatar, post.CreatedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *postRepo) GetAll(ctx context.Context) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return posts, nil
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	p, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return p, nil
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *postRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM posts WHERE user_id = $1`, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// AddLike appends in a single statement, guarded by a containment check so
// a duplicate like from the same user never produces a second entry even
// under concurrent requests.
func (r *postRepo) AddLike(ctx context.Context, postID string, like domain.Like) (*domain.Post, error) {
	entry, err := json.Marshal([]domain.Like{like})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	query := `UPDATE posts
		SET likes = likes || $2::jsonb
		WHERE id = $1 AND NOT likes @> $2::jsonb
		RETURNING ` + postColumns

	p, err := scanPost(r.db.QueryRow(ctx, query, postID, string(entry)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the post is gone or the like already exists; let the
			// current state disambiguate.
			return r.GetByID(ctx, postID)
		}
		return nil, apperror.Internal(err)
	}
	return p, nil
}

func (r *postRepo) RemoveLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	query := `UPDATE posts
		SET likes = COALESCE(
			(SELECT jsonb_agg(elem ORDER BY ord)
			   FROM jsonb_array_elements(likes) WITH ORDINALITY AS t(elem, ord)
			  WHERE elem->>'user' <> $2),
			'[]'::jsonb)
		WHERE id = $1
		RETURNING ` + postColumns

	p, err := scanPost(r.db.QueryRow(ctx, query, postID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return p, nil
}

func (r *postRepo) AddComment(ctx context.Context, postID string, comment domain.Comment) (*domain.Post, error) {
	entry, err := json.Marshal([]domain.Comment{comment})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	query := `UPDATE posts
		SET comments = comments || $2::jsonb
		WHERE id = $1
		RETURNING ` + postColumns

	p, err := scanPost(r.db.QueryRow(ctx, query, postID, string(entry)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return p, nil
}

func (r *postRepo) RemoveComment(ctx context.Context, postID, commentID string) (*domain.Post, error) {
	query := `UPDATE posts
		SET comments = COALESCE(
			(SELECT jsonb_agg(elem ORDER BY ord)
			   FROM jsonb_array_elements(comments) WITH ORDINALITY AS t(elem, ord)
			  WHERE elem->>'id' <> $2),
			'[]'::jsonb)
		WHERE id = $1
		RETURNING ` + postColumns

	p, err := scanPost(r.db.QueryRow(ctx, query, postID, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return p, nil
}
