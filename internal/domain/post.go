package domain

import (
	"context"
	"time"
)

type Like struct {
	UserID string `json:"user"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`   // denormalized at write time
	Avatar    string    `json:"avatar"` // denormalized at write time
	CreatedAt time.Time `json:"date"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`   // denormalized at write time
	Avatar    string    `json:"avatar"` // denormalized at write time
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// LikedBy reports whether the post already carries a like from the user.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// CommentByID returns the matching comment or nil.
func (p *Post) CommentByID(id string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			return &p.Comments[i]
		}
	}
	return nil
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetAll(ctx context.Context) ([]Post, error)
	// GetByID returns (nil, nil) when the post does not exist.
	GetByID(ctx context.Context, id string) (*Post, error)
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
	// AddLike appends atomically; a like already present for the same user
	// is left untouched (set semantics enforced store-side as well).
	AddLike(ctx context.Context, postID string, like Like) (*Post, error)
	RemoveLike(ctx context.Context, postID, userID string) (*Post, error)
	AddComment(ctx context.Context, postID string, comment Comment) (*Post, error)
	RemoveComment(ctx context.Context, postID, commentID string) (*Post, error)
}

type PostUsecase interface {
	Create(ctx context.Context, text string) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id string) (*Post, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) ([]Like, error)
	Unlike(ctx context.Context, id string) ([]Like, error)
	AddComment(ctx context.Context, postID, text string) ([]Comment, error)
	RemoveComment(ctx context.Context, postID, commentID string) ([]Comment, error)
}
