package usecase

import (
	"context"
	"strings"
	"time"

	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/pkg/apperror"

	"github.com/google/uuid"
)

type postUsecase struct {
	postRepo domain.PostRepository
	userRepo domain.UserRepository
}

func NewPostUsecase(postRepo domain.PostRepository, userRepo domain.UserRepository) domain.PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (u *postUsecase) Create(ctx context.Context, text string) (*domain.Post, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperror.BadRequest("Text is required.")
	}

	// Name and avatar are copied from the current user record at write time
	// and never live-updated afterwards.
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found.")
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now(),
	}

	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *postUsecase) List(ctx context.Context) ([]domain.Post, error) {
	return u.postRepo.GetAll(ctx)
}

func (u *postUsecase) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := u.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found.")
	}
	return post, nil
}

func (u *postUsecase) Delete(ctx context.Context, id string) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	post, err := u.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return apperror.NotFound("Post not found.")
	}
	if post.UserID != userID {
		return apperror.Forbidden("User not authorized.")
	}

	return u.postRepo.Delete(ctx, id)
}

// Like enforces set semantics: a second like from the same user returns the
// unchanged like list instead of accumulating a duplicate entry.
func (u *postUsecase) Like(ctx context.Context, id string) ([]domain.Like, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	post, err := u.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found.")
	}
	if post.LikedBy(userID) {
		return post.Likes, nil
	}

	updated, err := u.postRepo.AddLike(ctx, id, domain.Like{UserID: userID})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Post not found.")
	}
	return updated.Likes, nil
}

// Unlike keeps every like whose user differs from the requester.
func (u *postUsecase) Unlike(ctx context.Context, id string) ([]domain.Like, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	post, err := u.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found.")
	}
	if !post.LikedBy(userID) {
		return nil, apperror.BadRequest("Post has not yet been liked.")
	}

	updated, err := u.postRepo.RemoveLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Post not found.")
	}
	return updated.Likes, nil
}

func (u *postUsecase) AddComment(ctx context.Context, postID, text string) ([]domain.Comment, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperror.BadRequest("Text is required.")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found.")
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now(),
	}

	updated, err := u.postRepo.AddComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Post not found.")
	}
	return updated.Comments, nil
}

// RemoveComment fails loudly when the requester does not own the target
// comment, rather than silently keeping it.
func (u *postUsecase) RemoveComment(ctx context.Context, postID, commentID string) ([]domain.Comment, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	post, err := u.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("Post not found.")
	}

	comment := post.CommentByID(commentID)
	if comment == nil {
		return nil, apperror.NotFound("Comment does not exist.")
	}
	if comment.UserID != userID {
		return nil, apperror.Forbidden("User not authorized.")
	}

	updated, err := u.postRepo.RemoveComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.NotFound("Post not found.")
	}
	return updated.Comments, nil
}
