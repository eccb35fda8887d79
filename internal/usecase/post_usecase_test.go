package usecase_test

import (
	"testing"

	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreatePostDenormalizesAuthor(t *testing.T) {
	postRepo := new(MockPostRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewPostUsecase(postRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Name: "Alice", Avatar: "https://www.gravatar.com/avatar/abc"}, nil)
	postRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Post")).Return(nil)

	post, err := uc.Create(authedCtx("u1"), "hi")
	assert.NoError(t, err)
	assert.Equal(t, "Alice", post.Name)
	assert.Equal(t, "https://www.gravatar.com/avatar/abc", post.Avatar)
	assert.Equal(t, "u1", post.UserID)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
	assert.NotEmpty(t, post.ID)
}

func TestCreatePostRequiresText(t *testing.T) {
	uc := usecase.NewPostUsecase(new(MockPostRepo), new(MockUserRepo))

	_, err := uc.Create(authedCtx("u1"), "   ")
	assertAppErrorCode(t, err, 400)
}

func TestDeleteForeignPostForbidden(t *testing.T) {
	postRepo := new(MockPostRepo)
	uc := usecase.NewPostUsecase(postRepo, new(MockUserRepo))

	postRepo.On("GetByID", mock.Anything, "p1").Return(&domain.Post{ID: "p1", UserID: "owner"}, nil)

	err := uc.Delete(authedCtx("intruder"), "p1")
	assertAppErrorCode(t, err, 403)
	postRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLikeSetSemantics(t *testing.T) {
	t.Run("first like is recorded", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		uc := usecase.NewPostUsecase(postRepo, new(MockUserRepo))

		postRepo.On("GetByID", mock.Anything, "p1").
			Return(&domain.Post{ID: "p1", UserID: "owner", Likes: []domain.Like{}}, nil)
		postRepo.On("AddLike", mock.Anything, "p1", domain.Like{UserID: "u1"}).
			Return(&domain.Post{ID: "p1", Likes: []domain.Like{{UserID: "u1"}}}, nil)

		likes, err := uc.Like(authedCtx("u1"), "p1")
		assert.NoError(t, err)
		assert.Equal(t, []domain.Like{{UserID: "u1"}}, likes)
	})

	t.Run("second like from same user is a no-op", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		uc := usecase.NewPostUsecase(postRepo, new(MockUserRepo))

		postRepo.On("GetByID", mock.Anything, "p1").
			Return(&domain.Post{ID: "p1", Likes: []domain.Like{{UserID: "u1"}}}, nil)

		likes, err := uc.Like(authedCtx("u1"), "p1")
		assert.NoError(t, err)
		assert.Len(t, likes, 1)
		postRepo.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing post is 404", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		uc := usecase.NewPostUsecase(postRepo, new(MockUserRepo))

		postRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		_, err := uc.Like(authedCtx("u1"), "ghost")
		assertAppErrorCode(t, err, 404)
	})
}

func TestUnlike(t *testing.T) {
	t.Run("keeps every like from other users", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		uc := usecase.NewPostUsecase(postRepo, new(MockUserRepo))

		postRepo.On("GetByID", mock.Anything, "p1").
			Return(&domain.Post{ID: "p1", Likes: []domain.Like{{UserID: "u1"}, {UserID: "u2"}}}, nil)
		postRepo.On("RemoveLike", mock.Anything, "p1", "u1").
			Return(&domain.Post{ID: "p1", Likes: []domain.Like{{UserID: "u2"}}}, nil)

		likes, err := uc.Unlike(authedCtx("u1"), "p1")
		assert.NoError(t, err)
		assert.Equal(t, []domain.Like{{UserID: "u2"}}, likes)
	})

	t.Run("unliking a post never liked is rejected", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		uc := usecase.NewPostUsecase(postRepo, new(MockUserRepo))

		postRepo.On("GetByID", mock.Anything, "p1").
			Return(&domain.Post{ID: "p1", Likes: []domain.Like{{UserID: "u2"}}}, nil)

		_, err := uc.Unlike(authedCtx("u1"), "p1")
		assertAppErrorCode(t, err, 400)
		postRepo.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAddCommentDenormalizesAuthor(t *testing.T) {
	postRepo := new(MockPostRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewPostUsecase(postRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, "u2").
		Return(&domain.User{ID: "u2", Name: "Bob", Avatar: "https://www.gravatar.com/avatar/bob"}, nil)

	var captured domain.Comment
	postRepo.On("AddComment", mock.Anything, "p1", mock.AnythingOfType("domain.Comment")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(domain.Comment)
		}).
		Return(&domain.Post{ID: "p1", Comments: []domain.Comment{{ID: "c1"}}}, nil)

	_, err := uc.AddComment(authedCtx("u2"), "p1", "nice post")
	assert.NoError(t, err)
	assert.NotEmpty(t, captured.ID)
	assert.Equal(t, "Bob", captured.Name)
	assert.Equal(t, "u2", captured.UserID)
}

func TestRemoveComment(t *testing.T) {
	post := &domain.Post{
		ID:     "p1",
		UserID: "owner",
		Comments: []domain.Comment{
			{ID: "c1", UserID: "u1"},
			{ID: "c2", UserID: "u2"},
		},
	}

	t.Run("owner removes own comment", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		uc := usecase.NewPostUsecase(postRepo, new(MockUserRepo))

		postRepo.On("GetByID", mock.Anything, "p1").Return(post, nil)
		postRepo.On("RemoveComment", mock.Anything, "p1", "c1").
			Return(&domain.Post{ID: "p1", Comments: []domain.Comment{{ID: "c2", UserID: "u2"}}}, nil)

		comments, err := uc.RemoveComment(authedCtx("u1"), "p1", "c1")
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, "c2", comments[0].ID)
	})

	t.Run("non-owner is rejected loudly", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		uc := usecase.NewPostUsecase(postRepo, new(MockUserRepo))

		postRepo.On("GetByID", mock.Anything, "p1").Return(post, nil)

		_, err := uc.RemoveComment(authedCtx("u1"), "p1", "c2")
		assertAppErrorCode(t, err, 403)
		postRepo.AssertNotCalled(t, "RemoveComment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown comment is 404", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		uc := usecase.NewPostUsecase(postRepo, new(MockUserRepo))

		postRepo.On("GetByID", mock.Anything, "p1").Return(post, nil)

		_, err := uc.RemoveComment(authedCtx("u1"), "p1", "ghost")
		assertAppErrorCode(t, err, 404)
	})
}
