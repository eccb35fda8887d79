package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/internal/usecase"
	"go-devconnector-backend/pkg/github"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func TestProfileUpsertSkillsParsing(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(profileRepo, new(MockUserRepo), new(MockPostRepo), nil, newValidator())

	var saved *domain.Profile
	profileRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Profile)
		}).
		Return(&domain.Profile{}, nil)

	_, err := uc.Upsert(authedCtx("u1"), domain.ProfileInput{
		Status: "Developer",
		Skills: "a, b ,c",
	})
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, []string{"a", "b", "c"}, saved.Skills)
	assert.Equal(t, "u1", saved.UserID, "owner is always taken from the context")
}

func TestProfileUpsertValidation(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(profileRepo, new(MockUserRepo), new(MockPostRepo), nil, newValidator())

	t.Run("requires status", func(t *testing.T) {
		_, err := uc.Upsert(authedCtx("u1"), domain.ProfileInput{Skills: "go"})
		assertAppErrorCode(t, err, 400)
	})

	t.Run("requires skills", func(t *testing.T) {
		_, err := uc.Upsert(authedCtx("u1"), domain.ProfileInput{Status: "Developer"})
		assertAppErrorCode(t, err, 400)
	})

	t.Run("requires authentication", func(t *testing.T) {
		_, err := uc.Upsert(context.Background(), domain.ProfileInput{Status: "Developer", Skills: "go"})
		assertAppErrorCode(t, err, 401)
	})
}

func TestMyProfileNotFound(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(profileRepo, new(MockUserRepo), new(MockPostRepo), nil, newValidator())

	profileRepo.On("GetByUserID", mock.Anything, "u1").Return(nil, nil)

	_, err := uc.MyProfile(authedCtx("u1"))
	assertAppErrorCode(t, err, 404)
}

func TestAddExperience(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(profileRepo, new(MockUserRepo), new(MockPostRepo), nil, newValidator())

	t.Run("assigns an id before persisting", func(t *testing.T) {
		var captured domain.Experience
		profileRepo.On("AddExperience", mock.Anything, "u1", mock.AnythingOfType("domain.Experience")).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).(domain.Experience)
			}).
			Return(&domain.Profile{}, nil).Once()

		_, err := uc.AddExperience(authedCtx("u1"), domain.Experience{
			Title:   "Engineer",
			Company: "Acme",
			From:    time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, captured.ID)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		_, err := uc.AddExperience(authedCtx("u1"), domain.Experience{Title: "Engineer"})
		assertAppErrorCode(t, err, 400)
	})

	t.Run("requires an existing profile", func(t *testing.T) {
		profileRepo.On("AddExperience", mock.Anything, "u2", mock.AnythingOfType("domain.Experience")).
			Return(nil, nil)

		_, err := uc.AddExperience(authedCtx("u2"), domain.Experience{
			Title:   "Engineer",
			Company: "Acme",
			From:    time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		assertAppErrorCode(t, err, 404)
	})
}

func TestRemoveExperienceUnknownIDIsNoop(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(profileRepo, new(MockUserRepo), new(MockPostRepo), nil, newValidator())

	remaining := []domain.Experience{{ID: "e1"}, {ID: "e2"}}
	profileRepo.On("RemoveExperience", mock.Anything, "u1", "missing").
		Return(&domain.Profile{Experience: remaining}, nil)

	profile, err := uc.RemoveExperience(authedCtx("u1"), "missing")
	assert.NoError(t, err)
	assert.Equal(t, remaining, profile.Experience, "unknown id leaves the profile unchanged")
}

func TestDeleteAccountCascade(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	userRepo := new(MockUserRepo)
	postRepo := new(MockPostRepo)
	uc := usecase.NewProfileUsecase(profileRepo, userRepo, postRepo, nil, newValidator())

	postRepo.On("DeleteByUserID", mock.Anything, "u1").Return(nil)
	profileRepo.On("DeleteByUserID", mock.Anything, "u1").Return(nil)
	userRepo.On("Delete", mock.Anything, "u1").Return(nil)

	err := uc.DeleteAccount(authedCtx("u1"))
	assert.NoError(t, err)

	postRepo.AssertCalled(t, "DeleteByUserID", mock.Anything, "u1")
	profileRepo.AssertCalled(t, "DeleteByUserID", mock.Anything, "u1")
	userRepo.AssertCalled(t, "Delete", mock.Anything, "u1")
}

func TestGithubRepos(t *testing.T) {
	t.Run("maps upstream repos", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"name":"devconnector","html_url":"https://github.com/a/devconnector","stargazers_count":3}]`))
		}))
		defer upstream.Close()

		gh := github.NewClient(upstream.URL, "", nil, time.Minute)
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), new(MockUserRepo), new(MockPostRepo), gh, newValidator())

		repos, err := uc.GithubRepos(context.Background(), "a")
		assert.NoError(t, err)
		assert.Len(t, repos, 1)
		assert.Equal(t, "devconnector", repos[0].Name)
		assert.Equal(t, 3, repos[0].Stars)
	})

	t.Run("non-200 upstream becomes 404", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer upstream.Close()

		gh := github.NewClient(upstream.URL, "", nil, time.Minute)
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), new(MockUserRepo), new(MockPostRepo), gh, newValidator())

		_, err := uc.GithubRepos(context.Background(), "nobody")
		assertAppErrorCode(t, err, 404)
	})
}
