package usecase

import (
	"context"
	"errors"
	"strings"

	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/pkg/apperror"
	"go-devconnector-backend/pkg/github"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	postRepo    domain.PostRepository
	github      *github.Client
	validate    *validator.Validate
}

func NewProfileUsecase(
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
	postRepo domain.PostRepository,
	githubClient *github.Client,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		github:      githubClient,
		validate:    validate,
	}
}

// parseSkills turns "a, b ,c" into ["a","b","c"]: split on commas, trim
// whitespace, drop empty entries, keep order.
func parseSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (u *profileUsecase) MyProfile(ctx context.Context) (*domain.Profile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("There is no profile for this user.")
	}
	return profile, nil
}

func (u *profileUsecase) Upsert(ctx context.Context, input domain.ProfileInput) (*domain.Profile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	profile := &domain.Profile{
		ID:             uuid.NewString(), // used only when the upsert inserts
		UserID:         userID,
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Status:         input.Status,
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Skills:         parseSkills(input.Skills),
		Social: domain.SocialLinks{
			Youtube:   input.Youtube,
			Twitter:   input.Twitter,
			Facebook:  input.Facebook,
			Linkedin:  input.Linkedin,
			Instagram: input.Instagram,
		},
	}

	return u.profileRepo.Upsert(ctx, profile)
}

func (u *profileUsecase) List(ctx context.Context) ([]domain.Profile, error) {
	return u.profileRepo.GetAll(ctx)
}

func (u *profileUsecase) ByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found.")
	}
	return profile, nil
}

// AddExperience head-inserts; ownership is implicit since the profile is
// keyed by the authenticated user.
func (u *profileUsecase) AddExperience(ctx context.Context, exp domain.Experience) (*domain.Profile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Struct(exp); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	exp.ID = uuid.NewString()
	profile, err := u.profileRepo.AddExperience(ctx, userID, exp)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("There is no profile for this user.")
	}
	return profile, nil
}

func (u *profileUsecase) RemoveExperience(ctx context.Context, expID string) (*domain.Profile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.RemoveExperience(ctx, userID, expID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("There is no profile for this user.")
	}
	return profile, nil
}

func (u *profileUsecase) AddEducation(ctx context.Context, edu domain.Education) (*domain.Profile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Struct(edu); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	edu.ID = uuid.NewString()
	profile, err := u.profileRepo.AddEducation(ctx, userID, edu)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("There is no profile for this user.")
	}
	return profile, nil
}

func (u *profileUsecase) RemoveEducation(ctx context.Context, eduID string) (*domain.Profile, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.RemoveEducation(ctx, userID, eduID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("There is no profile for this user.")
	}
	return profile, nil
}

// DeleteAccount cascades: posts first, then profile, then the user record.
// Each step is an independent single-document operation; a failure midway
// leaves earlier deletions in place.
func (u *profileUsecase) DeleteAccount(ctx context.Context) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := u.postRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := u.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return u.userRepo.Delete(ctx, userID)
}

func (u *profileUsecase) GithubRepos(ctx context.Context, username string) ([]domain.GithubRepo, error) {
	repos, err := u.github.ReposByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, github.ErrNoProfile) {
			return nil, apperror.NotFound("No Github profile found.")
		}
		return nil, apperror.Internal(err)
	}

	out := make([]domain.GithubRepo, 0, len(repos))
	for _, r := range repos {
		out = append(out, domain.GithubRepo{
			Name:        r.Name,
			HTMLURL:     r.HTMLURL,
			Description: r.Description,
			Stars:       r.StargazersCount,
			Forks:       r.ForksCount,
		})
	}
	return out, nil
}
