package domain

import (
	"context"
	"time"
)

type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school" validate:"required"`
	Degree       string     `json:"degree,omitempty"`
	FieldOfStudy string     `json:"fieldofstudy" validate:"required"`
	From         time.Time  `json:"from" validate:"required"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

type Profile struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user"`
	Name           string       `json:"name,omitempty"`   // denormalized from users on read
	Avatar         string       `json:"avatar,omitempty"` // denormalized from users on read
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Status         string       `json:"status"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `json:"skills"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	UpdatedAt      time.Time    `json:"date"`
}

// ProfileInput carries the upsert payload. Scalar fields replace the stored
// values wholesale; Skills is a comma-delimited string split and trimmed
// into an ordered list.
type ProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status" validate:"required"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" validate:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type GithubRepo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
}

type ProfileRepository interface {
	// GetByUserID returns (nil, nil) when the user has no profile.
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
	// Upsert creates or replaces the profile's scalar fields atomically and
	// returns the stored document.
	Upsert(ctx context.Context, profile *Profile) (*Profile, error)
	AddExperience(ctx context.Context, userID string, exp Experience) (*Profile, error)
	RemoveExperience(ctx context.Context, userID, expID string) (*Profile, error)
	AddEducation(ctx context.Context, userID string, edu Education) (*Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID string) (*Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type ProfileUsecase interface {
	MyProfile(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, input ProfileInput) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	ByUserID(ctx context.Context, userID string) (*Profile, error)
	AddExperience(ctx context.Context, exp Experience) (*Profile, error)
	RemoveExperience(ctx context.Context, expID string) (*Profile, error)
	AddEducation(ctx context.Context, edu Education) (*Profile, error)
	RemoveEducation(ctx context.Context, eduID string) (*Profile, error)
	// DeleteAccount removes the user's posts, profile, and user record.
	DeleteAccount(ctx context.Context) error
	GithubRepos(ctx context.Context, username string) ([]GithubRepo, error)
}
