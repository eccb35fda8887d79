package v1

import (
	"net/http"
	"time"

	"go-devconnector-backend/internal/delivery/http/response"
	"go-devconnector-backend/internal/domain"
	"go-devconnector-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	publicProfiles := public.Group("/profiles")
	{
		publicProfiles.GET("", handler.List)
		publicProfiles.GET("/user/:userId", handler.ByUser)
		publicProfiles.GET("/github/:username", handler.GithubRepos)
	}

	protectedProfiles := protected.Group("/profiles")
	{
		protectedProfiles.GET("/me", handler.Me)
		protectedProfiles.POST("", handler.Upsert)
		protectedProfiles.PUT("/experience", handler.AddExperience)
		protectedProfiles.DELETE("/experience/:id", handler.RemoveExperience)
		protectedProfiles.PUT("/education", handler.AddEducation)
		protectedProfiles.DELETE("/education/:id", handler.RemoveEducation)
		protectedProfiles.DELETE("", handler.DeleteAccount)
	}
}

// Me returns the authenticated user's profile.
// GET /api/profiles/me
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.profileUC.MyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", profile)
}

// Upsert creates or updates the authenticated user's profile.
// POST /api/profiles
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req domain.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	profile, err := h.profileUC.Upsert(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile saved", profile)
}

// List returns all profiles.
// GET /api/profiles
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", profiles)
}

// ByUser returns a profile by its owning user id.
// GET /api/profiles/user/:userId
func (h *ProfileHandler) ByUser(c *gin.Context) {
	profile, err := h.profileUC.ByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", profile)
}

// GithubRepos proxies a best-effort lookup of the user's latest repositories.
// GET /api/profiles/github/:username
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	repos, err := h.profileUC.GithubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", repos)
}

type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// AddExperience head-inserts an experience entry.
// PUT /api/profiles/experience
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	from, err := parseDate(req.From)
	if err != nil {
		c.Error(apperror.BadRequest("From date is invalid."))
		return
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		c.Error(apperror.BadRequest("To date is invalid."))
		return
	}

	exp := domain.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	}

	profile, err := h.profileUC.AddExperience(c.Request.Context(), exp)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience added", profile)
}

// RemoveExperience removes an experience entry by id; unknown ids are a
// no-op returning the unchanged profile.
// DELETE /api/profiles/experience/:id
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	profile, err := h.profileUC.RemoveExperience(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience removed", profile)
}

type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// AddEducation head-inserts an education entry.
// PUT /api/profiles/education
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	from, err := parseDate(req.From)
	if err != nil {
		c.Error(apperror.BadRequest("From date is invalid."))
		return
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		c.Error(apperror.BadRequest("To date is invalid."))
		return
	}

	edu := domain.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	}

	profile, err := h.profileUC.AddEducation(c.Request.Context(), edu)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education added", profile)
}

// RemoveEducation removes an education entry by id.
// DELETE /api/profiles/education/:id
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	profile, err := h.profileUC.RemoveEducation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education removed", profile)
}

// DeleteAccount removes the authenticated user's posts, profile, and account.
// DELETE /api/profiles
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	if err := h.profileUC.DeleteAccount(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
