package v1

import (
	"net/http"

	"go-devconnector-backend/internal/delivery/http/response"
	"go-devconnector-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUC domain.PostUsecase
}

func NewPostHandler(public *gin.RouterGroup, protected *gin.RouterGroup, postUC domain.PostUsecase) {
	handler := &PostHandler{postUC: postUC}

	publicPosts := public.Group("/posts")
	{
		publicPosts.GET("", handler.List)
		publicPosts.GET("/:id", handler.Get)
	}

	protectedPosts := protected.Group("/posts")
	{
		protectedPosts.POST("", handler.Create)
		protectedPosts.DELETE("/:id", handler.Delete)
		protectedPosts.PUT("/like/:id", handler.Like)
		protectedPosts.PUT("/unlike/:id", handler.Unlike)
		protectedPosts.POST("/comment/:id", handler.AddComment)
		protectedPosts.DELETE("/comment/:id/:commentId", handler.RemoveComment)
	}
}

type PostRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create publishes a post under the authenticated user.
// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	post, err := h.postUC.Create(c.Request.Context(), req.Text)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Post created", post)
}

// List returns all posts, newest first.
// GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", posts)
}

// Get returns a single post.
// GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", post)
}

// Delete removes a post the authenticated user owns.
// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Post removed", nil)
}

// Like records the authenticated user's like; liking twice is a no-op.
// PUT /api/posts/like/:id
func (h *PostHandler) Like(c *gin.Context) {
	likes, err := h.postUC.Like(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", likes)
}

// Unlike removes the authenticated user's like.
// PUT /api/posts/unlike/:id
func (h *PostHandler) Unlike(c *gin.Context) {
	likes, err := h.postUC.Unlike(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", likes)
}

// AddComment appends a comment to a post.
// POST /api/posts/comment/:id
func (h *PostHandler) AddComment(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	comments, err := h.postUC.AddComment(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Comment added", comments)
}

// RemoveComment deletes a comment the authenticated user owns.
// DELETE /api/posts/comment/:id/:commentId
func (h *PostHandler) RemoveComment(c *gin.Context) {
	comments, err := h.postUC.RemoveComment(c.Request.Context(), c.Param("id"), c.Param("commentId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Comment removed", comments)
}
