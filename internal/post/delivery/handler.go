package delivery

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/delivery"
	"github.com/daniellfalcao/dark-blue-parrot-server/internal/post/dto"
	"github.com/daniellfalcao/dark-blue-parrot-server/internal/post/usecase"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/apperror"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/config"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/logger"
)

type PostHandler struct {
	postUsecase usecase.PostUsecase
	cfg         *config.Config
}

func NewPostHandler(postUsecase usecase.PostUsecase, cfg *config.Config) *PostHandler {
	return &PostHandler{postUsecase: postUsecase, cfg: cfg}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := authdelivery.CallerID(c)

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postUsecase.CreatePost(userID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	userID := authdelivery.CallerID(c)

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postUsecase.GetPost(userID, req.PostID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// GetPostStream serves the post as a server-sent event stream: one baseline
// event, then one per detected change. The stream ends when the client
// disconnects (the request context cancels the poll loop) or when the post is
// deleted.
func (h *PostHandler) GetPostStream(c *gin.Context) {
	userID := authdelivery.CallerID(c)

	postID := c.Query("post_id")
	if postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post_id is required"})
		return
	}

	updates, err := h.postUsecase.WatchPost(c.Request.Context(), userID, postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		post, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent("post", gin.H{"post": post})
		return true
	})
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	userID := authdelivery.CallerID(c)
	req := bindPostsRequest(c)

	page, err := h.postUsecase.GetPosts(userID, req.LastPostID)
	if err != nil {
		// Deliberate degrade-to-empty: the feed never fails on the wire.
		logger.Log.WithError(err).Warn("feed listing degraded to empty page")
		page = emptyPage(h.cfg.FeedPageLimit)
	}
	c.JSON(http.StatusOK, page)
}

func (h *PostHandler) GetMyPosts(c *gin.Context) {
	userID := authdelivery.CallerID(c)
	req := bindPostsRequest(c)

	page, err := h.postUsecase.GetMyPosts(userID, req.LastPostID)
	if err != nil {
		logger.Log.WithError(err).Warn("author feed listing degraded to empty page")
		page = emptyPage(h.cfg.AuthorFeedPageLimit)
	}
	c.JSON(http.StatusOK, page)
}

func (h *PostHandler) EditPost(c *gin.Context) {
	userID := authdelivery.CallerID(c)

	var req dto.EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postUsecase.EditPost(userID, req.PostID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := authdelivery.CallerID(c)

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.postUsecase.DeletePost(userID, req.PostID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *PostHandler) SwapLikePost(c *gin.Context) {
	userID := authdelivery.CallerID(c)

	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postUsecase.SwapLikePost(userID, req.PostID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// bindPostsRequest tolerates an empty body; a missing cursor means the first
// page.
func bindPostsRequest(c *gin.Context) dto.PostsRequest {
	var req dto.PostsRequest
	_ = c.ShouldBindJSON(&req)
	return req
}

func emptyPage(maxSize int) *dto.PostsResponse {
	return &dto.PostsResponse{
		Posts:        []*dto.PostResponse{},
		PostsMaxSize: maxSize,
		PostsSize:    0,
	}
}

func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Log.WithError(err).Error("post handler failed")
	}
	c.JSON(status, gin.H{"error": apperror.Message(err)})
}
