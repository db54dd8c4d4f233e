package handlers

import (
	"net/http"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/gin-gonic/gin"
)

// GalleryHandler handles the legacy image gallery and gallery posts
type GalleryHandler struct {
	galleryService services.GalleryService
	postService    services.GalleryPostService
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(galleryService services.GalleryService, postService services.GalleryPostService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService, postService: postService}
}

// ListImages handles GET /gallery
func (h *GalleryHandler) ListImages(c *gin.Context) {
	images, err := h.galleryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// Groups handles GET /gallery/groups
func (h *GalleryHandler) Groups(c *gin.Context) {
	images, err := h.galleryService.Groups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// ByTitle handles GET /gallery/title/:title
func (h *GalleryHandler) ByTitle(c *gin.Context) {
	images, err := h.galleryService.ByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetImage handles GET /gallery/:id
func (h *GalleryHandler) GetImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	image, err := h.galleryService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

// CreateImage handles POST /gallery
func (h *GalleryHandler) CreateImage(c *gin.Context) {
	var req models.GalleryImageRequest
	if !bindJSON(c, &req) {
		return
	}
	image, err := h.galleryService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

// UpdateImage handles PUT /gallery/:id
func (h *GalleryHandler) UpdateImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.GalleryImageRequest
	if !bindJSON(c, &req) {
		return
	}
	image, err := h.galleryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

// DeleteImage handles DELETE /gallery/:id
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.galleryService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "갤러리 이미지가 삭제되었습니다.")
}

// ListPosts handles GET /gallery-posts
func (h *GalleryHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// LatestPosts handles GET /gallery-posts/latest
func (h *GalleryHandler) LatestPosts(c *gin.Context) {
	posts, err := h.postService.Latest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost handles GET /gallery-posts/:id
func (h *GalleryHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost handles POST /gallery-posts
func (h *GalleryHandler) CreatePost(c *gin.Context) {
	var req models.GalleryPostRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.postService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost handles PUT /gallery-posts/:id
func (h *GalleryHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.GalleryPostRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.postService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /gallery-posts/:id
func (h *GalleryHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "갤러리 포스트가 삭제되었습니다.")
}
