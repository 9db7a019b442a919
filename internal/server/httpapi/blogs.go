package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/common"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/blogs"
)

type createBlogRequest struct {
	Title string   `json:"title"`
	Desc  string   `json:"desc"`
	URLs  []string `json:"url"`
	Star  int      `json:"star"`
}

type updateBlogRequest struct {
	Title *string   `json:"title"`
	Desc  *string   `json:"desc"`
	URLs  *[]string `json:"url"`
	Star  *int      `json:"star"`
}

// GET /blogs
func (s *HTTPServer) ListBlogs(c *gin.Context) {
	blogList, err := s.blogs.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "blog listing failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	if len(blogList) == 0 {
		newWarningResponse(c, http.StatusBadRequest, "Blogs not found")

		return
	}

	newSuccessResponse(c, http.StatusOK, "All blogs found", blogList)
}

// GET /blogs/:id
func (s *HTTPServer) GetBlog(c *gin.Context) {
	blog, err := s.blogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Blog not found")

			return
		}
		s.logger.Error(c.Request.Context(), "blog lookup failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "Blog found", blog)
}

// POST /blogs
func (s *HTTPServer) CreateBlog(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, joinValidationErrors(err))

		return
	}

	blog := &models.Blog{Title: req.Title, Desc: req.Desc, URLs: req.URLs, Star: req.Star}

	created, err := s.blogs.Create(c.Request.Context(), blog)
	if err != nil {
		s.logger.Error(c.Request.Context(), "blog create failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "Blog created", created)
}

// POST /blogs/uploads
func (s *HTTPServer) CreateBlogUpload(c *gin.Context) {
	key, url, err := s.blogs.GetUploadURL(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "upload presign failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "Upload URL created", gin.H{"key": key, "url": url})
}

// PUT /blogs/:id
func (s *HTTPServer) UpdateBlog(c *gin.Context) {
	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, joinValidationErrors(err))

		return
	}

	params := blogs.UpdateParams{Title: req.Title, Desc: req.Desc, URLs: req.URLs, Star: req.Star}

	blog, err := s.blogs.Update(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Blog not found")

			return
		}
		s.logger.Error(c.Request.Context(), "blog update failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "Blog updated", blog)
}

// DELETE /blogs/:id
func (s *HTTPServer) DeleteBlog(c *gin.Context) {
	blog, err := s.blogs.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Blog not found")

			return
		}
		s.logger.Error(c.Request.Context(), "blog delete failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "Blog deleted", blog)
}
