package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/common"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/models"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/comments"
)

type createCommentRequest struct {
	BlogID string `json:"blog_id" binding:"required"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

type updateCommentRequest struct {
	Author *string `json:"author"`
	Text   *string `json:"text"`
}

// GET /comments
func (s *HTTPServer) ListComments(c *gin.Context) {
	commentList, err := s.comments.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "comment listing failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	if len(commentList) == 0 {
		newWarningResponse(c, http.StatusBadRequest, "Comments not found")

		return
	}

	newSuccessResponse(c, http.StatusOK, "All comments found", commentList)
}

// GET /comments/:id
func (s *HTTPServer) GetComment(c *gin.Context) {
	comment, err := s.comments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Comment not found")

			return
		}
		s.logger.Error(c.Request.Context(), "comment lookup failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "Comment found", comment)
}

// POST /comments
func (s *HTTPServer) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, joinValidationErrors(err))

		return
	}

	comment := &models.Comment{BlogID: req.BlogID, Author: req.Author, Text: req.Text}

	created, err := s.comments.Create(c.Request.Context(), comment)
	if err != nil {
		s.logger.Error(c.Request.Context(), "comment create failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "Comment created", created)
}

// PUT /comments/:id
func (s *HTTPServer) UpdateComment(c *gin.Context) {
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, joinValidationErrors(err))

		return
	}

	params := comments.UpdateParams{Author: req.Author, Text: req.Text}

	comment, err := s.comments.Update(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Comment not found")

			return
		}
		s.logger.Error(c.Request.Context(), "comment update failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "Comment updated", comment)
}

// DELETE /comments/:id
func (s *HTTPServer) DeleteComment(c *gin.Context) {
	comment, err := s.comments.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Comment not found")

			return
		}
		s.logger.Error(c.Request.Context(), "comment delete failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "Comment deleted", comment)
}
