package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/common"
	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/server/repositories/users"
)

type signUpRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Gender   string `json:"gender"`
}

type signInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Gender   *string `json:"gender"`
	Role     *string `json:"role"`
}

// POST /users/sign-up
func (s *HTTPServer) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, joinValidationErrors(err))

		return
	}

	user, token, err := s.users.SignUp(c.Request.Context(), req.Username, req.Password, req.Gender)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			newErrorResponse(c, http.StatusBadRequest, "Username already exists")

			return
		}
		s.logger.Error(c.Request.Context(), "sign-up failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusCreated, "User created", gin.H{"user": user, "token": token})
}

// POST /users/sign-in
func (s *HTTPServer) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, joinValidationErrors(err))

		return
	}

	user, token, err := s.users.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			newErrorResponse(c, http.StatusBadRequest, "Wrong username or password")

			return
		}
		s.logger.Error(c.Request.Context(), "sign-in failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "User signed in", gin.H{"user": user, "token": token})
}

// GET /users?limit=&skip=&gender=
// skip is a 1-based page number, not a row offset.
func (s *HTTPServer) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, _ := strconv.Atoi(c.DefaultQuery("skip", "1"))
	gender := c.Query("gender")

	usersPage, total, err := s.users.List(c.Request.Context(), limit, page, gender)
	if err != nil {
		s.logger.Error(c.Request.Context(), "user listing failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	if len(usersPage) == 0 {
		newWarningResponse(c, http.StatusBadRequest, "Users not found")

		return
	}

	newSuccessResponse(c, http.StatusOK, "All users found", gin.H{"users": usersPage, "total": total})
}

// GET /users/:id
func (s *HTTPServer) GetUser(c *gin.Context) {
	user, err := s.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			newErrorResponse(c, http.StatusNotFound, "User not found")

			return
		}
		s.logger.Error(c.Request.Context(), "user lookup failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "User found", user)
}

// PUT /users/:id
func (s *HTTPServer) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, joinValidationErrors(err))

		return
	}

	params := users.UpdateParams{Username: req.Username, Gender: req.Gender, Role: req.Role}

	user, err := s.users.Update(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorEmptyUpdate):
			newErrorResponse(c, http.StatusBadRequest, "Nothing to update")
		case errors.Is(err, common.ErrorAlreadyExists):
			newErrorResponse(c, http.StatusBadRequest, "Username already exists")
		case errors.Is(err, common.ErrorNotFound):
			newErrorResponse(c, http.StatusNotFound, "User not found")
		default:
			s.logger.Error(c.Request.Context(), "user update failed", "error", err.Error())
			newErrorResponse(c, http.StatusInternalServerError, "Server error")
		}

		return
	}

	newSuccessResponse(c, http.StatusOK, "User updated", user)
}

// DELETE /users/:id
func (s *HTTPServer) DeleteUser(c *gin.Context) {
	user, err := s.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			newErrorResponse(c, http.StatusNotFound, "User not found")

			return
		}
		s.logger.Error(c.Request.Context(), "user delete failed", "error", err.Error())

		newErrorResponse(c, http.StatusInternalServerError, "Server error")

		return
	}

	newSuccessResponse(c, http.StatusOK, "User deleted", user)
}
