package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zestyflow/middleware"
	"zestyflow/models"
	"zestyflow/services"
)

type AuthController struct {
	auth *services.AuthService
	dev  bool
}

func NewAuthController(auth *services.AuthService, dev bool) *AuthController {
	return &AuthController{auth: auth, dev: dev}
}

// respondInternal reports an unexpected failure. The underlying error is
// echoed only in development configurations.
func respondInternal(c *gin.Context, dev bool, err error) {
	resp := models.ErrorResponse{Success: false, Message: "Server error"}
	if dev && err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

func userSummary(u *models.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"phone":         u.Phone,
		"location":      u.Location,
		"location_type": u.LocationType,
		"age":           u.Age,
	}
}

// Signup godoc
// @Summary Register new user
// @Description Create a customer account and issue a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Missing required fields",
		})
		return
	}

	token, user, err := ctrl.auth.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "User already exists"})
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		default:
			respondInternal(c, ctrl.dev, err)
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Signup successful",
		Data: gin.H{
			"token": token,
			"user":  userSummary(user),
		},
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Same body as a failed credential check so nothing leaks.
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid credentials"})
		return
	}

	token, user, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid credentials"})
			return
		}
		respondInternal(c, ctrl.dev, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: gin.H{
			"token": token,
			"user":  userSummary(user),
		},
	})
}

// Me godoc
// @Summary Get logged-in user
// @Description Return the authenticated user's record
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID := c.GetInt(middleware.ContextUserID)

	user, err := ctrl.auth.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "User not found"})
			return
		}
		respondInternal(c, ctrl.dev, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    gin.H{"user": user},
	})
}
