package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/services"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Timezone string `json:"timezone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Timezone string `json:"timezone,omitempty"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Timezone: u.Timezone}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

// Register godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body registerRequest true "Credentials"
// @Success  201 {object} userResponse
// @Failure  400 {object} map[string]string
// @Failure  409 {object} map[string]string
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Timezone: req.Timezone,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login godoc
// @Summary  Exchange credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body loginRequest true "Credentials"
// @Success  200 {object} loginResponse
// @Failure  401 {object} map[string]string
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}
