package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/middleware"
	"github.com/qslrm-api/services"
)

// AuthController exposes the login, logout, and identity endpoints.
type AuthController struct {
	service *services.AuthService
}

// NewAuthController creates an auth controller.
func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// RegisterRoutes mounts the auth endpoints. Only /me requires a token.
func (ctl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/auth")
	{
		group.POST("/login", ctl.Login)
		group.POST("/logout", ctl.Logout)
		group.GET("/me", middleware.AuthMiddleware(ctl.service), ctl.Me)
	}
}

// Login handles POST /auth/login.
func (ctl *AuthController) Login(c *gin.Context) {
	var payload dto.LoginRequest
	if !bindJSON(c, &payload) {
		return
	}
	resp, err := ctl.service.Login(&payload, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout.
func (ctl *AuthController) Logout(c *gin.Context) {
	var payload dto.LogoutRequest
	if !bindJSON(c, &payload) {
		return
	}
	if err := ctl.service.Logout(&payload, c.ClientIP(), c.Request.UserAgent()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me handles GET /auth/me.
func (ctl *AuthController) Me(c *gin.Context) {
	researcherID := c.GetInt(middleware.ContextResearcherID)
	researcher, err := ctl.service.Me(researcherID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"researcher": researcher})
}
