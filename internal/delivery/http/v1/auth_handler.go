package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/forgot-password", handler.ForgotPassword)
		publicAuth.PUT("/reset-password/:token", handler.ResetPassword)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.PUT("/update-password", handler.UpdatePassword)
	}
}

type RegisterRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required,oneof=candidate employer"`
	CompanyName string `json:"companyName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration details"
// @Success      201  {object}  domain.AuthResult
// @Failure      400  {object}  response.ErrorBody
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		c.Error(apperror.BadRequest("Role must be candidate or employer"))
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        role,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, result)
}

// Login godoc
// @Summary      Authenticate and receive a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  domain.AuthResult
// @Failure      401  {object}  response.ErrorBody
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Logout godoc
// @Summary      Log out
// @Description  Stateless tokens cannot be revoked server-side; the client
// @Description  discards the token. The endpoint exists so clients have a
// @Description  uniform call to make.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// UpdatePassword godoc
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        passwords  body      UpdatePasswordRequest  true  "Current and new password"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  response.ErrorBody
// @Router       /auth/update-password [put]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authUC.UpdatePassword(c.Request.Context(), currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Description  Reserved until an email delivery service is wired up.
// @Tags         auth
// @Produce      json
// @Failure      501  {object}  response.ErrorBody
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	c.Error(apperror.New(http.StatusNotImplemented, "Password reset via email is not yet available", nil))
}

// ResetPassword godoc
// @Summary      Reset password with an emailed token
// @Description  Reserved until an email delivery service is wired up.
// @Tags         auth
// @Produce      json
// @Failure      501  {object}  response.ErrorBody
// @Router       /auth/reset-password/{token} [put]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	c.Error(apperror.New(http.StatusNotImplemented, "Password reset via email is not yet available", nil))
}
