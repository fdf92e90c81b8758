package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ttsbooking/consult-platform/internal/audit"
	"github.com/ttsbooking/consult-platform/internal/auth"
	"github.com/ttsbooking/consult-platform/internal/config"
	userdomain "github.com/ttsbooking/consult-platform/internal/domain/user"
	"github.com/ttsbooking/consult-platform/internal/httperr"
	"github.com/ttsbooking/consult-platform/internal/httpresp"
	"github.com/ttsbooking/consult-platform/internal/middleware"
	"github.com/ttsbooking/consult-platform/internal/models"
	"github.com/ttsbooking/consult-platform/internal/validators"
)

type AuthHandler struct {
	users  userdomain.Repository
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(users userdomain.Repository, cfg *config.Config, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{users: users, config: cfg, audit: audit}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Please fill in all required fields.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Email address format is invalid.")
		return
	}

	if len(req.Password) < auth.MinPasswordLength {
		httperr.BadRequest(c, "password_too_short", "Password must be at least 6 characters.")
		return
	}

	taken, err := h.users.EmailTaken(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "internal_error", "Registration failed, please try again later.")
		return
	}
	if taken {
		httperr.BadRequest(c, "email_already_exists", "This email address is already registered.")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Registration failed, please try again later.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         models.RoleUser,
		IsActive:     true,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		httperr.Internal(c, "failed_to_create_user", "Registration failed, please try again later.")
		return
	}

	token, err := auth.IssueToken(
		h.config.JWTSecret, h.config.JWTExpiresIn,
		user.ID, user.Email, user.Role,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Registration failed, please try again later.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, gin.H{
		"message": "Registration successful.",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Please enter email and password.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password must look identical to the caller.
	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Incorrect email or password.")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Incorrect email or password.")
		return
	}

	if !user.IsActive {
		httperr.Forbidden(c, "account_disabled", "Your account has been disabled, please contact support.")
		return
	}

	token, err := auth.IssueToken(
		h.config.JWTSecret, h.config.JWTExpiresIn,
		user.ID, user.Email, user.Role,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Login failed, please try again later.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_login",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, gin.H{
		"message": "Login successful.",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	p := middleware.MustPrincipal(c)

	user, err := h.users.FindByID(c.Request.Context(), p.UserID)
	if err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}
