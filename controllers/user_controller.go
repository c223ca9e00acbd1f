package controllers

import (
	"errors"

	"pos-backend/pkg/logger"
	"pos-backend/pkg/resp"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserController struct {
	svc *services.AuthService
	log *logger.Logger
}

func NewUserController(svc *services.AuthService, log *logger.Logger) *UserController {
	return &UserController{svc: svc, log: log}
}

// POST /api/users/register
// Public sign-up always creates a plain user account.
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Email and password are required")
		return
	}
	uc.register(c, req.Email, req.Password, "")
}

// POST /api/users (admin)
func (uc *UserController) Create(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Email and password are required")
		return
	}
	uc.register(c, req.Email, req.Password, req.Role)
}

func (uc *UserController) register(c *gin.Context, email, password, role string) {
	user, err := uc.svc.Register(c.Request.Context(), email, password, role)
	switch {
	case err == nil:
		uc.log.Info("register_user", utils.RequestID(c), "user registered: "+user.ID)
		resp.Created(c, user)
	case errors.Is(err, services.ErrMissingCredentials):
		resp.BadRequest(c, "Email and password are required")
	case errors.Is(err, services.ErrWeakPassword):
		resp.BadRequest(c, "Password does not meet security criteria")
	case errors.Is(err, services.ErrUserExists):
		resp.BadRequest(c, "User already exists")
	case errors.Is(err, services.ErrInvalidRole):
		resp.BadRequest(c, "Role not valid")
	default:
		uc.log.Error("register_user", utils.RequestID(c), "register failed", err)
		resp.ServerError(c, "Error when trying to register user")
	}
}

// POST /api/users/login
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Email and password are required")
		return
	}

	token, user, err := uc.svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		resp.OK(c, gin.H{"token": token, "user": user})
	case errors.Is(err, services.ErrMissingCredentials):
		resp.BadRequest(c, "Email and password are required")
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.BadRequest(c, "Invalid login credentials")
	default:
		uc.log.Error("login_user", utils.RequestID(c), "login failed", err)
		resp.ServerError(c, "Error when trying to login user")
	}
}

// GET /api/users
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.svc.ListUsers(c.Request.Context())
	if err != nil {
		uc.log.Error("list_users", utils.RequestID(c), "list users failed", err)
		resp.ServerError(c, "An error occurred while fetching the users")
		return
	}
	resp.OK(c, users)
}
