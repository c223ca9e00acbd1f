package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"pos-backend/entity"
	"pos-backend/repository"
	"pos-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login and account listing.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// ValidPassword: 8 to 100 characters, upper and lower case letters, a digit, no spaces.
func ValidPassword(pw string) bool {
	if n := len([]rune(pw)); n < 8 || n > 100 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// Register creates an account. An empty role means entity.RoleUser.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if !ValidPassword(password) {
		return nil, ErrWeakPassword
	}
	r := entity.RoleUser
	if role != "" {
		var ok bool
		if r, ok = entity.ParseRole(role); !ok {
			return nil, ErrInvalidRole
		}
	}

	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, storeErr("count users", err)
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Role:     r,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, storeErr("create user", err)
	}
	return user, nil
}

// Login checks the credentials and issues a token carrying the user's id and role.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, storeErr("find user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	return users, nil
}
