package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tyrehub/stockroom-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username and/or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates an account for the case-folded username. No format or
// strength validation happens here: any non-duplicate string is accepted.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	uname := strings.ToLower(username)

	var existing models.User
	if err := s.db.Where("username = ?", uname).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Username: uname,
		Password: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Login authenticates by case-folded username. Unknown usernames and wrong
// passwords both come back as ErrInvalidCredentials so callers cannot leak
// which one it was.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	uname := strings.ToLower(username)

	var user models.User
	if err := s.db.Where("username = ?", uname).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Lookup fetches a user by their stored (lowercase) username.
func (s *AuthService) Lookup(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", strings.ToLower(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}
