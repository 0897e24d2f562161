package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	userRepo "photostudio/database/repository/user"
	"photostudio/models"
	"photostudio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// DefaultUserService is the concrete implementation backed by the user repo.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// verifyPasswordComplexity checks that the password contains at least one
// lowercase letter, one uppercase letter, one digit, and one symbol.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
		hasSymbol = regexp.MustCompile(`[\W_]`).MatchString(pw)
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	if !hasSymbol {
		return fmt.Errorf("password must include at least one symbol")
	}
	return nil
}

// RegisterUser creates a new user, issues a token, and caches its hash.
func (s *DefaultUserService) RegisterUser(user models.User) (*AuthResponse, error) {
	if user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if err := verifyPasswordComplexity(user.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.ID = uuid.New().String()
	user.PasswordHash = string(hash)
	user.Password = ""
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&user); err != nil {
		return nil, err
	}
	s.cacheTokenHash(user.ID, user.TokenHash)

	zap.L().Info("User registered", zap.String("id", user.ID), zap.String("email", user.Email))
	return &AuthResponse{
		ID:        user.ID,
		Token:     token,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}, nil
}

// AuthenticateUser verifies credentials and issues a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	usr.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(usr); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	s.cacheTokenHash(usr.ID, usr.TokenHash)

	return &AuthResponse{
		ID:        usr.ID,
		Token:     token,
		FirstName: usr.FirstName,
		LastName:  usr.LastName,
		Email:     usr.Email,
		Role:      usr.Role,
	}, nil
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// UpdateUser applies profile edits. Credentials and role are not editable here.
func (s *DefaultUserService) UpdateUser(user models.User) (*models.User, error) {
	existing, err := s.Repo.GetByID(user.ID)
	if err != nil {
		return nil, err
	}
	if user.FirstName != "" {
		existing.FirstName = user.FirstName
	}
	if user.LastName != "" {
		existing.LastName = user.LastName
	}
	if user.PhoneNumber != "" {
		existing.PhoneNumber = user.PhoneNumber
	}
	if user.Email != "" {
		existing.Email = user.Email
	}
	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DefaultUserService) DeleteUser(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.dropCachedToken(id)
	return nil
}

// RevokeAuthToken invalidates the user's current token.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	usr.TokenHash = ""
	if err := s.Repo.Update(usr); err != nil {
		return err
	}
	s.dropCachedToken(id)
	return nil
}

func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

func (s *DefaultUserService) cacheTokenHash(userID, tokenHash string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	ctx := context.Background()
	if err := authCache.Set(ctx, utils.AuthCachePrefix+userID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		zap.L().Warn("Failed to cache token hash", zap.String("userID", userID), zap.Error(err))
	}
}

func (s *DefaultUserService) dropCachedToken(userID string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		zap.L().Warn("Failed to drop cached token", zap.String("userID", userID), zap.Error(err))
	}
}
