package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"snapfeed/internal/auth/config"
	"snapfeed/internal/auth/domain/model"
	"snapfeed/internal/auth/domain/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email is already taken")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrSessionNotFound    = errors.New("session not found")
	ErrWeakPassword       = errors.New("password does not meet strength requirements")
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ProfileDirectory is the auth module's view of the social user directory.
// Registration creates the profile document; logins resolve the profile ID
// that goes into token claims.
type ProfileDirectory interface {
	RegisterProfile(ctx context.Context, accountID, name, username, email string) (string, error)
	ProfileIDByAccount(ctx context.Context, accountID string) (string, error)
}

// AuthUsecaseInterface defines the contract for identity use cases.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*model.Account, string, error)
	Login(ctx context.Context, req LoginRequest) (*model.Account, string, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error)
	GetAccountFromToken(ctx context.Context, tokenString string) (*model.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*model.Account, error)
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Username string `json:"username"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUsecase implements the identity logic.
type AuthUsecase struct {
	repo     repository.AuthRepository
	tokenSvc repository.TokenService
	profiles ProfileDirectory
	config   *config.Config
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	repo repository.AuthRepository,
	tokenSvc repository.TokenService,
	profiles ProfileDirectory,
	cfg *config.Config,
) *AuthUsecase {
	return &AuthUsecase{
		repo:     repo,
		tokenSvc: tokenSvc,
		profiles: profiles,
		config:   cfg,
	}
}

func (uc *AuthUsecase) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

func (uc *AuthUsecase) validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLength)
	}
	return nil
}

// Register creates a new account, its social profile document, and a session.
func (uc *AuthUsecase) Register(ctx context.Context, req RegisterRequest) (*model.Account, string, error) {
	if err := uc.validateEmail(req.Email); err != nil {
		return nil, "", err
	}
	if err := uc.validatePassword(req.Password); err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, "", fmt.Errorf("name is required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := uc.repo.GetAccountByEmail(ctx, email)
	if err != nil && err != ErrAccountNotFound {
		return nil, "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := account.ValidateFields(); err != nil {
		return nil, "", err
	}

	if err := uc.repo.CreateAccount(ctx, account); err != nil {
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = deriveUsername(email)
	}

	userID, err := uc.profiles.RegisterProfile(ctx, account.ID, account.Name, username, account.Email)
	if err != nil {
		return nil, "", fmt.Errorf("account created but profile registration failed: %w", err)
	}

	token, err := uc.issueSession(ctx, account, userID)
	if err != nil {
		return nil, "", err
	}

	account.PasswordHash = ""
	return account, token, nil
}

// Login authenticates an account and creates a session.
func (uc *AuthUsecase) Login(ctx context.Context, req LoginRequest) (*model.Account, string, error) {
	if err := uc.validateEmail(req.Email); err != nil {
		return nil, "", err
	}

	account, err := uc.repo.GetAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == ErrAccountNotFound {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	userID, err := uc.profiles.ProfileIDByAccount(ctx, account.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve profile for account: %w", err)
	}

	token, err := uc.issueSession(ctx, account, userID)
	if err != nil {
		return nil, "", err
	}

	account.PasswordHash = ""
	return account, token, nil
}

func (uc *AuthUsecase) issueSession(ctx context.Context, account *model.Account, userID string) (string, error) {
	token, err := uc.tokenSvc.GenerateToken(ctx, account.ID, userID, account.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	session := &model.Session{
		AccountID: account.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(uc.config.SessionTTL),
	}
	if err := uc.repo.CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// Logout invalidates the caller's sessions.
func (uc *AuthUsecase) Logout(ctx context.Context, tokenString string) error {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return ErrTokenInvalid
	}

	if err := uc.repo.DeleteAccountSessions(ctx, claims.AccountID); err != nil {
		return fmt.Errorf("failed to delete account sessions: %w", err)
	}

	return nil
}

// ValidateToken validates a JWT string
func (uc *AuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// GetAccountFromToken validates a token and fetches the associated account
func (uc *AuthUsecase) GetAccountFromToken(ctx context.Context, tokenString string) (*model.Account, error) {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	account, err := uc.repo.GetAccountByID(ctx, claims.AccountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	account.PasswordHash = ""
	return account, nil
}

// GetAccountByID retrieves an account by ID
func (uc *AuthUsecase) GetAccountByID(ctx context.Context, accountID string) (*model.Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	account, err := uc.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	account.PasswordHash = ""
	return account, nil
}

// deriveUsername builds a default username from the local part of an email.
func deriveUsername(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

// Ensure AuthUsecase implements AuthUsecaseInterface
var _ AuthUsecaseInterface = (*AuthUsecase)(nil)
