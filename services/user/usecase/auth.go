package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/scrapcycle/scrapcycle/internal/pkg/jwt"
	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/internal/utils"
)

// Register creates a new account with a bcrypt password hash
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", models.ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleScrapper {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, role)
	}

	if existing, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email already registered", models.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role))

	return user, nil
}

// Login verifies the password and issues a JWT session token
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists
		return nil, models.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

// GenerateOTP issues a six digit one-time code with a redis TTL. Delivery
// is out of band; the code is never returned over HTTP.
func (uc *UserUC) GenerateOTP(ctx context.Context, email string) (*models.OTP, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", models.ErrValidation)
	}

	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err != nil {
		return nil, err
	}

	code, err := generateOTPCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	now := time.Now()
	otp := &models.OTP{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(uc.cfg.OTP.TTLMinutes) * time.Minute),
	}
	if err := uc.userRepo.StoreOTP(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	logger.Info("OTP generated", logger.String("email", email))

	return otp, nil
}

// VerifyOTP exchanges a valid code for a session token. A code verifies at
// most once; it is deleted on success.
func (uc *UserUC) VerifyOTP(ctx context.Context, email, code string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	otp, err := uc.userRepo.GetOTP(ctx, email)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if otp.Code != code || time.Now().After(otp.ExpiresAt) {
		return nil, models.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if err := uc.userRepo.DeleteOTP(ctx, email); err != nil {
		logger.Warn("Failed to delete verified OTP", logger.String("email", email), logger.Err(err))
	}

	return uc.issueToken(user)
}

func (uc *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// generateOTPCode produces a uniformly random six digit code
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
