package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/services/user/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "scrapcycle-test",
		},
		OTP: models.OTPConfig{
			TTLMinutes: 5,
		},
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	req := &models.RegisterRequest{
		Email:    "Resident@Example.com",
		Password: "hunter2hunter2",
		FullName: "Asha Rao",
	}

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "resident@example.com").Return(nil, models.ErrNotFound)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "resident@example.com", user.Email)
			assert.Equal(t, models.RoleUser, user.Role)
			assert.True(t, user.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
			user.ID = uuid.New()
			return nil
		})

	created, err := uc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "resident@example.com", created.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "resident@example.com").
		Return(&models.User{ID: uuid.New(), Email: "resident@example.com"}, nil)

	created, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "resident@example.com",
		Password: "hunter2hunter2",
		FullName: "Asha Rao",
	})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRegister_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	created, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "resident@example.com",
		Password: "short",
		FullName: "Asha Rao",
	})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)

	account := &models.User{
		ID:           uuid.New(),
		Email:        "resident@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		IsActive:     true,
	}
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "resident@example.com").Return(account, nil)

	auth, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "resident@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, account.ID, auth.UserID)
	assert.NotEmpty(t, auth.Token)
	assert.Greater(t, auth.ExpiresAt, time.Now().Unix())
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "resident@example.com").Return(&models.User{
		ID:           uuid.New(),
		Email:        "resident@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil)

	auth, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "resident@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, auth)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailHidesExistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, models.ErrNotFound)

	auth, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever123",
	})

	assert.Nil(t, auth)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestGenerateOTP_StoresSixDigitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "resident@example.com").Return(&models.User{
		ID: uuid.New(), Email: "resident@example.com", IsActive: true,
	}, nil)
	mockRepo.EXPECT().
		StoreOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, otp *models.OTP) error {
			assert.Equal(t, "resident@example.com", otp.Email)
			assert.Len(t, otp.Code, 6)
			assert.WithinDuration(t, time.Now().Add(5*time.Minute), otp.ExpiresAt, 5*time.Second)
			return nil
		})

	otp, err := uc.GenerateOTP(context.Background(), "resident@example.com")

	require.NoError(t, err)
	assert.Len(t, otp.Code, 6)
}

func TestVerifyOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	account := &models.User{ID: uuid.New(), Email: "resident@example.com", Role: models.RoleUser, IsActive: true}

	mockRepo.EXPECT().GetOTP(gomock.Any(), "resident@example.com").Return(&models.OTP{
		Email:     "resident@example.com",
		Code:      "402913",
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil)
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "resident@example.com").Return(account, nil)
	mockRepo.EXPECT().DeleteOTP(gomock.Any(), "resident@example.com").Return(nil)

	auth, err := uc.VerifyOTP(context.Background(), "resident@example.com", "402913")

	require.NoError(t, err)
	assert.Equal(t, account.ID, auth.UserID)
	assert.NotEmpty(t, auth.Token)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	mockRepo.EXPECT().GetOTP(gomock.Any(), "resident@example.com").Return(&models.OTP{
		Email:     "resident@example.com",
		Code:      "402913",
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil)

	auth, err := uc.VerifyOTP(context.Background(), "resident@example.com", "000000")

	assert.Nil(t, auth)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestVerifyOTP_ExpiredCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, testConfig())

	mockRepo.EXPECT().GetOTP(gomock.Any(), "resident@example.com").Return(&models.OTP{
		Email:     "resident@example.com",
		Code:      "402913",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	auth, err := uc.VerifyOTP(context.Background(), "resident@example.com", "402913")

	assert.Nil(t, auth)
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
