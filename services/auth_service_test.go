package services

import (
	"log/slog"
	"quickchat/auth"
	"quickchat/errors"
	"quickchat/mocks"
	"quickchat/repositories"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSecret = []byte("test-secret")

func validRegistration() auth.RegisterRequest {
	return auth.RegisterRequest{
		Username:  "kyl_1",
		Password:  "Ch&&sec@ke99!",
		CellPhone: "+27838968976",
		FirstName: "Kyle",
		LastName:  "Smith",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, testSecret, time.Hour, 3, slog.Default())

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			CreateUser(gomock.Cond(func(user repositories.User) bool {
				return user.Username == "kyl_1" && user.PasswordHash != "Ch&&sec@ke99!"
			})).
			Return("user-uuid", nil).
			Times(1)

		status, err := svc.Register(validRegistration())

		req.NoError(err)
		req.Contains(status, "Username successfully captured.")
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)
		registration := validRegistration()
		registration.Password = "password"

		mockRepo.EXPECT().CreateUser(gomock.Any()).Times(0)

		status, err := svc.Register(registration)

		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.Contains(status, "Password is not correctly formatted")
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			CreateUser(gomock.Any()).
			Return("", errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register(validRegistration())

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, err := auth.HashPassword("Ch&&sec@ke99!")
	require.NoError(t, err)
	storedUser := repositories.User{
		ID:           "uuid-123",
		Username:     "kyl_1",
		PasswordHash: hashedPassword,
		FirstName:    "Kyle",
		LastName:     "Smith",
	}

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		svc := NewAuthService(mockRepo, testSecret, time.Hour, 3, slog.Default())

		mockRepo.EXPECT().GetUserByUsername("kyl_1").Return(storedUser, nil).Times(1)

		session, err := svc.Login("kyl_1", "Ch&&sec@ke99!")

		req.NoError(err)
		req.Equal("Welcome Kyle Smith, it is great to see you again.", session.Greeting)
		claims, err := auth.ValidateToken(testSecret, session.Token.String())
		req.NoError(err)
		req.Equal("kyl_1", claims.Username)
	})

	t.Run("should return invalid credentials when password matches nothing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		svc := NewAuthService(mockRepo, testSecret, time.Hour, 3, slog.Default())

		mockRepo.EXPECT().GetUserByUsername("kyl_1").Return(storedUser, nil).Times(1)

		_, err := svc.Login("kyl_1", "WrongPassword123!")

		req.ErrorIs(err, errors.ErrInvalidCredentials)
		req.Equal(1, svc.Attempts())
	})

	t.Run("should lock after the maximum number of attempts", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		svc := NewAuthService(mockRepo, testSecret, time.Hour, 3, slog.Default())

		mockRepo.EXPECT().GetUserByUsername("unknown").Return(repositories.User{}, errors.ErrNotFound).Times(3)

		_, err := svc.Login("unknown", "anyPassword")
		req.ErrorIs(err, errors.ErrInvalidCredentials)
		_, err = svc.Login("unknown", "anyPassword")
		req.NotErrorIs(err, errors.ErrTooManyAttempts)
		_, err = svc.Login("unknown", "anyPassword")
		req.ErrorIs(err, errors.ErrInvalidCredentials)
		req.ErrorIs(err, errors.ErrTooManyAttempts)

		_, err = svc.Login("kyl_1", "Ch&&sec@ke99!")
		req.ErrorIs(err, errors.ErrTooManyAttempts)
	})
}

func TestLoginStatus(t *testing.T) {
	req := require.New(t)
	req.Equal("Welcome John Doe, it is great to see you again.", LoginStatus(true, "John", "Doe"))
	req.Equal("Username or password incorrect, please try again.", LoginStatus(false, "John", "Doe"))
}
