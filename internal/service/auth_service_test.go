package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipehub/internal/auth"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
)

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService("test-secret", "HS256", 60)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		fullName  string
		setupMock func(repo *MockUserRepository)
		wantErr   error
		wantEmail string
	}{
		{
			name:     "success normalizes email",
			email:    "  New.User@Example.COM ",
			password: "secret123",
			fullName: "New User",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "new.user@example.com").
					Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(nil)
			},
			wantEmail: "new.user@example.com",
		},
		{
			name:     "duplicate email caught by pre-check",
			email:    "taken@example.com",
			password: "secret123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "taken@example.com").
					Return(&model.User{ID: 1, Email: "taken@example.com"}, nil)
			},
			wantErr: apperrors.ErrEmailTaken,
		},
		{
			name:     "duplicate email caught by unique constraint",
			email:    "racer@example.com",
			password: "secret123",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "racer@example.com").
					Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(gorm.ErrDuplicatedKey)
			},
			wantErr: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewAuthService(repo, newTestTokenService())
			user, err := svc.Register(context.Background(), tt.email, tt.password, tt.fullName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantEmail, user.Email)
				assert.Equal(t, tt.fullName, user.FullName)
				assert.True(t, user.IsActive)
				assert.False(t, user.IsSuperuser)
				// Stored hash verifies against the plain password and is never the password itself.
				assert.NotEqual(t, tt.password, user.HashedPassword)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(tt.password)))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	activeUser := &model.User{
		ID:             42,
		Email:          "cook@example.com",
		HashedPassword: "",
		IsActive:       true,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(t *testing.T, repo *MockUserRepository)
		wantErr   error
	}{
		{
			name:     "success with mixed-case email",
			email:    " Cook@Example.COM ",
			password: "secret123",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				user := *activeUser
				user.HashedPassword = hashPassword(t, "secret123")
				repo.On("FindByEmail", mock.Anything, "cook@example.com").
					Return(&user, nil)
			},
		},
		{
			name:     "unknown user",
			email:    "nobody@example.com",
			password: "secret123",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "nobody@example.com").
					Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "cook@example.com",
			password: "wrong-password",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				user := *activeUser
				user.HashedPassword = hashPassword(t, "secret123")
				repo.On("FindByEmail", mock.Anything, "cook@example.com").
					Return(&user, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "inactive user",
			email:    "cook@example.com",
			password: "secret123",
			setupMock: func(t *testing.T, repo *MockUserRepository) {
				user := *activeUser
				user.HashedPassword = hashPassword(t, "secret123")
				user.IsActive = false
				repo.On("FindByEmail", mock.Anything, "cook@example.com").
					Return(&user, nil)
			},
			wantErr: apperrors.ErrInactiveUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(t, repo)

			tokens := newTestTokenService()
			svc := NewAuthService(repo, tokens)
			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				claims, err := tokens.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, "42", claims.Subject)
			}
			repo.AssertExpectations(t)
		})
	}
}
