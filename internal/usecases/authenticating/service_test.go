package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/contafy/bookkeeper-api/infrastructure/repository/mocks"
	"github.com/contafy/bookkeeper-api/internal/config"
	"github.com/contafy/bookkeeper-api/internal/domain"
)

func newAuthService(ctrl *gomock.Controller) (*Service, *mocks.MockUserRepository) {
	mockRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		userRepo: mockRepo,
		cfg:      &config.Config{SecretKey: "chave-de-teste"},
	}

	return service, mockRepo
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newAuthService(ctrl)

	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "novo@contafy.com.br").Return(nil, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			// A senha nunca é gravada em texto puro
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-forte")))
			assert.True(t, user.Active)
			user.ID = 1
			return user, nil
		})

	user, err := service.CreateUser(context.Background(), &domain.User{
		Name:         "Nova",
		Email:        "  Novo@Contafy.com.br ",
		PasswordHash: "senha-forte",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "novo@contafy.com.br", user.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newAuthService(ctrl)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ja@contafy.com.br").
		Return(&domain.User{ID: 5, Email: "ja@contafy.com.br"}, nil)

	_, err := service.CreateUser(context.Background(), &domain.User{
		Name:         "Repetida",
		Email:        "ja@contafy.com.br",
		PasswordHash: "senha",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newAuthService(ctrl)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ana@contafy.com.br").
		Return(&domain.User{
			ID:           3,
			Name:         "Ana",
			Email:        "ana@contafy.com.br",
			PasswordHash: hashedPassword(t, "senha-correta"),
			Active:       true,
		}, nil)

	token, err := service.LoginUser(context.Background(), "ana@contafy.com.br", "senha-correta")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// O token emitido é aceito pela própria validação
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, "ana@contafy.com.br", claims.UserEmail)
}

func TestLoginUser_Failures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(mockRepo *mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:     "credenciais ausentes",
			email:    "",
			password: "",
			setup:    func(mockRepo *mocks.MockUserRepository) {},
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "usuário inexistente",
			email:    "ninguem@contafy.com.br",
			password: "senha",
			setup: func(mockRepo *mocks.MockUserRepository) {
				mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "ninguem@contafy.com.br").Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "conta desativada",
			email:    "inativa@contafy.com.br",
			password: "senha",
			setup: func(mockRepo *mocks.MockUserRepository) {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "inativa@contafy.com.br").
					Return(&domain.User{ID: 4, Active: false}, nil)
			},
			wantErr: ErrUserDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mockRepo := newAuthService(ctrl)
			tt.setup(mockRepo)

			_, err := service.LoginUser(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginUser_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newAuthService(ctrl)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ana@contafy.com.br").
		Return(&domain.User{
			ID:           3,
			PasswordHash: hashedPassword(t, "senha-correta"),
			Active:       true,
		}, nil)

	_, err := service.LoginUser(context.Background(), "ana@contafy.com.br", "senha-errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newAuthService(ctrl)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ana@contafy.com.br").
		Return(&domain.User{
			ID:           3,
			PasswordHash: hashedPassword(t, "senha-correta"),
			Active:       true,
		}, nil)

	token, err := service.LoginUser(context.Background(), "ana@contafy.com.br", "senha-correta")
	require.NoError(t, err)

	other := &Service{
		userRepo: mockRepo,
		cfg:      &config.Config{SecretKey: "outra-chave"},
	}

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
