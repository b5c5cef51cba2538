package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/core/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
	"github.com/finanzapp/finanzas-backend/internal/utils"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

// --- Test Suite ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Test User",
		Email:    "Test@Example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "test@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "test@example.com" &&
			user.Name == "Test User" &&
			user.PasswordHash != "" &&
			user.PasswordHash != "password123" &&
			user.PreferredCurrency == "ARS"
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "password123",
	}
	existing := &domain.User{UserID: uuid.NewString(), Email: "taken@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "taken@example.com").Return(existing, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_KeepsRequestedCurrency() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:              "Test User",
		Email:             "usd@example.com",
		Password:          "password123",
		PreferredCurrency: "usd",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "usd@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.PreferredCurrency == "USD"
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("USD", user.PreferredCurrency)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "auth@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "auth@example.com").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "auth@example.com", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "auth@example.com", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "auth@example.com").Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, "auth@example.com", "battery-staple")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "ghost@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_Existing() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "g@example.com"}
	info := domain.GoogleUserInfo{Email: "g@example.com", Name: "G User"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "g@example.com").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesOnFirstSignIn() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{Email: "new@example.com", Name: "New User"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "new@example.com" && user.Name == "New User" && user.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_PartialUpdate() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.User{UserID: userID, Name: "Old Name", PreferredCurrency: "ARS"}
	newCurrency := "eur"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == "Old Name" && user.PreferredCurrency == "EUR"
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{PreferredCurrency: &newCurrency})

	suite.Require().NoError(err)
	suite.Equal("EUR", user.PreferredCurrency)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_RepoError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).
		Return(assert.AnError).Once()

	err := suite.service.DeleteUser(ctx, userID)

	suite.Require().Error(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
