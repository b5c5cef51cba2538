package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/core/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
)

// --- Mock GoalRepository ---

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	var goal *domain.Goal
	if args.Get(0) != nil {
		goal = args.Get(0).(*domain.Goal)
	}
	return goal, args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	var goals []domain.Goal
	if args.Get(0) != nil {
		goals = args.Get(0).([]domain.Goal)
	}
	return goals, args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) MarkGoalDeleted(ctx context.Context, goalID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, goalID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---

type GoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo     *MockGoalRepository
	mockMovementRepo *MockMovementRepository
	mockCurrencySvc  *MockCurrencyService
	service          portssvc.GoalSvcFacade
	userID           string
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewGoalService(suite.mockGoalRepo, suite.mockMovementRepo, suite.mockCurrencySvc)
	suite.userID = uuid.NewString()
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Vacaciones",
		TargetAmount: decimal.NewFromInt(500000),
		CurrencyCode: "ars",
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "ARS").
		Return(&domain.Currency{CurrencyCode: "ARS"}, nil).Once()
	suite.mockGoalRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.UserID == suite.userID &&
			g.Name == "Vacaciones" &&
			g.CurrencyCode == "ARS" &&
			g.SavedAmount.IsZero()
	})).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(goal.GoalID)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_NonPositiveTarget() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Vacaciones",
		TargetAmount: decimal.Zero,
		CurrencyCode: "ARS",
	}

	goal, err := suite.service.CreateGoal(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "SaveGoal")
}

func (suite *GoalServiceTestSuite) TestGetGoal_OwnedByAnotherUser() {
	ctx := context.Background()
	goalID := uuid.NewString()
	other := &domain.Goal{GoalID: goalID, UserID: uuid.NewString()}

	suite.mockGoalRepo.On("FindGoalByID", ctx, goalID).Return(other, nil).Once()

	goal, err := suite.service.GetGoal(ctx, suite.userID, goalID)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *GoalServiceTestSuite) TestContribute_AddsAmountAndRecordsMovement() {
	ctx := context.Background()
	goalID := uuid.NewString()
	goal := &domain.Goal{
		GoalID:       goalID,
		UserID:       suite.userID,
		Name:         "Auto",
		TargetAmount: decimal.NewFromInt(1000),
		SavedAmount:  decimal.NewFromInt(200),
		CurrencyCode: "USD",
	}
	req := dto.ContributeGoalRequest{Amount: decimal.NewFromInt(50), Description: "monthly"}

	suite.mockGoalRepo.On("FindGoalByID", ctx, goalID).Return(goal, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.UserID == suite.userID &&
			m.Type == domain.Saving &&
			m.CurrencyCode == "USD" &&
			m.Amount.Equal(decimal.NewFromInt(50)) &&
			m.Category == "Goal: Auto"
	})).Return(nil).Once()
	suite.mockGoalRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.SavedAmount.Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()

	updated, err := suite.service.Contribute(ctx, suite.userID, goalID, req)

	suite.Require().NoError(err)
	suite.True(updated.SavedAmount.Equal(decimal.NewFromInt(250)))
	suite.mockGoalRepo.AssertExpectations(suite.T())
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestContribute_NonPositiveAmount() {
	ctx := context.Background()
	goalID := uuid.NewString()
	req := dto.ContributeGoalRequest{Amount: decimal.NewFromInt(-1)}

	goal, err := suite.service.Contribute(ctx, suite.userID, goalID, req)

	suite.Require().Error(err)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *GoalServiceTestSuite) TestDeleteGoal_Success() {
	ctx := context.Background()
	goalID := uuid.NewString()
	goal := &domain.Goal{GoalID: goalID, UserID: suite.userID}

	suite.mockGoalRepo.On("FindGoalByID", ctx, goalID).Return(goal, nil).Once()
	suite.mockGoalRepo.On("MarkGoalDeleted", ctx, goalID, mock.AnythingOfType("time.Time"), suite.userID).
		Return(nil).Once()

	err := suite.service.DeleteGoal(ctx, suite.userID, goalID)

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
