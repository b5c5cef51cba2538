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
	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/core/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
)

// --- Mock MovementRepository ---

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	var movement *domain.Movement
	if args.Get(0) != nil {
		movement = args.Get(0).(*domain.Movement)
	}
	return movement, args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, userID string, filter portsrepo.MovementListFilter) ([]domain.Movement, string, error) {
	args := m.Called(ctx, userID, filter)
	var movements []domain.Movement
	if args.Get(0) != nil {
		movements = args.Get(0).([]domain.Movement)
	}
	return movements, args.String(1), args.Error(2)
}

func (m *MockMovementRepository) SumByType(ctx context.Context, userID string, from, to time.Time) (map[domain.MovementType]decimal.Decimal, error) {
	args := m.Called(ctx, userID, from, to)
	var sums map[domain.MovementType]decimal.Decimal
	if args.Get(0) != nil {
		sums = args.Get(0).(map[domain.MovementType]decimal.Decimal)
	}
	return sums, args.Error(1)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}

// --- Mock CurrencyService ---

type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	var currency *domain.Currency
	if args.Get(0) != nil {
		currency = args.Get(0).(*domain.Currency)
	}
	return currency, args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	var currencies []domain.Currency
	if args.Get(0) != nil {
		currencies = args.Get(0).([]domain.Currency)
	}
	return currencies, args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	var currency *domain.Currency
	if args.Get(0) != nil {
		currency = args.Get(0).(*domain.Currency)
	}
	return currency, args.Error(1)
}

// --- Test Suite ---

type MovementServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockCurrencySvc  *MockCurrencyService
	service          portssvc.MovementSvcFacade
	userID           string
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.service = services.NewMovementService(suite.mockMovementRepo, suite.mockCurrencySvc)
	suite.userID = uuid.NewString()
}

func (suite *MovementServiceTestSuite) arsCurrency() *domain.Currency {
	return &domain.Currency{CurrencyCode: "ARS", Symbol: "$", Name: "Peso argentino"}
}

func (suite *MovementServiceTestSuite) TestCreateMovement_Success() {
	ctx := context.Background()
	occurred := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateMovementRequest{
		Type:         domain.Expense,
		Amount:       decimal.NewFromInt(2500),
		CurrencyCode: "ars",
		Category:     "Groceries",
		OccurredAt:   occurred,
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "ARS").Return(suite.arsCurrency(), nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.UserID == suite.userID &&
			m.Type == domain.Expense &&
			m.CurrencyCode == "ARS" &&
			m.Amount.Equal(decimal.NewFromInt(2500)) &&
			m.OccurredAt.Equal(occurred)
	})).Return(nil).Once()

	movement, err := suite.service.CreateMovement(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(movement.MovementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestCreateMovement_ZeroAmount() {
	ctx := context.Background()
	req := dto.CreateMovementRequest{
		Type:         domain.Income,
		Amount:       decimal.Zero,
		CurrencyCode: "ARS",
		Category:     "Salary",
		OccurredAt:   time.Now(),
	}

	movement, err := suite.service.CreateMovement(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *MovementServiceTestSuite) TestCreateMovement_AmountOverLimit() {
	ctx := context.Background()
	req := dto.CreateMovementRequest{
		Type:         domain.Income,
		Amount:       decimal.NewFromInt(1_000_000_000),
		CurrencyCode: "ARS",
		Category:     "Salary",
		OccurredAt:   time.Now(),
	}

	movement, err := suite.service.CreateMovement(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MovementServiceTestSuite) TestCreateMovement_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateMovementRequest{
		Type:         domain.Expense,
		Amount:       decimal.NewFromInt(10),
		CurrencyCode: "XXX",
		Category:     "Misc",
		OccurredAt:   time.Now(),
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	movement, err := suite.service.CreateMovement(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *MovementServiceTestSuite) TestGetMovement_OwnedByAnotherUser() {
	ctx := context.Background()
	movementID := uuid.NewString()
	other := &domain.Movement{MovementID: movementID, UserID: uuid.NewString()}

	suite.mockMovementRepo.On("FindMovementByID", ctx, movementID).Return(other, nil).Once()

	movement, err := suite.service.GetMovement(ctx, suite.userID, movementID)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *MovementServiceTestSuite) TestListMovements_YearMonthFilter() {
	ctx := context.Background()
	params := dto.ListMovementsParams{Year: 2026, Month: 2, Limit: 10}

	expectedFrom := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	expectedTo := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	suite.mockMovementRepo.On("ListMovements", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.MovementListFilter) bool {
		return f.From != nil && f.From.Equal(expectedFrom) &&
			f.To != nil && f.To.Equal(expectedTo) &&
			f.Limit == 10
	})).Return([]domain.Movement{}, "", nil).Once()

	movements, nextToken, err := suite.service.ListMovements(ctx, suite.userID, params)

	suite.Require().NoError(err)
	suite.Empty(movements)
	suite.Empty(nextToken)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestListMovements_DefaultLimit() {
	ctx := context.Background()

	suite.mockMovementRepo.On("ListMovements", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.MovementListFilter) bool {
		return f.Limit == 50 && f.From == nil
	})).Return([]domain.Movement{}, "", nil).Once()

	_, _, err := suite.service.ListMovements(ctx, suite.userID, dto.ListMovementsParams{})

	suite.Require().NoError(err)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestMonthlySummary_BalanceMath() {
	ctx := context.Background()

	sums := map[domain.MovementType]decimal.Decimal{
		domain.Income:  decimal.NewFromInt(1000),
		domain.Expense: decimal.NewFromInt(400),
		domain.Saving:  decimal.NewFromInt(150),
	}
	suite.mockMovementRepo.On("SumByType", ctx, suite.userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(sums, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, suite.userID, 2026, 2)

	suite.Require().NoError(err)
	suite.True(summary.Balance.Equal(decimal.NewFromInt(450)), "balance = income - expenses - savings")
	suite.Equal(2026, summary.Year)
	suite.Equal(time.February, summary.Month)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestMonthlySummary_InvalidMonth() {
	ctx := context.Background()

	summary, err := suite.service.MonthlySummary(ctx, suite.userID, 2026, 13)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MovementServiceTestSuite) TestUpdateMovement_InvalidAmountRejected() {
	ctx := context.Background()
	movementID := uuid.NewString()
	existing := &domain.Movement{MovementID: movementID, UserID: suite.userID, Amount: decimal.NewFromInt(10)}
	negative := decimal.NewFromInt(-5)

	suite.mockMovementRepo.On("FindMovementByID", ctx, movementID).Return(existing, nil).Once()

	movement, err := suite.service.UpdateMovement(ctx, suite.userID, movementID, dto.UpdateMovementRequest{Amount: &negative})

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "UpdateMovement")
}

func (suite *MovementServiceTestSuite) TestDeleteMovement_Success() {
	ctx := context.Background()
	movementID := uuid.NewString()
	existing := &domain.Movement{MovementID: movementID, UserID: suite.userID}

	suite.mockMovementRepo.On("FindMovementByID", ctx, movementID).Return(existing, nil).Once()
	suite.mockMovementRepo.On("DeleteMovement", ctx, movementID).Return(nil).Once()

	err := suite.service.DeleteMovement(ctx, suite.userID, movementID)

	suite.Require().NoError(err)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func TestMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}
