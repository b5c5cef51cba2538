package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	portsrepo "github.com/finanzapp/finanzas-backend/internal/core/ports/repositories"
	"github.com/finanzapp/finanzas-backend/internal/dto"
)

// CurrencyService provides business logic for the supported currencies.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency persists a new currency (admin operation).
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	now := time.Now()

	currency := domain.Currency{
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Symbol:       req.Symbol,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}
	return &currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all available currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
