package dto

import "github.com/finanzapp/finanzas-backend/internal/core/domain"

// CreateCurrencyRequest is the (admin) payload for adding a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,min=3,max=4,uppercase"`
	Symbol       string `json:"symbol" binding:"required,max=8"`
	Name         string `json:"name" binding:"required,max=64"`
}

// CurrencyResponse is the public representation of a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ListCurrenciesResponse wraps the list of currencies.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(currency *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: currency.CurrencyCode,
		Symbol:       currency.Symbol,
		Name:         currency.Name,
	}
}

// ToListCurrenciesResponse converts a slice of domain.Currency.
func ToListCurrenciesResponse(currencies []domain.Currency) ListCurrenciesResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		out[i] = ToCurrencyResponse(&currencies[i])
	}
	return ListCurrenciesResponse{Currencies: out}
}
