package dto

import (
	"time"

	"github.com/finanzapp/finanzas-backend/internal/core/fx"
)

// QuoteResponse is the public representation of the USDT/ARS quote.
type QuoteResponse struct {
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// RatesResponse is the public representation of the exchange-rate snapshot.
type RatesResponse struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp time.Time          `json:"timestamp"`
	Source    string             `json:"source"`
}

// ConvertParams binds the conversion query parameters.
type ConvertParams struct {
	Amount float64 `form:"amount" binding:"required"`
	From   string  `form:"from" binding:"required,currencycode"`
	To     string  `form:"to" binding:"required,currencycode"`
}

// ConvertResponse carries a converted and display-formatted amount.
type ConvertResponse struct {
	Amount        float64   `json:"amount"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Converted     float64   `json:"converted"`
	Formatted     string    `json:"formatted"`
	Rate          float64   `json:"rate"`
	RatesSyncedAt time.Time `json:"ratesSyncedAt"`
	RatesSource   string    `json:"ratesSource"`
}

// ValidateAmountRequest carries an amount to sanity-check for display.
type ValidateAmountRequest struct {
	Amount float64 `json:"amount"`
}

// ToQuoteResponse converts an fx.Quote.
func ToQuoteResponse(q fx.Quote) QuoteResponse {
	return QuoteResponse{Price: q.Price, Timestamp: q.Timestamp, Source: string(q.Source)}
}

// ToRatesResponse converts an fx.RatesSnapshot.
func ToRatesResponse(s fx.RatesSnapshot) RatesResponse {
	rates := make(map[string]float64, len(s.Rates))
	for code, rate := range s.Rates {
		rates[string(code)] = rate
	}
	return RatesResponse{
		Base:      string(s.Base),
		Rates:     rates,
		Timestamp: s.Timestamp,
		Source:    string(s.Source),
	}
}
