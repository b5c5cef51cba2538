package fx

// Conversion between non-USD pairs always pivots through USD. The result is
// only as consistent as the rate table itself; cross-rate triangle consistency
// is not guaranteed while rates fluctuate independently.

// ConvertToUSD converts an amount of the given currency into USD.
func (r Rates) ConvertToUSD(amount float64, from Code) float64 {
	if from == USD {
		return amount
	}
	return amount * r.Rate(from)
}

// ConvertFromUSD converts a USD amount into the given currency.
func (r Rates) ConvertFromUSD(usdAmount float64, to Code) float64 {
	if to == USD {
		return usdAmount
	}
	return usdAmount / r.Rate(to)
}

// Convert converts an amount between two currencies via the USD pivot.
// Same-currency conversion is the exact identity.
func (r Rates) Convert(amount float64, from, to Code) float64 {
	if from == to {
		return amount
	}
	return r.ConvertFromUSD(r.ConvertToUSD(amount, from), to)
}

// ExchangeRate returns the multiplicative rate from one currency to another,
// computed via the USD pivot. Identity pairs return exactly 1.
func (r Rates) ExchangeRate(from, to Code) float64 {
	if from == to {
		return 1
	}
	return r.Rate(from) / r.Rate(to)
}

// ConvertToUSDT converts an amount into USDT. For ARS a live quote (USDT
// priced in ARS) takes precedence; everything else pivots through USD with
// USDT pegged 1:1.
func (r Rates) ConvertToUSDT(amount float64, from Code, quote *Quote) float64 {
	if from == USDT {
		return amount
	}
	if from == ARS && quote != nil && quote.Price > 0 {
		return amount / quote.Price
	}
	return r.Convert(amount, from, USDT)
}

// ConvertFromUSDT converts a USDT amount into the given currency, using the
// live ARS quote when available.
func (r Rates) ConvertFromUSDT(usdtAmount float64, to Code, quote *Quote) float64 {
	if to == USDT {
		return usdtAmount
	}
	if to == ARS && quote != nil && quote.Price > 0 {
		return usdtAmount * quote.Price
	}
	return r.Convert(usdtAmount, USDT, to)
}
