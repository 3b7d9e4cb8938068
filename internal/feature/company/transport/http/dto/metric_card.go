package dto

import (
	"github.com/dustin/go-humanize"
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"

	"stock_dashboard/internal/feature/company/domain/entity"
)

// NotAvailable is shown for a missing or meaningless figure.
const NotAvailable = "N/A"

// MetricCard is one formatted figure of the company header.
type MetricCard struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

var billion = decimal.New(1, 9)

// NewProfileResponse builds the profile body, formatting the metric cards.
func NewProfileResponse(p *entity.Profile, unit entity.DividendUnit) ProfileResponse {
	c := p.Company
	out := ProfileResponse{
		Symbol:    c.Symbol,
		Name:      c.Name,
		Sector:    c.Sector,
		Industry:  c.Industry,
		Exchange:  c.Exchange,
		MarketCap: c.MarketCap,
		Employees: c.Employees,
	}

	out.Cards = []MetricCard{
		{Key: "sector", Label: "Sector", Value: stringOr(c.Sector)},
		{Key: "market_cap", Label: "Market Cap", Value: formatMarketCap(c.MarketCap)},
		{Key: "employees", Label: "Employees", Value: formatEmployees(c.Employees)},
		{Key: "exchange", Label: "Exchange", Value: stringOr(c.Exchange)},
	}

	if f := p.Fundamentals; f != nil {
		out.Fundamentals = &FundamentalsResponse{
			MarketCap:      f.MarketCap,
			TrailingPE:     f.TrailingPE,
			TrailingEPS:    f.TrailingEPS,
			PriceToBook:    f.PriceToBook,
			ReturnOnEquity: f.ReturnOnEquity,
			DebtToEquity:   f.DebtToEquity,
			DividendYield:  f.DividendYield,
		}
		out.Cards = append(out.Cards, FundamentalCards(f, unit)...)
	}
	return out
}

// FundamentalCards formats the six financial cards. A figure is N/A when it
// is missing, when PER or the dividend yield is not positive, and when any
// other figure is exactly zero.
func FundamentalCards(f *entity.Fundamentals, unit entity.DividendUnit) []MetricCard {
	return []MetricCard{
		{Key: "trailing_pe", Label: "PER", Value: positive(f.TrailingPE, fixed2)},
		{Key: "trailing_eps", Label: "EPS", Value: nonZero(f.TrailingEPS, func(v float64) string { return "$" + fixed2(v) })},
		{Key: "price_to_book", Label: "PBR", Value: nonZero(f.PriceToBook, fixed2)},
		{Key: "return_on_equity", Label: "ROE", Value: nonZero(f.ReturnOnEquity, func(v float64) string { return fixed2(v*100) + "%" })},
		{Key: "debt_to_equity", Label: "D/E", Value: nonZero(f.DebtToEquity, fixed2)},
		{Key: "dividend_yield", Label: "Dividend Yield", Value: positive(f.DividendYield, func(v float64) string { return fixed2(unit.Percent(v)) + "%" })},
	}
}

// fixed2 は10進表記の最短形で四捨五入します（28.455 → 28.46）。
func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func formatMarketCap(v null.Float) string {
	return nonZero(v, func(v float64) string {
		return "$" + decimal.NewFromFloat(v).Div(billion).StringFixed(1) + "B"
	})
}

func formatEmployees(v null.Int) string {
	if !v.Valid || v.Int64 == 0 {
		return NotAvailable
	}
	return humanize.Comma(v.Int64)
}

func stringOr(s null.String) string {
	if !s.Valid || s.String == "" {
		return NotAvailable
	}
	return s.String
}

func positive(v null.Float, format func(float64) string) string {
	if !v.Valid || v.Float64 <= 0 {
		return NotAvailable
	}
	return format(v.Float64)
}

func nonZero(v null.Float, format func(float64) string) string {
	if !v.Valid || v.Float64 == 0 {
		return NotAvailable
	}
	return format(v.Float64)
}
