// Package dto defines data transfer objects for the company HTTP API.
package dto

import "github.com/guregu/null/v6"

// CompanyItem represents a company in the selector list.
type CompanyItem struct {
	Symbol string      `json:"symbol"`
	Name   string      `json:"name"`
	Sector null.String `json:"sector"`
}

// FundamentalsResponse carries the raw financial figures. Missing values are null.
type FundamentalsResponse struct {
	MarketCap      null.Float `json:"market_cap"`
	TrailingPE     null.Float `json:"trailing_pe"`
	TrailingEPS    null.Float `json:"trailing_eps"`
	PriceToBook    null.Float `json:"price_to_book"`
	ReturnOnEquity null.Float `json:"return_on_equity"`
	DebtToEquity   null.Float `json:"debt_to_equity"`
	DividendYield  null.Float `json:"dividend_yield"`
}

// ProfileResponse is the body of GET /api/companies/:symbol.
type ProfileResponse struct {
	Symbol       string                `json:"symbol"`
	Name         string                `json:"name"`
	Sector       null.String           `json:"sector"`
	Industry     null.String           `json:"industry"`
	Exchange     null.String           `json:"exchange"`
	MarketCap    null.Float            `json:"market_cap"`
	Employees    null.Int              `json:"employees"`
	Fundamentals *FundamentalsResponse `json:"fundamentals"`
	Cards        []MetricCard          `json:"cards"`
}
