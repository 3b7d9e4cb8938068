// Package entity defines the domain models for the company feature.
package entity

import "github.com/guregu/null/v6"

// Company is one row of company metadata. Every descriptive field may be
// missing in the snapshot.
type Company struct {
	Symbol    string
	Name      string
	Sector    null.String
	Industry  null.String
	Exchange  null.String
	MarketCap null.Float
	Employees null.Int
}

// Fundamentals holds the latest valuation and profitability figures of a company.
// ReturnOnEquity is a fraction. DividendYield is stored in the unit the
// snapshot was written with, see DividendUnit.
type Fundamentals struct {
	Symbol         string
	MarketCap      null.Float
	TrailingPE     null.Float
	TrailingEPS    null.Float
	PriceToBook    null.Float
	ReturnOnEquity null.Float
	DebtToEquity   null.Float
	DividendYield  null.Float
}

// Profile is a company together with its fundamentals, which may be absent.
type Profile struct {
	Company      Company
	Fundamentals *Fundamentals
}
