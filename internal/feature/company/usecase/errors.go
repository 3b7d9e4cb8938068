package usecase

import "errors"

var (
	// ErrCompanyNotFound is returned when no company_info row exists for the symbol.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrFundamentalsNotFound is returned by repositories when financial_data has no row for the symbol.
	ErrFundamentalsNotFound = errors.New("fundamentals not found")
)
