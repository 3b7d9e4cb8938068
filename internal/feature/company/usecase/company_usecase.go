// Package usecase implements the business logic for company lookups.
package usecase

import (
	"context"
	"errors"
	"strings"

	"stock_dashboard/internal/feature/company/domain/entity"
)

// CompanyRepository abstracts the persistence layer for company metadata and fundamentals.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CompanyRepository interface {
	ListCompanies(ctx context.Context) ([]entity.Company, error)
	FindCompany(ctx context.Context, symbol string) (*entity.Company, error)
	FindFundamentals(ctx context.Context, symbol string) (*entity.Fundamentals, error)
	ListSectors(ctx context.Context) ([]string, error)
}

// CompanyUsecase provides business logic for company operations.
type CompanyUsecase struct {
	repo CompanyRepository
}

// NewCompanyUsecase creates a new CompanyUsecase with the given repository.
func NewCompanyUsecase(r CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{repo: r}
}

// ListCompanies returns every company ordered by symbol.
func (u *CompanyUsecase) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	return u.repo.ListCompanies(ctx)
}

// ListSectors returns the distinct sector names in ascending order.
func (u *CompanyUsecase) ListSectors(ctx context.Context) ([]string, error) {
	return u.repo.ListSectors(ctx)
}

// GetProfile returns the company and, when present, its fundamentals.
// An unknown symbol yields ErrCompanyNotFound; missing fundamentals are not an error.
func (u *CompanyUsecase) GetProfile(ctx context.Context, symbol string) (*entity.Profile, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrCompanyNotFound
	}

	c, err := u.repo.FindCompany(ctx, symbol)
	if err != nil {
		return nil, err
	}

	f, err := u.repo.FindFundamentals(ctx, symbol)
	switch {
	case errors.Is(err, ErrFundamentalsNotFound):
		f = nil
	case err != nil:
		return nil, err
	}

	return &entity.Profile{Company: *c, Fundamentals: f}, nil
}
