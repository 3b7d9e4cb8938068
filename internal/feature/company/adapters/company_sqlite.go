// Package adapters はcompanyフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/guregu/null/v6"
	"gorm.io/gorm"

	"stock_dashboard/internal/feature/company/domain/entity"
	"stock_dashboard/internal/feature/company/usecase"
)

// CompanyModel は company_info テーブルの行です。
type CompanyModel struct {
	Symbol      string      `gorm:"column:symbol;primaryKey"`
	CompanyName string      `gorm:"column:company_name"`
	Sector      null.String `gorm:"column:sector"`
	Industry    null.String `gorm:"column:industry"`
	Exchange    null.String `gorm:"column:exchange"`
	MarketCap   null.Float  `gorm:"column:market_cap"`
	Employees   null.Int    `gorm:"column:employees"`
}

// TableName は既存スナップショットのテーブル名を返します。
func (CompanyModel) TableName() string { return "company_info" }

// FinancialModel は financial_data テーブルの行です。
type FinancialModel struct {
	Symbol         string     `gorm:"column:symbol;primaryKey"`
	MarketCap      null.Float `gorm:"column:market_cap"`
	TrailingPE     null.Float `gorm:"column:trailing_pe"`
	TrailingEPS    null.Float `gorm:"column:trailing_eps"`
	PriceToBook    null.Float `gorm:"column:price_to_book"`
	ReturnOnEquity null.Float `gorm:"column:return_on_equity"`
	DebtToEquity   null.Float `gorm:"column:debt_to_equity"`
	DividendYield  null.Float `gorm:"column:dividend_yield"`
}

// TableName は既存スナップショットのテーブル名を返します。
func (FinancialModel) TableName() string { return "financial_data" }

// companySQLite はCompanyRepositoryインターフェースのSQLite実装です。
type companySQLite struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companySQLite)(nil)

// NewCompanyRepository は指定されたDB接続でcompanySQLiteリポジトリの新しいインスタンスを生成します。
func NewCompanyRepository(db *gorm.DB) *companySQLite {
	return &companySQLite{db: db}
}

// ListCompanies はsymbol順にすべての会社を返します。
func (r *companySQLite) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	var rows []CompanyModel
	if err := r.db.WithContext(ctx).
		Order("symbol ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Company, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// FindCompany は銘柄の会社情報を返します。
// 存在しない場合、usecase.ErrCompanyNotFoundを返します。
func (r *companySQLite) FindCompany(ctx context.Context, symbol string) (*entity.Company, error) {
	var m CompanyModel
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	c := m.toEntity()
	return &c, nil
}

// FindFundamentals は銘柄の財務指標を返します。
// 存在しない場合、usecase.ErrFundamentalsNotFoundを返します。
func (r *companySQLite) FindFundamentals(ctx context.Context, symbol string) (*entity.Fundamentals, error) {
	var m FinancialModel
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFundamentalsNotFound
		}
		return nil, err
	}
	return &entity.Fundamentals{
		Symbol:         m.Symbol,
		MarketCap:      m.MarketCap,
		TrailingPE:     m.TrailingPE,
		TrailingEPS:    m.TrailingEPS,
		PriceToBook:    m.PriceToBook,
		ReturnOnEquity: m.ReturnOnEquity,
		DebtToEquity:   m.DebtToEquity,
		DividendYield:  m.DividendYield,
	}, nil
}

// ListSectors はNULLと空文字を除いたセクター名を昇順で返します。
func (r *companySQLite) ListSectors(ctx context.Context) ([]string, error) {
	var sectors []string
	if err := r.db.WithContext(ctx).
		Model(&CompanyModel{}).
		Where("sector IS NOT NULL AND sector <> ''").
		Distinct("sector").
		Order("sector ASC").
		Pluck("sector", &sectors).Error; err != nil {
		return nil, err
	}
	return sectors, nil
}

func (m CompanyModel) toEntity() entity.Company {
	return entity.Company{
		Symbol:    m.Symbol,
		Name:      m.CompanyName,
		Sector:    m.Sector,
		Industry:  m.Industry,
		Exchange:  m.Exchange,
		MarketCap: m.MarketCap,
		Employees: m.Employees,
	}
}
