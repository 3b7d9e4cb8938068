// Package adapters はsectorフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/sector/domain/entity"
	"stock_dashboard/internal/feature/sector/usecase"
)

// sectorSQLite はSectorRepositoryインターフェースのSQLite実装です。
type sectorSQLite struct {
	db *gorm.DB
}

var _ usecase.SectorRepository = (*sectorSQLite)(nil)

// NewSectorRepository は指定されたDB接続でsectorSQLiteリポジトリの新しいインスタンスを生成します。
func NewSectorRepository(db *gorm.DB) *sectorSQLite {
	return &sectorSQLite{db: db}
}

type entryRow struct {
	Symbol      string
	CompanyName string
	Value       float64
}

// Compare はセクター内の会社を指標の降順で最大 limit 件返します。指標がNULLの会社は除外します。
// 列名は entity.Metric の固定集合からのみ組み立てます。
func (r *sectorSQLite) Compare(ctx context.Context, sector string, metric entity.Metric, limit int) ([]entity.Entry, error) {
	col, err := metric.Column()
	if err != nil {
		return nil, err
	}
	col = "f." + col

	var rows []entryRow
	if err := r.db.WithContext(ctx).
		Table("company_info AS c").
		Select("c.symbol AS symbol, c.company_name AS company_name, "+col+" AS value").
		Joins("JOIN financial_data AS f ON c.symbol = f.symbol").
		Where("c.sector = ? AND "+col+" IS NOT NULL", sector).
		Order(col + " DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.Entry{Symbol: row.Symbol, Name: row.CompanyName, Value: row.Value})
	}
	return out, nil
}
