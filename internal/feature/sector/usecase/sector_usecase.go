// Package usecase implements sector comparison.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stock_dashboard/internal/feature/sector/domain/entity"
)

// ComparisonLimit is the number of companies ranked per metric.
const ComparisonLimit = 20

// ErrSectorRequired is returned when the sector name is empty.
var ErrSectorRequired = errors.New("sector is required")

// SectorRepository abstracts the persistence layer for sector rankings.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SectorRepository interface {
	Compare(ctx context.Context, sector string, metric entity.Metric, limit int) ([]entity.Entry, error)
}

// SectorUsecase ranks companies inside a sector.
type SectorUsecase struct {
	repo SectorRepository
}

// NewSectorUsecase creates a new SectorUsecase with the given repository.
func NewSectorUsecase(r SectorRepository) *SectorUsecase {
	return &SectorUsecase{repo: r}
}

// Compare returns the ranking of sector for metric. An empty metric returns
// one comparison per entry of entity.AllMetrics, in that order.
func (u *SectorUsecase) Compare(ctx context.Context, sector, metric string) ([]entity.Comparison, error) {
	sector = strings.TrimSpace(sector)
	if sector == "" {
		return nil, ErrSectorRequired
	}

	metrics := entity.AllMetrics
	if metric != "" {
		m, err := entity.ParseMetric(metric)
		if err != nil {
			return nil, err
		}
		metrics = []entity.Metric{m}
	}

	out := make([]entity.Comparison, 0, len(metrics))
	for _, m := range metrics {
		entries, err := u.repo.Compare(ctx, sector, m, ComparisonLimit)
		if err != nil {
			return nil, fmt.Errorf("compare %s by %s: %w", sector, m, err)
		}
		out = append(out, entity.Comparison{Sector: sector, Metric: m, Entries: entries})
	}
	return out, nil
}
