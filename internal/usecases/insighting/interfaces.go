package insighting

import (
	"context"

	"github.com/vfg2006/ad-ops-api/internal/domain"
)

// AdMetricsProvider define a consulta de métricas por anúncio de uma conta
type AdMetricsProvider interface {
	// GetAdMetrics devolve uma entrada para cada anúncio pedido, com métricas ou com o erro
	GetAdMetrics(ctx context.Context, accountID string, query domain.MetricsQuery) (map[string]domain.MetricsResult, error)
}
