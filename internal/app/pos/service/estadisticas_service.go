package service

import (
	"context"
	"fmt"
	"time"

	"rostipos/internal/app/pos/entity"
	"rostipos/internal/app/pos/repository"
	"rostipos/internal/app/pos/util"
	"rostipos/pkg/logger"
)

const (
	estadisticasCacheTTL = 5 * time.Minute
	diasVentasDiarias    = 30
	mesesVentasMensuales = 12
	rankingTopN          = 10
)

// EstadisticasService builds the consolidated reporting payload from the
// aggregation queries. The result is cached briefly; every pedido write
// invalidates it.
type EstadisticasService struct {
	statsRepo repository.EstadisticasRepository
	cache     util.RedisCache
	now       func() time.Time
}

func NewEstadisticasService(statsRepo repository.EstadisticasRepository, cache util.RedisCache) *EstadisticasService {
	return &EstadisticasService{
		statsRepo: statsRepo,
		cache:     cache,
		now:       time.Now,
	}
}

// GetEstadisticas assembles daily sales for the last 30 days, the last
// 12 monthly totals, the product ranking extremes, revenue per categoria
// and the current-versus-previous month comparison.
func (s *EstadisticasService) GetEstadisticas(ctx context.Context) (*entity.Estadisticas, error) {
	if s.cache != nil {
		if stats, err := s.cache.GetEstadisticas(ctx); err == nil {
			return stats, nil
		}
	}

	ahora := s.now()

	desde := ahora.AddDate(0, 0, -diasVentasDiarias).Format("2006-01-02")
	diarias, err := s.statsRepo.VentasDiarias(ctx, desde)
	if err != nil {
		return nil, fmt.Errorf("failed to get ventas diarias: %w", err)
	}

	mensuales, err := s.statsRepo.VentasMensuales(ctx, mesesVentasMensuales)
	if err != nil {
		return nil, fmt.Errorf("failed to get ventas mensuales: %w", err)
	}

	ranking, err := s.statsRepo.RankingProductos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ranking: %w", err)
	}
	top, menos := partirRanking(ranking)

	porCategoria, err := s.statsRepo.VentasPorCategoria(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get ventas por categoria: %w", err)
	}

	mesActual := ahora.Format("2006-01")
	totalActual, err := s.statsRepo.TotalDelMes(ctx, mesActual)
	if err != nil {
		return nil, fmt.Errorf("failed to get total del mes: %w", err)
	}

	// Last day of the previous month, derived from the first of the current one.
	primerDia := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
	mesAnterior := primerDia.AddDate(0, 0, -1).Format("2006-01")
	totalAnterior, err := s.statsRepo.TotalDelMes(ctx, mesAnterior)
	if err != nil {
		return nil, fmt.Errorf("failed to get total del mes anterior: %w", err)
	}

	stats := &entity.Estadisticas{
		VentasDiarias:      diarias,
		VentasMensuales:    mensuales,
		TopProductos:       top,
		MenosVendidos:      menos,
		VentasPorCategoria: porCategoria,
		ComparativaMes: entity.ComparativaMes{
			MesActual:   totalActual,
			MesAnterior: totalAnterior,
		},
	}

	if s.cache != nil {
		if err := s.cache.SetEstadisticas(ctx, stats, estadisticasCacheTTL); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache estadisticas")
		}
	}

	return stats, nil
}

// ResumenDelDia returns today's revenue and pedido count, for the
// nightly report job.
func (s *EstadisticasService) ResumenDelDia(ctx context.Context) (float64, int64, error) {
	dia := s.now().Format("2006-01-02")
	total, pedidos, err := s.statsRepo.TotalDelDia(ctx, dia)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get resumen del dia: %w", err)
	}
	return total, pedidos, nil
}

// partirRanking splits the best-first ranking into the top sellers and
// the least sold. Both slices hold at most rankingTopN entries; the
// least-sold list is ordered worst first. With rankingTopN or fewer
// products the two lists overlap.
func partirRanking(ranking []entity.ProductoRanking) (top, menos []entity.ProductoRanking) {
	n := len(ranking)

	topN := rankingTopN
	if n < topN {
		topN = n
	}
	top = make([]entity.ProductoRanking, topN)
	copy(top, ranking[:topN])

	menos = make([]entity.ProductoRanking, 0, topN)
	for i := n - 1; i >= n-topN; i-- {
		menos = append(menos, ranking[i])
	}

	return top, menos
}
